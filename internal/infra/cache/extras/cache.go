// Package extras caches the service extras catalog in Redis in front of the database repository.
package extras

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

const keyPrefix = "service_extras:"

// Source источник данных каталога (репозиторий PostgreSQL)
type Source interface {
	GetByServiceType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceExtra, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// CachedRepository читает каталог из Redis, при промахе идёт в Source и кладёт результат в кеш.
// Ошибки Redis не прерывают запрос: данные берутся из Source.
type CachedRepository struct {
	source Source
	client redis.UniversalClient
	ttl    time.Duration
	logger Logger
}

// NewCachedRepository создает кеширующую обёртку над source
func NewCachedRepository(source Source, client redis.UniversalClient, ttl time.Duration, logger Logger) *CachedRepository {
	return &CachedRepository{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(serviceType domain.ServiceType) string {
	return keyPrefix + string(serviceType)
}

// GetByServiceType возвращает дополнительные услуги для типа услуги
func (c *CachedRepository) GetByServiceType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceExtra, error) {
	key := cacheKey(serviceType)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var extras []domain.ServiceExtra
		if jsonErr := json.Unmarshal(raw, &extras); jsonErr == nil {
			return extras, nil
		}
		c.logger.Warn("extras cache: corrupted entry %s, reloading", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("extras cache: get %s: %v", key, err)
	}

	extras, err := c.source.GetByServiceType(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(extras)
	if err != nil {
		return nil, fmt.Errorf("extras cache: encode: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("extras cache: set %s: %v", key, err)
	}

	return extras, nil
}

// Invalidate удаляет закешированный каталог типа услуги
func (c *CachedRepository) Invalidate(ctx context.Context, serviceType domain.ServiceType) error {
	return c.client.Del(ctx, cacheKey(serviceType)).Err()
}
