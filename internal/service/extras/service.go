package extras

import (
	"context"
	"fmt"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/internal/service/extras/models"
)

// Service сервис каталога доп. услуг
type Service struct {
	extrasRepo ExtrasRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(extrasRepo ExtrasRepository, logger Logger) *Service {
	return &Service{
		extrasRepo: extrasRepo,
		logger:     logger,
	}
}

// GetByServiceType возвращает доп. услуги для типа услуги
func (s *Service) GetByServiceType(ctx context.Context, serviceType string) (*models.ExtraListResponse, error) {
	st := domain.ServiceType(serviceType)
	if _, ok := domain.LookupService(st); !ok {
		s.logger.Warn("GetByServiceType: unknown service type %q", serviceType)
		return nil, ErrUnknownServiceType
	}

	extras, err := s.extrasRepo.GetByServiceType(ctx, st)
	if err != nil {
		s.logger.Error("GetByServiceType: repository error for %s: %v", st, err)
		return nil, fmt.Errorf("%w: GetByServiceType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByServiceType: %d extras for %s", len(extras), st)
	return models.FromDomainExtras(st, extras), nil
}
