package quote_price

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// ExtrasRepository интерфейс каталога дополнительных услуг
type ExtrasRepository interface {
	GetByServiceType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceExtra, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
