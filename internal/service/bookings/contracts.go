package bookings

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error)
}

// ExtrasRepository каталог доп. услуг для отображения выбранных позиций
type ExtrasRepository interface {
	GetByServiceType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceExtra, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	SetConflictsDetected(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
