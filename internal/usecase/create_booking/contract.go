package create_booking

import (
	"context"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.CustomerReminder) (*domain.CustomerReminder, error)
}

// ExtrasRepository интерфейс каталога дополнительных услуг
type ExtrasRepository interface {
	GetByServiceType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceExtra, error)
}

// Notifier отправляет письма о созданном бронировании
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, extras []domain.ServiceExtra)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingCreated(serviceType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
