package reminders

import (
	"context"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.CustomerReminder) (*domain.CustomerReminder, error)
	GetPending(ctx context.Context, now time.Time, limit int) ([]*domain.CustomerReminder, error)
	GetAll(ctx context.Context) ([]*domain.CustomerReminder, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReminderStatus, sentAt *time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListUpcomingWithoutReminder(ctx context.Context, from time.Time) ([]*domain.Booking, error)
}

// Sender отправляет письмо-напоминание клиенту
type Sender interface {
	SendReminder(ctx context.Context, booking *domain.Booking, message string) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncReminderProcessed(status string)
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
