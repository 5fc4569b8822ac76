package list_reminders

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/reminders/models"
)

type ReminderService interface {
	List(ctx context.Context) (*models.ReminderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
