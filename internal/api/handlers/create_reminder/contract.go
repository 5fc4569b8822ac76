package create_reminder

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/reminders/models"
)

type ReminderService interface {
	Create(ctx context.Context, req *models.CreateReminderRequest) (*models.ReminderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
