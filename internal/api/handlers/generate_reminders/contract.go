package generate_reminders

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/reminders/models"
)

type ReminderService interface {
	CreateMissing(ctx context.Context, adminID int64) (*models.GenerateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
