package admin_conflicts

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetConflicts(ctx context.Context) (*models.ConflictListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
