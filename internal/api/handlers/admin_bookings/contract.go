package admin_bookings

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListForAdmin(ctx context.Context, req *models.AdminBookingsRequest) (*models.AdminBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
