package get_service_extras

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/extras/models"
)

type ExtrasService interface {
	GetByServiceType(ctx context.Context, serviceType string) (*models.ExtraListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
