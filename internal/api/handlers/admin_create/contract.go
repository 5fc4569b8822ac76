package admin_create

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/admins/models"
)

type AdminService interface {
	Create(ctx context.Context, req *models.CreateAdminRequest) (*models.AdminResponse, error)
	CanBootstrap(ctx context.Context) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
