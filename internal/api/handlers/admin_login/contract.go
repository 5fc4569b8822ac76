package admin_login

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/service/admins/models"
)

type AdminService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
