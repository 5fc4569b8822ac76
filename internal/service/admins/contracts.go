package admins

import (
	"context"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Count(ctx context.Context) (int, error)
}

// TokenIssuer выпускает токены админ-сессии (pkg/jwtauth)
type TokenIssuer interface {
	Issue(adminID int64, role string) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
