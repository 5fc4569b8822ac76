package models

import (
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// Ограничения на учетные данные
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt учитывает только первые 72 байта
)

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAdminRequest запрос на создание администратора
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// AdminResponse данные администратора без хеша пароля
type AdminResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// LoginResponse токен сессии и данные администратора
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

// FromDomainAdmin конвертирует domain модель в DTO
func FromDomainAdmin(a *domain.AdminUser) *AdminResponse {
	if a == nil {
		return nil
	}
	return &AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}
