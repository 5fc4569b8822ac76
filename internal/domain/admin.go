package domain

import "time"

// DefaultAdminRole role assigned to newly created admins
const DefaultAdminRole = "admin"

// AdminUser back-office account
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	Role         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
