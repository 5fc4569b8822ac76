package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/pkg/dbmetrics"
	"github.com/urinakcleaning/booking-service/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

// Repository репозиторий администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var columns = []string{"id", "username", "password_hash", "email", "role", "created_at", "last_login"}

// Create создает администратора
func (r *Repository) Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_users").
		Columns("username", "password_hash", "email", "role").
		Values(admin.Username, admin.PasswordHash, admin.Email, admin.Role).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateAdmin
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	admin.CreatedAt = createdAt.Time

	return admin, nil
}

// GetByID получает администратора по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUsername получает администратора по имени пользователя
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

// UpdateLastLogin записывает время последнего входа
func (r *Repository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_users").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}

// Count возвращает количество администраторов
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("admin_users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("admin_users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var admin domain.AdminUser
	var lastLogin sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Email,
		&admin.Role,
		&admin.CreatedAt,
		&lastLogin,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan admin: %v", ErrScanRow, op, err)
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		admin.LastLogin = &t
	}

	return &admin, nil
}
