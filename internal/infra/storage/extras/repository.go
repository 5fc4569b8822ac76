package extras

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/pkg/dbmetrics"
	"github.com/urinakcleaning/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий каталога дополнительных услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнительных услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByServiceType возвращает дополнительные услуги для типа услуги в порядке id
func (r *Repository) GetByServiceType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceExtra, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_type",
		"name",
		"description",
		"price",
		"duration",
	).
		From("service_extras").
		Where(squirrel.Eq{"service_type": serviceType}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	extras := make([]domain.ServiceExtra, 0)
	for rows.Next() {
		var e domain.ServiceExtra
		if err := rows.Scan(
			&e.ID,
			&e.ServiceType,
			&e.Name,
			&e.Description,
			&e.UnitPrice,
			&e.DurationText,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByServiceType - scan row: %v", ErrScanRow, err)
		}
		extras = append(extras, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByServiceType - rows error: %v", ErrScanRow, err)
	}

	return extras, nil
}
