package reminders

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/pkg/dbmetrics"
	"github.com/urinakcleaning/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий напоминаний клиентам
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var columns = []string{
	"id",
	"booking_id",
	"reminder_type",
	"message",
	"scheduled_at",
	"sent_at",
	"status",
	"created_at",
	"created_by",
}

// Create создает напоминание. Использует транзакцию из контекста, если она есть.
func (r *Repository) Create(ctx context.Context, reminder *domain.CustomerReminder) (*domain.CustomerReminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customer_reminders").
		Columns("booking_id", "reminder_type", "message", "scheduled_at", "status", "created_by").
		Values(
			reminder.BookingID,
			reminder.Type,
			reminder.Message,
			reminder.ScheduledAt,
			reminder.Status,
			reminder.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reminder.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	reminder.CreatedAt = createdAt.Time

	return reminder, nil
}

// GetByID получает напоминание по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CustomerReminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("customer_reminders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reminder, err := scanReminder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReminderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reminder: %v", ErrScanRow, err)
	}

	return reminder, nil
}

// GetByBooking получает напоминания бронирования
func (r *Repository) GetByBooking(ctx context.Context, bookingID int64) ([]*domain.CustomerReminder, error) {
	return r.list(ctx, "GetByBooking", psqlbuilder.Select(columns...).
		From("customer_reminders").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("scheduled_at ASC"))
}

// GetPending получает ожидающие напоминания, время отправки которых наступило к now
func (r *Repository) GetPending(ctx context.Context, now time.Time, limit int) ([]*domain.CustomerReminder, error) {
	builder := psqlbuilder.Select(columns...).
		From("customer_reminders").
		Where(squirrel.Eq{"status": domain.ReminderPending}).
		Where(squirrel.LtOrEq{"scheduled_at": now}).
		OrderBy("scheduled_at ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.list(ctx, "GetPending", builder)
}

// GetAll получает все напоминания, ближайшие сверху
func (r *Repository) GetAll(ctx context.Context) ([]*domain.CustomerReminder, error) {
	return r.list(ctx, "GetAll", psqlbuilder.Select(columns...).
		From("customer_reminders").
		OrderBy("scheduled_at DESC"))
}

// UpdateStatus обновляет статус напоминания; sentAt пишется только для отправленных
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReminderStatus, sentAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customer_reminders").
		Set("status", status).
		Set("sent_at", sentAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.CustomerReminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reminders := make([]*domain.CustomerReminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reminders, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (*domain.CustomerReminder, error) {
	var reminder domain.CustomerReminder
	var sentAt, createdAt sql.NullTime

	err := row.Scan(
		&reminder.ID,
		&reminder.BookingID,
		&reminder.Type,
		&reminder.Message,
		&reminder.ScheduledAt,
		&sentAt,
		&reminder.Status,
		&createdAt,
		&reminder.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if sentAt.Valid {
		t := sentAt.Time
		reminder.SentAt = &t
	}
	reminder.CreatedAt = createdAt.Time

	return &reminder, nil
}
