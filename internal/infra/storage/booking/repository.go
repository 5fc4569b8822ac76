package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/pkg/dbmetrics"
	"github.com/urinakcleaning/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var draftColumns = []string{
	"service_type",
	"frequency",
	"duration_hours",
	"bedrooms",
	"bathrooms",
	"toilets",
	"living_rooms",
	"kitchen",
	"utility_room",
	"carpet_cleaning_areas",
	"square_footage",
	"notify_more_time",
	"property_type",
	"property_status",
	"surface_type",
	"surface_material",
	"quote_request",
	"special_instructions",
	"booking_date",
	"booking_time",
	"full_name",
	"email",
	"phone",
	"address1",
	"address2",
	"city",
	"postcode",
	"sms_reminders",
	"tip_kind",
	"tip_percentage",
	"custom_tip",
	"selected_extras",
	"base_price",
	"extras_total",
	"tip_amount",
	"total_price",
	"total_duration_minutes",
	"quote_based",
}

var selectColumns = append(append([]string{"id"}, draftColumns...), "created_at")

// Create сохраняет бронирование вместе с зафиксированной ценой.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	extras := booking.SelectedExtras
	if extras == nil {
		extras = []domain.SelectedExtra{}
	}
	extrasJSON, err := json.Marshal(extras)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncodeExtras, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(draftColumns...).
		Values(
			booking.ServiceType,
			booking.Frequency,
			booking.DurationHours,
			booking.Bedrooms,
			booking.Bathrooms,
			booking.Toilets,
			booking.LivingRooms,
			booking.Kitchen,
			booking.UtilityRoom,
			booking.CarpetCleaningAreas,
			booking.SquareFootage,
			booking.NotifyMoreTime,
			booking.PropertyType,
			booking.PropertyStatus,
			booking.SurfaceType,
			booking.SurfaceMaterial,
			booking.QuoteRequest,
			booking.SpecialInstructions,
			booking.BookingDate,
			booking.BookingTime,
			booking.FullName,
			booking.Email,
			booking.Phone,
			booking.Address1,
			booking.Address2,
			booking.City,
			booking.Postcode,
			booking.SMSReminders,
			booking.Tip.Kind,
			booking.Tip.Percentage,
			booking.Tip.CustomAmount,
			string(extrasJSON),
			booking.Pricing.BasePrice,
			booking.Pricing.ExtrasTotal,
			booking.Pricing.TipAmount,
			booking.Pricing.TotalPrice,
			booking.Pricing.TotalDurationMinutes,
			booking.Pricing.QuoteBased,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру админ-панели, новые сверху.
// ConflictsOnly здесь не учитывается: конфликты считаются по всем бронированиям.
func (r *Repository) List(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("bookings").
		OrderBy("created_at DESC", "id DESC")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.Like{"phone": pattern},
		})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}

	if filter.ServiceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": *filter.ServiceType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListUpcomingWithoutReminder получает бронирования с датой не раньше from,
// для которых ещё не создано ни одного напоминания
func (r *Repository) ListUpcomingWithoutReminder(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": from.Format(domain.DateFormat)}).
		Where("NOT EXISTS (SELECT 1 FROM customer_reminders cr WHERE cr.booking_id = bookings.id)").
		OrderBy("booking_date ASC", "booking_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingWithoutReminder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingWithoutReminder - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime
	var extrasJSON []byte

	err := row.Scan(
		&booking.ID,
		&booking.ServiceType,
		&booking.Frequency,
		&booking.DurationHours,
		&booking.Bedrooms,
		&booking.Bathrooms,
		&booking.Toilets,
		&booking.LivingRooms,
		&booking.Kitchen,
		&booking.UtilityRoom,
		&booking.CarpetCleaningAreas,
		&booking.SquareFootage,
		&booking.NotifyMoreTime,
		&booking.PropertyType,
		&booking.PropertyStatus,
		&booking.SurfaceType,
		&booking.SurfaceMaterial,
		&booking.QuoteRequest,
		&booking.SpecialInstructions,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.FullName,
		&booking.Email,
		&booking.Phone,
		&booking.Address1,
		&booking.Address2,
		&booking.City,
		&booking.Postcode,
		&booking.SMSReminders,
		&booking.Tip.Kind,
		&booking.Tip.Percentage,
		&booking.Tip.CustomAmount,
		&extrasJSON,
		&booking.Pricing.BasePrice,
		&booking.Pricing.ExtrasTotal,
		&booking.Pricing.TipAmount,
		&booking.Pricing.TotalPrice,
		&booking.Pricing.TotalDurationMinutes,
		&booking.Pricing.QuoteBased,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if len(extrasJSON) > 0 {
		if err := json.Unmarshal(extrasJSON, &booking.SelectedExtras); err != nil {
			return nil, fmt.Errorf("decode selected_extras: %v", err)
		}
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
