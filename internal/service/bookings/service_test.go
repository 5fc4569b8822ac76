package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/internal/domain"
	bookingRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/booking"
	"github.com/urinakcleaning/booking-service/internal/service/bookings/models"
	"github.com/urinakcleaning/booking-service/pkg/ptr"
	"github.com/urinakcleaning/booking-service/pkg/types"
)

type bookingRepoMock struct {
	byID     map[int64]*domain.Booking
	all      []*domain.Booking
	filtered []*domain.Booking
	err      error
	filters  []domain.AdminBookingsFilter
}

func (m *bookingRepoMock) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *bookingRepoMock) List(_ context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	m.filters = append(m.filters, filter)
	if m.err != nil {
		return nil, m.err
	}
	if filter == (domain.AdminBookingsFilter{}) {
		return m.all, nil
	}
	return m.filtered, nil
}

type extrasRepoMock struct {
	extras []domain.ServiceExtra
	err    error
}

func (m *extrasRepoMock) GetByServiceType(_ context.Context, _ domain.ServiceType) ([]domain.ServiceExtra, error) {
	return m.extras, m.err
}

type metricsMock struct {
	conflicts int
}

func (m *metricsMock) SetConflictsDetected(n int) { m.conflicts = n }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id int64, date string, start string, hours float64) *domain.Booking {
	d, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID: id,
		BookingDraft: domain.BookingDraft{
			ServiceType:   domain.ServiceGeneral,
			BookingDate:   d,
			BookingTime:   types.MustTimeString(start),
			DurationHours: hours,
			FullName:      "Customer",
		},
	}
}

func TestService_GetByID(t *testing.T) {
	b := booking(1, "2025-03-10", "09:00", 2)
	b.SelectedExtras = []domain.SelectedExtra{{ExtraID: 3, Quantity: 2}, {ExtraID: 9, Quantity: 1}}
	b.Pricing = domain.FrozenPricing{TotalPrice: "90.00"}

	repo := &bookingRepoMock{byID: map[int64]*domain.Booking{1: b}}
	extras := &extrasRepoMock{extras: []domain.ServiceExtra{{ID: 3, Name: "Oven Cleaning", UnitPrice: 25}}}
	svc := NewService(repo, extras, &metricsMock{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "General Cleaning", resp.ServiceName)
	assert.Equal(t, "2025-03-10", resp.BookingDate)
	assert.Equal(t, "09:00", resp.BookingTime)
	assert.Equal(t, "90.00", resp.TotalPrice)
	require.Len(t, resp.SelectedExtras, 2)
	assert.Equal(t, "Oven Cleaning", resp.SelectedExtras[0].Name)
	assert.Equal(t, ptr.Ptr(25.0), resp.SelectedExtras[0].UnitPrice)
	assert.Empty(t, resp.SelectedExtras[1].Name)
	assert.Nil(t, resp.SelectedExtras[1].UnitPrice)
}

func TestService_GetByID_ExtrasUnavailable(t *testing.T) {
	b := booking(1, "2025-03-10", "09:00", 2)
	b.SelectedExtras = []domain.SelectedExtra{{ExtraID: 3, Quantity: 1}}

	svc := NewService(&bookingRepoMock{byID: map[int64]*domain.Booking{1: b}}, &extrasRepoMock{err: errors.New("down")}, nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.SelectedExtras[0].ExtraID)
}

func TestService_GetByID_Errors(t *testing.T) {
	svc := NewService(&bookingRepoMock{byID: map[int64]*domain.Booking{}}, &extrasRepoMock{}, nil, nopLogger{})
	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	svc = NewService(&bookingRepoMock{err: errors.New("db down")}, &extrasRepoMock{}, nil, nopLogger{})
	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListForAdmin(t *testing.T) {
	a := booking(1, "2025-03-10", "09:00", 2)
	b := booking(2, "2025-03-10", "10:00", 2)
	c := booking(3, "2025-03-11", "09:00", 2)

	t.Run("no filter returns all with conflicts", func(t *testing.T) {
		repo := &bookingRepoMock{all: []*domain.Booking{a, b, c}}
		metrics := &metricsMock{}
		svc := NewService(repo, &extrasRepoMock{}, metrics, nopLogger{})

		resp, err := svc.ListForAdmin(context.Background(), &models.AdminBookingsRequest{})
		require.NoError(t, err)

		assert.Len(t, resp.Bookings, 3)
		require.Len(t, resp.Conflicts, 1)
		assert.Equal(t, int64(1), resp.Conflicts[0].BookingA.ID)
		assert.Equal(t, int64(2), resp.Conflicts[0].BookingB.ID)
		assert.Equal(t, 60, resp.Conflicts[0].OverlapMinutes)
		assert.Equal(t, 1, metrics.conflicts)
		assert.Len(t, repo.filters, 1)
	})

	t.Run("conflicts are computed over all bookings", func(t *testing.T) {
		repo := &bookingRepoMock{all: []*domain.Booking{a, b, c}, filtered: []*domain.Booking{a}}
		svc := NewService(repo, &extrasRepoMock{}, nil, nopLogger{})

		resp, err := svc.ListForAdmin(context.Background(), &models.AdminBookingsRequest{Search: "cust"})
		require.NoError(t, err)

		assert.Len(t, resp.Bookings, 1)
		assert.Len(t, resp.Conflicts, 1)
		require.Len(t, repo.filters, 2)
		assert.Equal(t, "cust", repo.filters[1].Search)
	})

	t.Run("conflicts only", func(t *testing.T) {
		repo := &bookingRepoMock{all: []*domain.Booking{a, b, c}}
		svc := NewService(repo, &extrasRepoMock{}, nil, nopLogger{})

		resp, err := svc.ListForAdmin(context.Background(), &models.AdminBookingsRequest{Status: models.StatusConflicts})
		require.NoError(t, err)

		require.Len(t, resp.Bookings, 2)
		assert.Equal(t, int64(1), resp.Bookings[0].ID)
		assert.Equal(t, int64(2), resp.Bookings[1].ID)
	})

	t.Run("date and service type filters", func(t *testing.T) {
		repo := &bookingRepoMock{all: []*domain.Booking{a, b, c}, filtered: []*domain.Booking{c}}
		svc := NewService(repo, &extrasRepoMock{}, nil, nopLogger{})

		resp, err := svc.ListForAdmin(context.Background(), &models.AdminBookingsRequest{
			Date:        ptr.Ptr("2025-03-11"),
			ServiceType: ptr.Ptr("general"),
		})
		require.NoError(t, err)

		assert.Len(t, resp.Bookings, 1)
		require.Len(t, repo.filters, 2)
		require.NotNil(t, repo.filters[1].Date)
		assert.Equal(t, "2025-03-11", repo.filters[1].Date.Format(domain.DateFormat))
		assert.Equal(t, domain.ServiceGeneral, *repo.filters[1].ServiceType)
	})
}

func TestService_ListForAdmin_ConflictsInCreationOrder(t *testing.T) {
	older := booking(1, "2025-03-10", "09:00", 2)
	newer := booking(2, "2025-03-10", "10:00", 2)

	// Репозиторий отдаёт новые сверху
	repo := &bookingRepoMock{all: []*domain.Booking{newer, older}}
	svc := NewService(repo, &extrasRepoMock{}, nil, nopLogger{})

	resp, err := svc.ListForAdmin(context.Background(), &models.AdminBookingsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)

	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(1), resp.Conflicts[0].BookingA.ID)
	assert.Equal(t, int64(2), resp.Conflicts[0].BookingB.ID)
}

func TestService_ListForAdmin_InvalidFilter(t *testing.T) {
	svc := NewService(&bookingRepoMock{}, &extrasRepoMock{}, nil, nopLogger{})

	tests := []struct {
		name string
		req  models.AdminBookingsRequest
	}{
		{name: "bad date", req: models.AdminBookingsRequest{Date: ptr.Ptr("10/03/2025")}},
		{name: "bad service", req: models.AdminBookingsRequest{ServiceType: ptr.Ptr("windows")}},
		{name: "bad status", req: models.AdminBookingsRequest{Status: "pending"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListForAdmin(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetConflicts(t *testing.T) {
	repo := &bookingRepoMock{all: []*domain.Booking{
		booking(1, "2025-03-10", "09:00", 2),
		booking(2, "2025-03-10", "11:00", 2),
	}}
	svc := NewService(repo, &extrasRepoMock{}, nil, nopLogger{})

	resp, err := svc.GetConflicts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
	assert.NotNil(t, resp.Conflicts)

	repo.err = errors.New("db down")
	_, err = svc.GetConflicts(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
