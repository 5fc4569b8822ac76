package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/pkg/ptr"
	"github.com/urinakcleaning/booking-service/pkg/types"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type bookingRepoMock struct {
	created *domain.Booking
	err     error
}

func (m *bookingRepoMock) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	b.ID = 101
	b.CreatedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m.created = b
	return b, nil
}

type reminderRepoMock struct {
	created *domain.CustomerReminder
	err     error
}

func (m *reminderRepoMock) Create(_ context.Context, r *domain.CustomerReminder) (*domain.CustomerReminder, error) {
	if m.err != nil {
		return nil, m.err
	}
	r.ID = 7
	m.created = r
	return r, nil
}

type extrasRepoMock struct {
	extras []domain.ServiceExtra
	err    error
}

func (m *extrasRepoMock) GetByServiceType(_ context.Context, _ domain.ServiceType) ([]domain.ServiceExtra, error) {
	return m.extras, m.err
}

type notifierMock struct {
	mu    sync.Mutex
	calls []int64
	done  chan struct{}
}

func (m *notifierMock) NotifyBookingCreated(_ context.Context, b *domain.Booking, _ []domain.ServiceExtra) {
	m.mu.Lock()
	m.calls = append(m.calls, b.ID)
	m.mu.Unlock()
	close(m.done)
}

type txMock struct {
	calls int
}

func (m *txMock) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type metricsMock struct {
	created map[string]int
}

func (m *metricsMock) IncBookingCreated(serviceType string) {
	m.created[serviceType]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	bookings  *bookingRepoMock
	reminders *reminderRepoMock
	extras    *extrasRepoMock
	notifier  *notifierMock
	tx        *txMock
	metrics   *metricsMock
}

// now: Monday 2025-03-03 10:00 London
var testNow = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		bookings:  &bookingRepoMock{},
		reminders: &reminderRepoMock{},
		extras: &extrasRepoMock{extras: []domain.ServiceExtra{
			{ID: 1, ServiceType: domain.ServiceGeneral, Name: "Oven Cleaning", UnitPrice: 25, DurationText: ptr.Ptr("1hr")},
			{ID: 2, ServiceType: domain.ServiceGeneral, Name: "Fridge Cleaning", UnitPrice: 20},
		}},
		notifier: &notifierMock{done: make(chan struct{})},
		tx:       &txMock{},
		metrics:  &metricsMock{created: map[string]int{}},
	}
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	f.uc = NewUseCase(f.bookings, f.reminders, f.extras, f.notifier, f.tx, f.metrics, loc, nopLogger{})
	f.uc.timeProvider = fixedTime{t: testNow}
	return f
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		ServiceType:    domain.ServiceGeneral,
		Frequency:      domain.FrequencyWeekly,
		DurationHours:  2.5,
		BookingDate:    time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		BookingTime:    types.MustTimeString("09:00"),
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "07700900000",
		Address1:       "1 High St",
		City:           "London",
		Postcode:       "E1 6AN",
		Tip:            domain.TipSpec{Kind: domain.TipPercentage, Percentage: 10},
		SelectedExtras: []domain.SelectedExtra{{ExtraID: 1, Quantity: 2}},
	}
}

func waitNotified(t *testing.T, n *notifierMock) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{Draft: validDraft()})
	require.NoError(t, err)

	// base 2.5h x 20 = 50, extras 2 x 25 = 50, tip 10%
	assert.Equal(t, int64(101), resp.Booking.ID)
	assert.Equal(t, "50.00", resp.Booking.Pricing.BasePrice)
	assert.Equal(t, "50.00", resp.Booking.Pricing.ExtrasTotal)
	assert.Equal(t, "10.00", resp.Booking.Pricing.TipAmount)
	assert.Equal(t, "110.00", resp.Booking.Pricing.TotalPrice)
	assert.Equal(t, 150+120, resp.Booking.Pricing.TotalDurationMinutes)
	assert.Equal(t, 2.5, resp.Booking.DurationHours)

	require.NotNil(t, resp.Reminder)
	assert.Equal(t, int64(101), resp.Reminder.BookingID)
	assert.Equal(t, domain.Reminder24Hour, resp.Reminder.Type)
	assert.Equal(t, domain.ReminderPending, resp.Reminder.Status)
	assert.Equal(t, "2025-03-05T09:00:00Z", resp.Reminder.ScheduledAt.UTC().Format(time.RFC3339))
	assert.Contains(t, resp.Reminder.Message, "General Cleaning appointment is scheduled for tomorrow at 9:00 AM")

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.metrics.created["general"])

	waitNotified(t, f.notifier)
	assert.Equal(t, []int64{101}, f.notifier.calls)
}

func TestUseCase_Execute_DefaultsFrequency(t *testing.T) {
	f := newFixture(t)
	draft := validDraft()
	draft.Frequency = ""

	resp, err := f.uc.Execute(context.Background(), &Request{Draft: draft})
	require.NoError(t, err)

	assert.Equal(t, domain.FrequencyOneTime, resp.Booking.Frequency)
	waitNotified(t, f.notifier)
}

func TestUseCase_Execute_RoomTallyUsesComputedDuration(t *testing.T) {
	f := newFixture(t)
	f.extras.extras = nil
	draft := validDraft()
	draft.ServiceType = domain.ServiceDeep
	draft.DurationHours = 0
	draft.Bedrooms = 3
	draft.Bathrooms = 2
	draft.SelectedExtras = nil
	draft.BookingDate = time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{Draft: draft})
	require.NoError(t, err)

	assert.Equal(t, "110.00", resp.Booking.Pricing.BasePrice)
	assert.Equal(t, 5.0, resp.Booking.DurationHours)
	waitNotified(t, f.notifier)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.BookingDraft)
		wantErr error
	}{
		{name: "unknown service", mutate: func(d *domain.BookingDraft) { d.ServiceType = "windows" }, wantErr: ErrUnknownServiceType},
		{name: "bad frequency", mutate: func(d *domain.BookingDraft) { d.Frequency = "daily" }, wantErr: ErrInvalidInput},
		{name: "missing name", mutate: func(d *domain.BookingDraft) { d.FullName = " " }, wantErr: ErrInvalidInput},
		{name: "bad email", mutate: func(d *domain.BookingDraft) { d.Email = "not-an-email" }, wantErr: ErrInvalidInput},
		{name: "missing time", mutate: func(d *domain.BookingDraft) { d.BookingTime = types.TimeString{} }, wantErr: ErrInvalidInput},
		{name: "missing date", mutate: func(d *domain.BookingDraft) { d.BookingDate = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "negative rooms", mutate: func(d *domain.BookingDraft) { d.Bathrooms = -1 }, wantErr: ErrInvalidInput},
		{name: "bad tip percentage", mutate: func(d *domain.BookingDraft) { d.Tip.Percentage = 12 }, wantErr: ErrInvalidInput},
		{name: "bad tip kind", mutate: func(d *domain.BookingDraft) { d.Tip.Kind = "crypto" }, wantErr: ErrInvalidInput},
		{name: "too many extras", mutate: func(d *domain.BookingDraft) { d.SelectedExtras[0].Quantity = 50 }, wantErr: ErrInvalidInput},
		{name: "zero extra quantity", mutate: func(d *domain.BookingDraft) { d.SelectedExtras[0].Quantity = 0 }, wantErr: ErrInvalidInput},
		{name: "huge custom tip", mutate: func(d *domain.BookingDraft) {
			d.Tip = domain.TipSpec{Kind: domain.TipCustom, CustomAmount: "1e12"}
		}, wantErr: ErrInvalidInput},
		{name: "custom tip above maximum", mutate: func(d *domain.BookingDraft) {
			d.Tip = domain.TipSpec{Kind: domain.TipCustom, CustomAmount: "500.01"}
		}, wantErr: ErrInvalidInput},
		{name: "negative custom tip", mutate: func(d *domain.BookingDraft) {
			d.Tip = domain.TipSpec{Kind: domain.TipCustom, CustomAmount: "-5"}
		}, wantErr: ErrInvalidInput},
		{name: "non-numeric custom tip", mutate: func(d *domain.BookingDraft) {
			d.Tip = domain.TipSpec{Kind: domain.TipCustom, CustomAmount: "five pounds"}
		}, wantErr: ErrInvalidInput},
		{name: "duration not in half hours", mutate: func(d *domain.BookingDraft) { d.DurationHours = 2.25 }, wantErr: ErrInvalidDuration},
		{name: "duration too short", mutate: func(d *domain.BookingDraft) { d.DurationHours = 1.5 }, wantErr: ErrDurationTooShort},
		{name: "date in past", mutate: func(d *domain.BookingDraft) { d.BookingDate = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidDate},
		{name: "insufficient notice", mutate: func(d *domain.BookingDraft) { d.BookingDate = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC) }, wantErr: ErrInsufficientNotice},
		{name: "unknown extra", mutate: func(d *domain.BookingDraft) { d.SelectedExtras[0].ExtraID = 99 }, wantErr: ErrUnknownExtra},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			draft := validDraft()
			tt.mutate(&draft)

			_, err := f.uc.Execute(context.Background(), &Request{Draft: draft})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.bookings.created)
			assert.Equal(t, 0, f.tx.calls)
		})
	}
}

func TestUseCase_Execute_CustomTip(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantTip string
	}{
		{name: "flat amount", amount: "7.50", wantTip: "7.50"},
		{name: "maximum", amount: "500", wantTip: "500.00"},
		{name: "empty", amount: "", wantTip: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			draft := validDraft()
			draft.Tip = domain.TipSpec{Kind: domain.TipCustom, CustomAmount: tt.amount}

			resp, err := f.uc.Execute(context.Background(), &Request{Draft: draft})
			require.NoError(t, err)

			assert.Equal(t, tt.wantTip, resp.Booking.Pricing.TipAmount)
			waitNotified(t, f.notifier)
		})
	}
}

func TestUseCase_Execute_TotalAboveStorableAmount(t *testing.T) {
	f := newFixture(t)
	f.extras.extras[0].UnitPrice = 20_000_000
	draft := validDraft()
	draft.SelectedExtras[0].Quantity = domain.MaxExtraQuantity

	_, err := f.uc.Execute(context.Background(), &Request{Draft: draft})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, f.bookings.created)
	assert.Equal(t, 0, f.tx.calls)
}

func TestUseCase_Execute_QuoteBasedSkipsDurationCheck(t *testing.T) {
	f := newFixture(t)
	f.extras.extras = nil
	draft := validDraft()
	draft.ServiceType = domain.ServiceCommercial
	draft.DurationHours = 0
	draft.SelectedExtras = nil
	draft.QuoteRequest = "Office of 300 sq m"

	resp, err := f.uc.Execute(context.Background(), &Request{Draft: draft})
	require.NoError(t, err)

	assert.True(t, resp.Booking.Pricing.QuoteBased)
	assert.Equal(t, "0.00", resp.Booking.Pricing.TotalPrice)
	assert.Equal(t, 3.0, resp.Booking.DurationHours)
	waitNotified(t, f.notifier)
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	t.Run("extras lookup", func(t *testing.T) {
		f := newFixture(t)
		f.extras.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), &Request{Draft: validDraft()})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking insert", func(t *testing.T) {
		f := newFixture(t)
		f.bookings.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), &Request{Draft: validDraft()})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.metrics.created)
	})

	t.Run("reminder insert", func(t *testing.T) {
		f := newFixture(t)
		f.reminders.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), &Request{Draft: validDraft()})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.notifier.calls)
	})
}
