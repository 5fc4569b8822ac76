package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/internal/integrations/mailer"
	"github.com/urinakcleaning/booking-service/pkg/types"
)

type recordingSender struct {
	failures int
	sent     []mailer.Message
	attempts int
}

func (r *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	r.attempts++
	if r.attempts <= r.failures {
		return errors.New("temporary failure")
	}
	r.sent = append(r.sent, msg)
	return nil
}

type emailMetrics struct {
	ok, failed map[string]int
}

func newEmailMetrics() *emailMetrics {
	return &emailMetrics{ok: map[string]int{}, failed: map[string]int{}}
}

func (m *emailMetrics) IncEmail(kind string, ok bool) {
	if ok {
		m.ok[kind]++
	} else {
		m.failed[kind]++
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID: 17,
		BookingDraft: domain.BookingDraft{
			ServiceType:         domain.ServiceDeep,
			Frequency:           domain.FrequencyOneTime,
			DurationHours:       3,
			Bedrooms:            2,
			BookingDate:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			BookingTime:         types.MustTimeString("14:30"),
			FullName:            "Jane <Doe>",
			Email:               "jane@example.com",
			Phone:               "07700900000",
			Address1:            "1 High St",
			City:                "London",
			Postcode:            "E1 6AN",
			SpecialInstructions: "Cat in the flat",
			SelectedExtras:      []domain.SelectedExtra{{ExtraID: 5, Quantity: 2}},
		},
		Pricing: domain.FrozenPricing{BasePrice: "60.00", ExtrasTotal: "70.00", TipAmount: "0.00", TotalPrice: "130.00"},
	}
}

func TestService_NotifyBookingCreated(t *testing.T) {
	sender := &recordingSender{}
	metrics := newEmailMetrics()
	svc := NewService(sender, Config{OwnerEmail: "owner@example.com", MaxAttempts: 3}, metrics, nopLogger{})

	svc.NotifyBookingCreated(context.Background(), sampleBooking(), []domain.ServiceExtra{{ID: 5, Name: "Carpet Deep Clean"}})

	require.Len(t, sender.sent, 2)
	confirmation, alert := sender.sent[0], sender.sent[1]

	assert.Equal(t, "jane@example.com", confirmation.To)
	assert.Equal(t, "Booking Confirmation #17 - URINAKCLEANING", confirmation.Subject)
	assert.Contains(t, confirmation.HTML, "Carpet Deep Clean x2")
	assert.Contains(t, confirmation.HTML, "Jane &lt;Doe&gt;")
	assert.Contains(t, confirmation.Text, "Total: £130.00")

	assert.Equal(t, "owner@example.com", alert.To)
	assert.Equal(t, "New Booking Alert #17 - deep Cleaning", alert.Subject)
	assert.Contains(t, alert.HTML, "Bedrooms: 2")
	assert.Contains(t, alert.HTML, "Cat in the flat")

	assert.Equal(t, 1, metrics.ok[KindConfirmation])
	assert.Equal(t, 1, metrics.ok[KindOwnerAlert])
}

func TestService_NotifyBookingCreated_NoOwnerEmail(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, Config{MaxAttempts: 1}, newEmailMetrics(), nopLogger{})

	svc.NotifyBookingCreated(context.Background(), sampleBooking(), nil)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].HTML, "Extra #5 x2")
}

func TestService_RetriesUntilSuccess(t *testing.T) {
	sender := &recordingSender{failures: 2}
	metrics := newEmailMetrics()
	svc := NewService(sender, Config{MaxAttempts: 3, RetryDelay: time.Millisecond}, metrics, nopLogger{})

	err := svc.SendConfirmation(context.Background(), sampleBooking(), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, sender.attempts)
	assert.Equal(t, 1, metrics.ok[KindConfirmation])
}

func TestService_GivesUpAfterMaxAttempts(t *testing.T) {
	sender := &recordingSender{failures: 5}
	metrics := newEmailMetrics()
	svc := NewService(sender, Config{MaxAttempts: 2, RetryDelay: time.Millisecond}, metrics, nopLogger{})

	err := svc.SendReminder(context.Background(), sampleBooking(), "see you tomorrow")

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, 2, sender.attempts)
	assert.Equal(t, 1, metrics.failed[KindReminder])
}

func TestService_StopsRetryingOnCancel(t *testing.T) {
	sender := &recordingSender{failures: 5}
	svc := NewService(sender, Config{MaxAttempts: 5, RetryDelay: time.Hour}, newEmailMetrics(), nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.SendConfirmation(ctx, sampleBooking(), nil)

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, 1, sender.attempts)
}

func TestService_SendReminder(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, Config{MaxAttempts: 1}, newEmailMetrics(), nopLogger{})
	b := sampleBooking()

	require.NoError(t, svc.SendReminder(context.Background(), b, domain.DefaultReminderMessage(b)))

	require.Len(t, sender.sent, 1)
	assert.True(t, strings.HasPrefix(sender.sent[0].Subject, "Reminder: your Deep Cleaning appointment"))
	assert.Contains(t, sender.sent[0].Text, "scheduled for tomorrow at 2:30 PM")
}
