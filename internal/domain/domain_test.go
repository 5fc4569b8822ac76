package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/pkg/types"
)

func TestLookupService(t *testing.T) {
	for _, st := range ServiceTypes() {
		entry, ok := LookupService(st)
		require.True(t, ok, st)
		assert.Equal(t, st, entry.Key)
	}

	_, ok := LookupService("windows")
	assert.False(t, ok)

	jet, _ := LookupService(ServiceJetWashing)
	assert.True(t, jet.IsQuoteBased())
	assert.Equal(t, "quote_based", jet.Category.String())
}

func TestServiceType_DisplayName(t *testing.T) {
	assert.Equal(t, "Jet Washing/Garden Cleaning", ServiceJetWashing.DisplayName())
	assert.Equal(t, "windows", ServiceType("windows").DisplayName())
}

func TestFrequency_IsValid(t *testing.T) {
	assert.True(t, FrequencyFortnightly.IsValid())
	assert.False(t, Frequency("daily").IsValid())
}

func TestBooking_StartsAtAndReminder(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	b := &Booking{BookingDraft: BookingDraft{
		ServiceType:   ServiceGeneral,
		BookingDate:   time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		BookingTime:   types.MustTimeString("14:00"),
		DurationHours: 2.5,
	}}

	assert.Equal(t, time.Date(2025, 7, 15, 14, 0, 0, 0, loc), b.StartsAt(loc))
	assert.Equal(t, time.Date(2025, 7, 14, 14, 0, 0, 0, loc), ReminderTime(b, loc))
	assert.Equal(t, 150, b.DurationMinutes())
	assert.Equal(t,
		"This is a friendly reminder that your General Cleaning appointment is scheduled for tomorrow at 2:00 PM. We look forward to providing you with excellent service!",
		DefaultReminderMessage(b),
	)
}

func TestCustomerReminder_IsDue(t *testing.T) {
	now := time.Date(2025, 7, 14, 14, 0, 0, 0, time.UTC)

	assert.True(t, (&CustomerReminder{Status: ReminderPending, ScheduledAt: now}).IsDue(now))
	assert.False(t, (&CustomerReminder{Status: ReminderPending, ScheduledAt: now.Add(time.Second)}).IsDue(now))
	assert.False(t, (&CustomerReminder{Status: ReminderSent, ScheduledAt: now.Add(-time.Hour)}).IsDue(now))
}
