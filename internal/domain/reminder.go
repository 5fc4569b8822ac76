package domain

import (
	"fmt"
	"time"
)

// ReminderType kind of customer reminder
type ReminderType string

const (
	Reminder24Hour ReminderType = "24_hour"
	ReminderCustom ReminderType = "custom"
)

// ReminderStatus delivery state of a reminder
type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderSent    ReminderStatus = "sent"
	ReminderFailed  ReminderStatus = "failed"
)

// SystemActorID CreatedBy value for reminders scheduled automatically at booking time
const SystemActorID int64 = 0

// CustomerReminder an email reminder scheduled for a booking
type CustomerReminder struct {
	ID          int64
	BookingID   int64
	Type        ReminderType
	Message     string
	ScheduledAt time.Time
	SentAt      *time.Time
	Status      ReminderStatus
	CreatedAt   time.Time
	CreatedBy   int64
}

// IsDue returns true if a pending reminder should be sent at now
func (r *CustomerReminder) IsDue(now time.Time) bool {
	return r.Status == ReminderPending && !r.ScheduledAt.After(now)
}

// DefaultReminderMessage текст напоминания, если администратор не задал свой
func DefaultReminderMessage(b *Booking) string {
	return fmt.Sprintf(
		"This is a friendly reminder that your %s appointment is scheduled for tomorrow at %s. We look forward to providing you with excellent service!",
		b.ServiceType.DisplayName(),
		b.BookingTime.Format12h(),
	)
}

// ReminderTime момент отправки напоминания: за ReminderLeadTime до начала бронирования
func ReminderTime(b *Booking, loc *time.Location) time.Time {
	return b.StartsAt(loc).Add(-ReminderLeadTime)
}
