package domain

import (
	"time"

	"github.com/urinakcleaning/booking-service/pkg/types"
)

// Frequency how often the customer wants the cleaning repeated.
// Stored for the team only, it has no effect on price.
type Frequency string

const (
	FrequencyOneTime     Frequency = "one-time"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
)

// IsValid returns true for a known frequency
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOneTime, FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly:
		return true
	}
	return false
}

// TipKind distinguishes percentage tips from flat custom amounts
type TipKind string

const (
	TipPercentage TipKind = "percentage"
	TipCustom     TipKind = "custom"
)

// TipSpec tip selected in the wizard: a named percentage (0, 10, 15, 20) or
// a custom flat amount typed by the customer
type TipSpec struct {
	Kind         TipKind
	Percentage   int
	CustomAmount string
}

// BookingDraft the in-progress booking covering every service type.
// Which fields matter depends on ServiceType.
type BookingDraft struct {
	ServiceType   ServiceType
	Frequency     Frequency
	DurationHours float64

	Bedrooms            int
	Bathrooms           int
	Toilets             int
	LivingRooms         int
	Kitchen             int
	UtilityRoom         int
	CarpetCleaningAreas int
	SquareFootage       int
	NotifyMoreTime      bool

	PropertyType    string
	PropertyStatus  string
	SurfaceType     string
	SurfaceMaterial string

	QuoteRequest        string
	SpecialInstructions string

	BookingDate time.Time
	BookingTime types.TimeString

	FullName string
	Email    string
	Phone    string

	Address1 string
	Address2 string
	City     string
	Postcode string

	SMSReminders   bool
	Tip            TipSpec
	SelectedExtras []SelectedExtra
}

// Booking a submitted draft with its frozen pricing. Created once, never mutated.
type Booking struct {
	ID int64
	BookingDraft
	Pricing   FrozenPricing
	CreatedAt time.Time
}

// StartsAt returns the booking date combined with its start time in loc
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	y, m, d := b.BookingDate.Date()
	minutes := b.BookingTime.Minutes()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// DurationMinutes returns the booked duration in whole minutes
func (b *Booking) DurationMinutes() int {
	return int(b.DurationHours*60 + 0.5)
}

// AdminBookingsFilter фильтр списка бронирований в админ-панели
type AdminBookingsFilter struct {
	Search        string       // Подстрока имени/email (без учета регистра) или телефона
	Date          *time.Time   // Конкретная дата (опционально)
	ServiceType   *ServiceType // Тип услуги (опционально)
	ConflictsOnly bool         // Только бронирования, участвующие в конфликтах
}
