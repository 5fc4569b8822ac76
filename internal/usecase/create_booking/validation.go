package create_booking

import (
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// validateRequest валидирует структуру черновика. Не зависит от текущего времени и каталога доп. услуг.
func validateRequest(req *Request) (domain.ServiceCatalogEntry, error) {
	d := &req.Draft

	entry, ok := domain.LookupService(d.ServiceType)
	if !ok {
		return entry, fmt.Errorf("%w: %q", ErrUnknownServiceType, d.ServiceType)
	}

	if d.Frequency == "" {
		d.Frequency = domain.FrequencyOneTime
	}
	if !d.Frequency.IsValid() {
		return entry, fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, d.Frequency)
	}

	// Проверяем, что дата и время указаны
	if d.BookingDate.IsZero() {
		return entry, fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}
	if d.BookingTime.IsZero() {
		return entry, fmt.Errorf("%w: bookingTime is required", ErrInvalidInput)
	}
	if err := d.BookingTime.Validate(); err != nil {
		return entry, fmt.Errorf("%w: invalid bookingTime format: %v", ErrInvalidInput, err)
	}

	if err := validateContact(d); err != nil {
		return entry, err
	}

	if err := validateRooms(d); err != nil {
		return entry, err
	}

	if err := validateTip(d.Tip); err != nil {
		return entry, err
	}

	for _, sel := range d.SelectedExtras {
		if sel.ExtraID <= 0 {
			return entry, fmt.Errorf("%w: extraId must be positive", ErrInvalidInput)
		}
		if sel.Quantity < 1 || sel.Quantity > domain.MaxExtraQuantity {
			return entry, fmt.Errorf("%w: quantity for extra %d must be between 1 and %d", ErrInvalidInput, sel.ExtraID, domain.MaxExtraQuantity)
		}
	}

	if len(d.SpecialInstructions) > domain.MaxSpecialInstructionLen {
		return entry, fmt.Errorf("%w: specialInstructions is too long", ErrInvalidInput)
	}
	if len(d.QuoteRequest) > domain.MaxQuoteRequestLen {
		return entry, fmt.Errorf("%w: quoteRequest is too long", ErrInvalidInput)
	}

	if entry.Category == domain.CategoryStandardHourly {
		if err := validateDuration(d.DurationHours, entry.MinimumDurationHours); err != nil {
			return entry, err
		}
	}

	return entry, nil
}

func validateContact(d *domain.BookingDraft) error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", d.FullName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address1", d.Address1},
		{"city", d.City},
		{"postcode", d.Postcode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if _, err := mail.ParseAddress(d.Email); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateRooms(d *domain.BookingDraft) error {
	counts := []struct {
		name  string
		value int
	}{
		{"bedrooms", d.Bedrooms},
		{"bathrooms", d.Bathrooms},
		{"toilets", d.Toilets},
		{"livingRooms", d.LivingRooms},
		{"kitchen", d.Kitchen},
		{"utilityRoom", d.UtilityRoom},
		{"carpetCleaningAreas", d.CarpetCleaningAreas},
	}
	for _, c := range counts {
		if c.value < 0 || c.value > domain.MaxRoomCount {
			return fmt.Errorf("%w: %s must be between 0 and %d", ErrInvalidInput, c.name, domain.MaxRoomCount)
		}
	}
	if d.SquareFootage < 0 {
		return fmt.Errorf("%w: squareFootage must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateTip(tip domain.TipSpec) error {
	switch tip.Kind {
	case "", domain.TipPercentage:
		if !slices.Contains(domain.TipPercentages, tip.Percentage) {
			return fmt.Errorf("%w: tip percentage must be one of %v", ErrInvalidInput, domain.TipPercentages)
		}
	case domain.TipCustom:
		raw := strings.TrimSpace(tip.CustomAmount)
		if raw == "" {
			return nil
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return fmt.Errorf("%w: custom tip %q is not a number", ErrInvalidInput, tip.CustomAmount)
		}
		if amount < 0 || amount > domain.MaxCustomTip {
			return fmt.Errorf("%w: custom tip must be between 0 and %.2f", ErrInvalidInput, domain.MaxCustomTip)
		}
	default:
		return fmt.Errorf("%w: unknown tip kind %q", ErrInvalidInput, tip.Kind)
	}
	return nil
}

// validateTotal проверяет, что итоговая сумма помещается в колонки цены
func validateTotal(bd domain.PriceBreakdown) error {
	if bd.Total > domain.MaxStoredAmount {
		return fmt.Errorf("%w: total %.2f exceeds the maximum booking amount", ErrInvalidInput, bd.Total)
	}
	return nil
}

// validateDuration проверяет почасовую длительность: шаг 0.5 ч, не меньше минимума услуги
func validateDuration(hours, minimum float64) error {
	steps := hours / domain.DurationStepHours
	if hours <= 0 || math.Abs(steps-math.Round(steps)) > 1e-9 || hours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be a positive multiple of %.1f hours up to %d", ErrInvalidDuration, domain.DurationStepHours, domain.MaxDurationHours)
	}
	if hours < minimum {
		return fmt.Errorf("%w: minimum is %g hours", ErrDurationTooShort, minimum)
	}
	return nil
}

// validateNotice проверяет, что дата не в прошлом и не раньше, чем через MinimumNoticeDays от сегодня
func validateNotice(bookingDate, now time.Time, noticeDays int) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	earliest := today.AddDate(0, 0, noticeDays)
	if dateOnly.Before(earliest) {
		return fmt.Errorf("%w: earliest available date is %s", ErrInsufficientNotice, earliest.Format(domain.DateFormat))
	}
	return nil
}

// validateExtras проверяет, что все выбранные доп. услуги есть в каталоге типа услуги
func validateExtras(selected []domain.SelectedExtra, catalog []domain.ServiceExtra) error {
	known := make(map[int64]struct{}, len(catalog))
	for _, e := range catalog {
		known[e.ID] = struct{}{}
	}
	for _, sel := range selected {
		if _, ok := known[sel.ExtraID]; !ok {
			return fmt.Errorf("%w: extra id=%d", ErrUnknownExtra, sel.ExtraID)
		}
	}
	return nil
}

// bookedDurationHours длительность, которую занимает бронирование в расписании.
// Для почасовых услуг это запрошенные часы, для остальных - рассчитанная длительность
// или минимальная длительность услуги, если расчёта нет (услуги по запросу цены).
func bookedDurationHours(d domain.BookingDraft, entry domain.ServiceCatalogEntry, bd domain.PriceBreakdown) float64 {
	if entry.Category == domain.CategoryStandardHourly {
		return d.DurationHours
	}
	if bd.TotalDurationMinutes > 0 {
		return float64(bd.TotalDurationMinutes) / 60
	}
	return entry.MinimumDurationHours
}
