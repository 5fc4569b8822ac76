// Package pricing computes the live price and duration of a booking draft.
// All functions are pure and never fail: malformed input degrades to zero.
package pricing

import (
	"math"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// Compute returns the price breakdown of draft against the extras catalog of its service type
func Compute(draft domain.BookingDraft, extras []domain.ServiceExtra) domain.PriceBreakdown {
	entry, ok := domain.LookupService(draft.ServiceType)
	if !ok {
		return domain.PriceBreakdown{}
	}

	var bd domain.PriceBreakdown

	// 1. Базовая цена и длительность по категории услуги
	switch entry.Category {
	case domain.CategoryRoomTally:
		bd.BasePrice, bd.BaseDurationMinutes = roomTally(draft)
	case domain.CategoryBedroomTiered:
		hours := bedroomTierHours(draft.Bedrooms)
		bd.BasePrice = entry.BaseHourlyRate * float64(hours)
		bd.BaseDurationMinutes = hours * 60
	case domain.CategoryQuoteBased:
		bd.QuoteBased = true
	default:
		hours := draft.DurationHours
		if hours <= 0 {
			hours = 1
		}
		bd.BasePrice = entry.BaseHourlyRate * hours
		bd.BaseDurationMinutes = int(math.Round(hours * 60))
	}

	// 2. Дополнительные услуги
	bd.ExtrasTotal, bd.ExtrasDurationMinutes = extrasTotals(draft.SelectedExtras, extras)
	if bd.QuoteBased {
		bd.ExtrasDurationMinutes = 0
	}

	// 3. Итоги и чаевые
	bd.Subtotal = bd.BasePrice + bd.ExtrasTotal
	if !bd.QuoteBased {
		bd.TipAmount = ResolveTip(draft.Tip, bd.Subtotal)
	}
	bd.Total = bd.Subtotal + bd.TipAmount
	bd.TotalDurationMinutes = bd.BaseDurationMinutes + bd.ExtrasDurationMinutes

	return bd
}

func bedroomTierHours(bedrooms int) int {
	if bedrooms < 0 {
		bedrooms = 0
	}
	return bedrooms + domain.BedroomTierExtraHour
}

func extrasTotals(selected []domain.SelectedExtra, catalog []domain.ServiceExtra) (float64, int) {
	byID := make(map[int64]domain.ServiceExtra, len(catalog))
	for _, e := range catalog {
		byID[e.ID] = e
	}

	var total float64
	var minutes int
	for _, sel := range selected {
		extra, ok := byID[sel.ExtraID]
		if !ok {
			continue
		}
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		total += extra.UnitPrice * float64(qty)
		if extra.DurationText != nil {
			minutes += ParseDurationText(*extra.DurationText) * qty
		}
	}
	return total, minutes
}
