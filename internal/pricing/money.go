package pricing

import (
	"fmt"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// FormatAmount renders an amount with two decimals, the precision bookings are stored with
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Freeze converts a breakdown into the fixed-precision values persisted with a booking
func Freeze(bd domain.PriceBreakdown) domain.FrozenPricing {
	return domain.FrozenPricing{
		BasePrice:            FormatAmount(bd.BasePrice),
		ExtrasTotal:          FormatAmount(bd.ExtrasTotal),
		TipAmount:            FormatAmount(bd.TipAmount),
		TotalPrice:           FormatAmount(bd.Total),
		TotalDurationMinutes: bd.TotalDurationMinutes,
		QuoteBased:           bd.QuoteBased,
	}
}
