package domain

// PriceBreakdown derived price and duration of a draft, recomputed on every change
type PriceBreakdown struct {
	BasePrice             float64
	BaseDurationMinutes   int
	ExtrasTotal           float64
	ExtrasDurationMinutes int
	TipAmount             float64
	Subtotal              float64
	Total                 float64
	TotalDurationMinutes  int
	QuoteBased            bool
}

// FrozenPricing breakdown values stored with a booking as fixed-precision decimals
type FrozenPricing struct {
	BasePrice            string
	ExtrasTotal          string
	TipAmount            string
	TotalPrice           string
	TotalDurationMinutes int
	QuoteBased           bool
}
