package quote_price

import quotePrice "github.com/urinakcleaning/booking-service/internal/usecase/quote_price"

// QuoteResponse разбивка цены для боковой панели мастера
type QuoteResponse struct {
	BasePrice             string `json:"basePrice"`
	BaseDurationMinutes   int    `json:"baseDurationMinutes"`
	ExtrasTotal           string `json:"extrasTotal"`
	ExtrasDurationMinutes int    `json:"extrasDurationMinutes"`
	Subtotal              string `json:"subtotal"`
	TipAmount             string `json:"tipAmount"`
	Total                 string `json:"total"`
	TotalDurationMinutes  int    `json:"totalDurationMinutes"`
	QuoteBased            bool   `json:"quoteBased"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response, format func(float64) string) *QuoteResponse {
	bd := resp.Breakdown
	return &QuoteResponse{
		BasePrice:             resp.Frozen.BasePrice,
		BaseDurationMinutes:   bd.BaseDurationMinutes,
		ExtrasTotal:           resp.Frozen.ExtrasTotal,
		ExtrasDurationMinutes: bd.ExtrasDurationMinutes,
		Subtotal:              format(bd.Subtotal),
		TipAmount:             resp.Frozen.TipAmount,
		Total:                 resp.Frozen.TotalPrice,
		TotalDurationMinutes:  bd.TotalDurationMinutes,
		QuoteBased:            bd.QuoteBased,
	}
}
