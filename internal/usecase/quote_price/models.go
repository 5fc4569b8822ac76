package quote_price

import "github.com/urinakcleaning/booking-service/internal/domain"

// Request черновик бронирования в текущем состоянии мастера
type Request struct {
	Draft domain.BookingDraft
}

// Response пересчитанная цена для боковой панели
type Response struct {
	Breakdown domain.PriceBreakdown
	Frozen    domain.FrozenPricing // Те же суммы в виде строк с двумя знаками
}
