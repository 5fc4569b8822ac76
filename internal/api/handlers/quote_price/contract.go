package quote_price

import (
	"context"

	quotePrice "github.com/urinakcleaning/booking-service/internal/usecase/quote_price"
)

type QuotePriceUseCase interface {
	Execute(ctx context.Context, req *quotePrice.Request) (*quotePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
