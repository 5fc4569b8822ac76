package quote_price

import (
	"context"
	"fmt"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/internal/pricing"
)

// UseCase пересчитывает цену черновика при каждом изменении в мастере
type UseCase struct {
	extrasRepo ExtrasRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(extrasRepo ExtrasRepository, logger Logger) *UseCase {
	return &UseCase{
		extrasRepo: extrasRepo,
		logger:     logger,
	}
}

// Execute возвращает разбивку цены. Черновик может быть заполнен частично,
// поэтому минимальный срок и длительность здесь не проверяются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Неизвестная услуга дает нулевую цену, каталог доп. услуг не нужен
	if _, ok := domain.LookupService(req.Draft.ServiceType); !ok {
		uc.logger.Warn("QuotePrice: unknown service type %q", req.Draft.ServiceType)
		return &Response{Frozen: pricing.Freeze(domain.PriceBreakdown{})}, nil
	}

	// 2. Каталог доп. услуг выбранного типа
	var extras []domain.ServiceExtra
	if len(req.Draft.SelectedExtras) > 0 {
		var err error
		extras, err = uc.extrasRepo.GetByServiceType(ctx, req.Draft.ServiceType)
		if err != nil {
			uc.logger.Error("QuotePrice: failed to get extras for %s: %v", req.Draft.ServiceType, err)
			return nil, fmt.Errorf("%w: failed to get extras: %v", ErrInternal, err)
		}
	}

	// 3. Расчет
	breakdown := pricing.Compute(req.Draft, extras)

	return &Response{
		Breakdown: breakdown,
		Frozen:    pricing.Freeze(breakdown),
	}, nil
}
