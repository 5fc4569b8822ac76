package quote_price

import (
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/pricing"
	quotePrice "github.com/urinakcleaning/booking-service/internal/usecase/quote_price"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/pricing/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.BookingDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := req.ToDomainDraft()
	if err != nil {
		h.logger.Warn("POST /pricing/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quotePrice.Request{Draft: draft})
	if err != nil {
		h.logger.Error("POST /pricing/quote - Failed to compute price: service=%s, error=%v", req.ServiceType, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, pricing.FormatAmount))
}
