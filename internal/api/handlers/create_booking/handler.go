package create_booking

import (
	"errors"
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	createBooking "github.com/urinakcleaning/booking-service/internal/usecase/create_booking"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.BookingDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в черновик (с парсингом даты и времени)
	draft, err := req.ToDomainDraft()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{Draft: draft})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrUnknownServiceType),
			errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid draft: service=%s, error=%v", req.ServiceType, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInsufficientNotice),
			errors.Is(err, createBooking.ErrDurationTooShort),
			errors.Is(err, createBooking.ErrUnknownExtra):
			h.logger.Warn("POST /bookings - Booking rejected: service=%s, date=%s, error=%v", req.ServiceType, req.BookingDate, err)
			handlers.RespondUnprocessable(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service=%s, error=%v", req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, service=%s, total=%s",
		result.Booking.ID, result.Booking.ServiceType, result.Booking.Pricing.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
