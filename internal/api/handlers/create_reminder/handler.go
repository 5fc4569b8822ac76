package create_reminder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/api/middleware"
	"github.com/urinakcleaning/booking-service/internal/service/reminders"
	"github.com/urinakcleaning/booking-service/internal/service/reminders/models"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingAdminID     = "admin token required"
	msgBookingNotFound    = "booking not found"
)

type Handler struct {
	service ReminderService
	logger  Logger
}

func NewHandler(service ReminderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/bookings/{bookingId}/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /admin/bookings/{id}/reminders - Invalid booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	req := models.CreateReminderRequest{}
	// Тело необязательно: без него используется стандартный текст
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
			h.logger.Warn("POST /admin/bookings/{id}/reminders - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}
	req.AdminID = adminID
	req.BookingID = bookingID

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reminders.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/bookings/{id}/reminders - Failed to create reminder: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/reminders - Reminder created: reminder_id=%d, booking_id=%d, admin_id=%d",
		resp.ID, bookingID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
