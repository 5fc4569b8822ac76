package admin_bookings

import (
	"errors"
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/service/bookings"
	"github.com/urinakcleaning/booking-service/internal/service/bookings/models"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings?search=&date=&serviceType=&status=all|conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.AdminBookingsRequest{
		Search: query.Get("search"),
		Status: query.Get("status"),
	}
	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("serviceType"); v != "" && v != "all" {
		req.ServiceType = &v
	}

	resp, err := h.service.ListForAdmin(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
