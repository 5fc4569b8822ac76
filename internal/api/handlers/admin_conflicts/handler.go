package admin_conflicts

import (
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
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

// Handle GET /api/admin/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetConflicts(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/conflicts - Failed to detect conflicts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
