package list_reminders

import (
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
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

// Handle GET /api/admin/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reminders - Failed to list reminders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
