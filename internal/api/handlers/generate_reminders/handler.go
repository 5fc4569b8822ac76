package generate_reminders

import (
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/api/middleware"
)

const msgMissingAdminID = "admin token required"

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

// Handle POST /api/admin/reminders/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	resp, err := h.service.CreateMissing(r.Context(), adminID)
	if err != nil {
		h.logger.Error("POST /admin/reminders/generate - Failed to generate reminders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/reminders/generate - Created %d reminders, admin_id=%d", resp.Created, adminID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
