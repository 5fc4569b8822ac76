package admin_login

import (
	"errors"
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/service/admins"
	"github.com/urinakcleaning/booking-service/internal/service/admins/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidCredentials  = "invalid username or password"
	msgCredentialsRequired = "username and password are required"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgCredentialsRequired)

		case errors.Is(err, admins.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials for %q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to log in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: admin_id=%d", resp.Admin.ID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
