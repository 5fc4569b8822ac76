package admin_create

import (
	"errors"
	"net/http"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/api/middleware"
	"github.com/urinakcleaning/booking-service/internal/service/admins"
	"github.com/urinakcleaning/booking-service/internal/service/admins/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "admin token required"
	msgBootstrapClosed    = "an admin already exists, log in to create more"
	msgAlreadyExists      = "username or email already taken"
)

type Handler struct {
	service          AdminService
	bootstrapEnabled bool
	logger           Logger
}

// NewHandler создает обработчик. При bootstrapEnabled первый администратор
// создается без токена, пока в базе нет ни одного.
func NewHandler(service AdminService, bootstrapEnabled bool, logger Logger) *Handler {
	return &Handler{
		service:          service,
		bootstrapEnabled: bootstrapEnabled,
		logger:           logger,
	}
}

// Handle POST /api/admin/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, authenticated := middleware.GetAdminID(r.Context())
	if !authenticated {
		if !h.bootstrapEnabled {
			h.logger.Warn("POST /admin/create - Missing admin token")
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ok, err := h.service.CanBootstrap(r.Context())
		if err != nil {
			h.logger.Error("POST /admin/create - Failed to check bootstrap: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		if !ok {
			h.logger.Warn("POST /admin/create - Bootstrap attempt with existing admins")
			handlers.RespondForbidden(w, msgBootstrapClosed)
			return
		}
	}

	var req models.CreateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admins.ErrAdminAlreadyExists):
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /admin/create - Failed to create admin: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/create - Admin created: admin_id=%d, by=%d", created.ID, callerID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
