package get_service_extras

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
	"github.com/urinakcleaning/booking-service/internal/service/extras"
)

const msgUnknownServiceType = "unknown service type"

type Handler struct {
	service ExtrasService
	logger  Logger
}

func NewHandler(service ExtrasService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/service-extras/{serviceType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := mux.Vars(r)["serviceType"]

	resp, err := h.service.GetByServiceType(r.Context(), serviceType)
	if err != nil {
		switch {
		case errors.Is(err, extras.ErrUnknownServiceType):
			h.logger.Warn("GET /service-extras/{type} - Unknown service type: %q", serviceType)
			handlers.RespondNotFound(w, msgUnknownServiceType)

		default:
			h.logger.Error("GET /service-extras/{type} - Failed to get extras: type=%s, error=%v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
