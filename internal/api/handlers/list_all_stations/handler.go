package list_all_stations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/stations"
)

const (
	msgUnauthorized = "usuario no autenticado"
	msgForbidden    = "solo disponible para el superadmin"
)

type Handler struct {
	service StationsService
	logger  Logger
}

func NewHandler(service StationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/superadmin/lavaderos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /superadmin/lavaderos - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListAll(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, stations.ErrAccessDenied):
			h.logger.Warn("GET /superadmin/lavaderos - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /superadmin/lavaderos - Failed to list stations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /superadmin/lavaderos - Stations listed: count=%d", len(result.Stations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
