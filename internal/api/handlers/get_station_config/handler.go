package get_station_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig"
)

const (
	msgInvalidStationID = "ID de lavadero inválido"
	msgUnauthorized     = "usuario no autenticado"
	msgStationNotFound  = "lavadero no encontrado"
	msgForbidden        = "no tiene permisos sobre este lavadero"
)

type Handler struct {
	service ScheduleConfigService
	logger  Logger
}

func NewHandler(service ScheduleConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/lavaderos/{stationId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/lavaderos/{id}/config - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/lavaderos/{id}/config - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetConfig(r.Context(), stationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleconfig.ErrStationNotFound):
			h.logger.Warn("GET /admin/lavaderos/{id}/config - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, scheduleconfig.ErrAccessDenied):
			h.logger.Warn("GET /admin/lavaderos/{id}/config - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/lavaderos/{id}/config - Failed to get config: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/lavaderos/{id}/config - Config retrieved: station_id=%d", stationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
