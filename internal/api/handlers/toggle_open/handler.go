package toggle_open

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

// Handle POST /api/v1/admin/lavaderos/{stationId}/toggle-apertura
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/lavaderos/{id}/toggle-apertura - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/lavaderos/{id}/toggle-apertura - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ToggleOpen(r.Context(), stationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleconfig.ErrStationNotFound):
			h.logger.Warn("POST /admin/lavaderos/{id}/toggle-apertura - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, scheduleconfig.ErrAccessDenied):
			h.logger.Warn("POST /admin/lavaderos/{id}/toggle-apertura - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /admin/lavaderos/{id}/toggle-apertura - Failed to toggle: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/lavaderos/{id}/toggle-apertura - Toggled: station_id=%d, open=%v",
		stationID, result.IsOpenNow)
	handlers.RespondJSON(w, http.StatusOK, result)
}
