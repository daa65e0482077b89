package list_holidays

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

// Handle GET /api/v1/admin/lavaderos/{stationId}/dias-no-laborales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/lavaderos/{id}/dias-no-laborales - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/lavaderos/{id}/dias-no-laborales - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListHolidays(r.Context(), stationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleconfig.ErrStationNotFound):
			h.logger.Warn("GET /admin/lavaderos/{id}/dias-no-laborales - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, scheduleconfig.ErrAccessDenied):
			h.logger.Warn("GET /admin/lavaderos/{id}/dias-no-laborales - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/lavaderos/{id}/dias-no-laborales - Failed to list holidays: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/lavaderos/{id}/dias-no-laborales - Holidays listed: station_id=%d, count=%d",
		stationID, len(result.Holidays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
