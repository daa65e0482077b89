package update_station_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig"
	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig/models"
)

const (
	msgInvalidStationID   = "ID de lavadero inválido"
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgStationNotFound    = "lavadero no encontrado"
	msgForbidden          = "no tiene permisos sobre este lavadero"
	msgInvalidData        = "datos de configuración inválidos"
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

// Handle PUT /api/v1/admin/lavaderos/{stationId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/lavaderos/{id}/config - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/lavaderos/{id}/config - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/lavaderos/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UpdateConfig(r.Context(), stationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleconfig.ErrStationNotFound):
			h.logger.Warn("PUT /admin/lavaderos/{id}/config - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, scheduleconfig.ErrAccessDenied):
			h.logger.Warn("PUT /admin/lavaderos/{id}/config - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleconfig.ErrInvalidInput):
			h.logger.Warn("PUT /admin/lavaderos/{id}/config - Invalid data: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/lavaderos/{id}/config - Failed to update config: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/lavaderos/{id}/config - Config updated: station_id=%d", stationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
