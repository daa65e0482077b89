package add_holiday

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
	msgInvalidData        = "datos del día no laboral inválidos"
	msgDateInPast         = "la fecha ya pasó"
	msgDuplicateDate      = "la fecha ya está marcada como no laboral"
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

// Handle POST /api/v1/admin/lavaderos/{stationId}/dias-no-laborales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.AddHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.AddHoliday(r.Context(), stationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleconfig.ErrStationNotFound):
			h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, scheduleconfig.ErrAccessDenied):
			h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleconfig.ErrHolidayInPast):
			h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Date in past: station_id=%d, date=%s",
				stationID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, scheduleconfig.ErrHolidayAlreadyExists):
			h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Duplicate date: station_id=%d, date=%s",
				stationID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDate)

		case errors.Is(err, scheduleconfig.ErrInvalidInput):
			h.logger.Warn("POST /admin/lavaderos/{id}/dias-no-laborales - Invalid data: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/lavaderos/{id}/dias-no-laborales - Failed to add holiday: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/lavaderos/{id}/dias-no-laborales - Holiday added: station_id=%d, holiday_id=%d",
		stationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
