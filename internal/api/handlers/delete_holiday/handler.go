package delete_holiday

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
	msgInvalidHolidayID = "ID de día no laboral inválido"
	msgUnauthorized     = "usuario no autenticado"
	msgStationNotFound  = "lavadero no encontrado"
	msgHolidayNotFound  = "día no laboral no encontrado"
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

// Handle DELETE /api/v1/admin/lavaderos/{stationId}/dias-no-laborales/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	holidayID, err := strconv.ParseInt(vars["holidayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	err = h.service.DeleteHoliday(r.Context(), stationID, holidayID, userID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleconfig.ErrStationNotFound):
			h.logger.Warn("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, scheduleconfig.ErrHolidayNotFound):
			h.logger.Warn("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Holiday not found: station_id=%d, holiday_id=%d",
				stationID, holidayID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		case errors.Is(err, scheduleconfig.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Failed to delete holiday: station_id=%d, holiday_id=%d, error=%v",
				stationID, holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/lavaderos/{id}/dias-no-laborales/{id} - Holiday deleted: station_id=%d, holiday_id=%d",
		stationID, holidayID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
