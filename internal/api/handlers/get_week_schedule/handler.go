package get_week_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	getWeekSchedule "github.com/m04kA/SMC-LavaderoService/internal/usecase/get_week_schedule"
)

const (
	msgInvalidStationID      = "ID de lavadero inválido"
	msgMissingDate           = "la fecha es obligatoria"
	msgInvalidDate           = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgStationNotFound       = "lavadero no encontrado"
	msgStationNotOperational = "el lavadero no está operativo"
	msgInvalidConfig         = "la configuración de horarios del lavadero es inválida"
	msgInvalidInput          = "datos de entrada inválidos"
)

type Handler struct {
	useCase GetWeekScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/lavaderos/{stationId}/week-schedule
// Query params: date (required, YYYY-MM-DD), selectedDate + selectedTime (optional pair)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lavaderos/{id}/week-schedule - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /lavaderos/{id}/week-schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(
		stationID,
		dateStr,
		r.URL.Query().Get("selectedDate"),
		r.URL.Query().Get("selectedTime"),
	)
	if err != nil {
		h.logger.Warn("GET /lavaderos/{id}/week-schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getWeekSchedule.ErrStationNotFound):
			h.logger.Warn("GET /lavaderos/{id}/week-schedule - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, getWeekSchedule.ErrStationNotOperational):
			h.logger.Warn("GET /lavaderos/{id}/week-schedule - Station not operational: station_id=%d", stationID)
			handlers.RespondError(w, http.StatusConflict, msgStationNotOperational)

		case errors.Is(err, getWeekSchedule.ErrInvalidScheduleConfig):
			h.logger.Error("GET /lavaderos/{id}/week-schedule - Invalid schedule config: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidConfig)

		case errors.Is(err, getWeekSchedule.ErrInvalidInput):
			h.logger.Warn("GET /lavaderos/{id}/week-schedule - Invalid input: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /lavaderos/{id}/week-schedule - Failed to compute week: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lavaderos/{id}/week-schedule - Week computed: station_id=%d, week_start=%s",
		stationID, result.Week.WeekStart.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
