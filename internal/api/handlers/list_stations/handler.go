package list_stations

import (
	"net/http"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
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

// Handle GET /api/v1/lavaderos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOperational(r.Context())
	if err != nil {
		h.logger.Error("GET /lavaderos - Failed to list stations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lavaderos - Stations listed: count=%d", len(result.Stations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
