package get_platform_config

import (
	"net/http"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/platform-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPlatformConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /platform-config - Failed to get platform config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /platform-config - Platform config retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
