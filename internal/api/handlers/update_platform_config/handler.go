package update_platform_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

const (
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgForbidden          = "solo disponible para el superadmin"
	msgInvalidData        = "datos de configuración inválidos"
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

// Handle PUT /api/v1/superadmin/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /superadmin/config - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdatePlatformConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /superadmin/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UpdatePlatformConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrAccessDenied):
			h.logger.Warn("PUT /superadmin/config - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, billing.ErrInvalidInput):
			h.logger.Warn("PUT /superadmin/config - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /superadmin/config - Failed to update platform config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /superadmin/config - Platform config updated by user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
