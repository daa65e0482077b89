package list_payment_proofs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
	"github.com/m04kA/SMC-LavaderoService/pkg/ptr"
)

const (
	msgUnauthorized   = "usuario no autenticado"
	msgForbidden      = "solo disponible para el superadmin"
	msgInvalidAdminID = "adminId inválido"
	msgInvalidLimit   = "limit inválido"
	msgInvalidOffset  = "offset inválido"
	msgInvalidStatus  = "estado de comprobante inválido"
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

// Handle GET /api/v1/superadmin/comprobantes
// Query params: estado, adminId, limit, offset (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /superadmin/comprobantes - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.ListProofsRequest{UserID: userID}
	query := r.URL.Query()

	if estado := query.Get("estado"); estado != "" {
		req.Status = ptr.Ptr(estado)
	}

	if adminIDStr := query.Get("adminId"); adminIDStr != "" {
		adminID, err := strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /superadmin/comprobantes - Invalid admin ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAdminID)
			return
		}
		req.AdminID = ptr.Ptr(adminID)
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /superadmin/comprobantes - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			h.logger.Warn("GET /superadmin/comprobantes - Invalid offset: %q", offsetStr)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.ListProofs(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrAccessDenied):
			h.logger.Warn("GET /superadmin/comprobantes - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, billing.ErrInvalidInput):
			h.logger.Warn("GET /superadmin/comprobantes - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /superadmin/comprobantes - Failed to list proofs: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /superadmin/comprobantes - Proofs listed: count=%d", len(result.Proofs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
