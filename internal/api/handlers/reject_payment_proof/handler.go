package reject_payment_proof

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

const (
	msgInvalidProofID     = "ID de comprobante inválido"
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgProofNotFound      = "comprobante no encontrado"
	msgAlreadyReviewed    = "el comprobante ya fue revisado"
	msgForbidden          = "solo disponible para el superadmin"
	msgMissingComment     = "el comentario de rechazo es obligatorio"
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

// Handle POST /api/v1/superadmin/comprobantes/{proofId}/rechazar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	proofID, err := strconv.ParseInt(vars["proofId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Invalid proof ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProofID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.RejectProofRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	err = h.service.RejectProof(r.Context(), proofID, &req)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrProofNotFound):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Proof not found: proof_id=%d", proofID)
			handlers.RespondNotFound(w, msgProofNotFound)

		case errors.Is(err, billing.ErrProofAlreadyReviewed):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Already reviewed: proof_id=%d", proofID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		case errors.Is(err, billing.ErrAccessDenied):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, billing.ErrInvalidInput):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/rechazar - Missing comment: proof_id=%d", proofID)
			handlers.RespondBadRequest(w, msgMissingComment)

		default:
			h.logger.Error("POST /superadmin/comprobantes/{id}/rechazar - Failed to reject: proof_id=%d, error=%v",
				proofID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /superadmin/comprobantes/{id}/rechazar - Proof rejected: proof_id=%d", proofID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
