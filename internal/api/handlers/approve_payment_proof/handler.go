package approve_payment_proof

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	approveProof "github.com/m04kA/SMC-LavaderoService/internal/usecase/approve_payment_proof"
)

const (
	msgInvalidProofID     = "ID de comprobante inválido"
	msgUnauthorized       = "usuario no autenticado"
	msgProofNotFound      = "comprobante no encontrado"
	msgAlreadyReviewed    = "el comprobante ya fue revisado"
	msgForbidden          = "solo disponible para el superadmin"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
)

// approveRequest опциональное тело запроса с комментарием проверяющего
type approveRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type Handler struct {
	useCase ApprovePaymentProofUseCase
	logger  Logger
}

func NewHandler(useCase ApprovePaymentProofUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/superadmin/comprobantes/{proofId}/aprobar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	proofID, err := strconv.ParseInt(vars["proofId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Invalid proof ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProofID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Тело опционально: суперадмин может добавить комментарий
	var req approveRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &approveProof.Request{
		UserID:  userID,
		ProofID: proofID,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveProof.ErrProofNotFound):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Proof not found: proof_id=%d", proofID)
			handlers.RespondNotFound(w, msgProofNotFound)

		case errors.Is(err, approveProof.ErrProofAlreadyReviewed):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Already reviewed: proof_id=%d", proofID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		case errors.Is(err, approveProof.ErrAccessDenied):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, approveProof.ErrInvalidInput):
			h.logger.Warn("POST /superadmin/comprobantes/{id}/aprobar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProofID)

		default:
			h.logger.Error("POST /superadmin/comprobantes/{id}/aprobar - Failed to approve: proof_id=%d, error=%v",
				proofID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /superadmin/comprobantes/{id}/aprobar - Proof approved: proof_id=%d, station_id=%d",
		result.ProofID, result.StationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
