package upload_payment_proof

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
	msgInvalidStationID   = "ID de lavadero inválido"
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgStationNotFound    = "lavadero no encontrado"
	msgNoPendingPayment   = "no hay pagos pendientes"
	msgProofPending       = "ya hay un comprobante en revisión"
	msgForbidden          = "no tiene permisos sobre este lavadero"
	msgInvalidData        = "datos del comprobante inválidos"
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

// Handle POST /api/v1/admin/lavaderos/{stationId}/comprobantes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UploadProofRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UploadProof(r.Context(), stationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrStationNotFound):
			h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, billing.ErrPaymentNotFound):
			h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - No pending payment: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgNoPendingPayment)

		case errors.Is(err, billing.ErrProofAlreadyPending):
			h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Proof already pending: station_id=%d", stationID)
			handlers.RespondError(w, http.StatusConflict, msgProofPending)

		case errors.Is(err, billing.ErrAccessDenied):
			h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, billing.ErrInvalidInput):
			h.logger.Warn("POST /admin/lavaderos/{id}/comprobantes - Invalid data: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/lavaderos/{id}/comprobantes - Failed to upload proof: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/lavaderos/{id}/comprobantes - Proof uploaded: station_id=%d, proof_id=%d",
		stationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
