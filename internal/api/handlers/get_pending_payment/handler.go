package get_pending_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing"
)

const (
	msgInvalidStationID = "ID de lavadero inválido"
	msgUnauthorized     = "usuario no autenticado"
	msgStationNotFound  = "lavadero no encontrado"
	msgNoPendingPayment = "no hay pagos pendientes"
	msgForbidden        = "no tiene permisos sobre este lavadero"
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

// Handle GET /api/v1/admin/lavaderos/{stationId}/pago-pendiente
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/lavaderos/{id}/pago-pendiente - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/lavaderos/{id}/pago-pendiente - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.PendingPayment(r.Context(), stationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrStationNotFound):
			h.logger.Warn("GET /admin/lavaderos/{id}/pago-pendiente - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, billing.ErrPaymentNotFound):
			h.logger.Info("GET /admin/lavaderos/{id}/pago-pendiente - No pending payment: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgNoPendingPayment)

		case errors.Is(err, billing.ErrAccessDenied):
			h.logger.Warn("GET /admin/lavaderos/{id}/pago-pendiente - Access denied: station_id=%d, user_id=%d",
				stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/lavaderos/{id}/pago-pendiente - Failed to get payment: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/lavaderos/{id}/pago-pendiente - Pending payment retrieved: station_id=%d, payment_id=%d",
		stationID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
