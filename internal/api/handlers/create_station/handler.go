package create_station

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LavaderoService/internal/api/handlers"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/service/stations"
	"github.com/m04kA/SMC-LavaderoService/internal/service/stations/models"
)

const (
	msgUnauthorized       = "usuario no autenticado"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgForbidden          = "solo disponible para el superadmin"
	msgAdminNotFound      = "admin no encontrado"
	msgNotAnAdmin         = "el usuario no tiene rol de admin"
	msgAlreadyExists      = "el admin ya tiene un lavadero"
	msgInvalidData        = "datos del lavadero inválidos"
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

// Handle POST /api/v1/superadmin/lavaderos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /superadmin/lavaderos - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateStationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /superadmin/lavaderos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, stations.ErrAccessDenied):
			h.logger.Warn("POST /superadmin/lavaderos - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, stations.ErrAdminNotFound):
			h.logger.Warn("POST /superadmin/lavaderos - Admin not found: admin_id=%d", req.AdminID)
			handlers.RespondNotFound(w, msgAdminNotFound)

		case errors.Is(err, stations.ErrNotAnAdmin):
			h.logger.Warn("POST /superadmin/lavaderos - Not an admin: admin_id=%d", req.AdminID)
			handlers.RespondBadRequest(w, msgNotAnAdmin)

		case errors.Is(err, stations.ErrStationAlreadyExists):
			h.logger.Warn("POST /superadmin/lavaderos - Station already exists: admin_id=%d", req.AdminID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, stations.ErrInvalidInput):
			h.logger.Warn("POST /superadmin/lavaderos - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /superadmin/lavaderos - Failed to create station: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /superadmin/lavaderos - Station created: station_id=%d, admin_id=%d",
		result.ID, req.AdminID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
