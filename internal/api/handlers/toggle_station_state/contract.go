package toggle_station_state

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/stations/models"
)

type StationsService interface {
	ToggleState(ctx context.Context, stationID int64, userID int64) (*models.ToggleStateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
