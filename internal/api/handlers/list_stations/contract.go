package list_stations

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/stations/models"
)

type StationsService interface {
	ListOperational(ctx context.Context) (*models.PublicStationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
