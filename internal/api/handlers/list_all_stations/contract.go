package list_all_stations

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/stations/models"
)

type StationsService interface {
	ListAll(ctx context.Context, userID int64) (*models.StationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
