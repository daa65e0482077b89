package get_station_config

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig/models"
)

type ScheduleConfigService interface {
	GetConfig(ctx context.Context, stationID int64, userID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
