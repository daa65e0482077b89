package update_station_config

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig/models"
)

type ScheduleConfigService interface {
	UpdateConfig(ctx context.Context, stationID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
