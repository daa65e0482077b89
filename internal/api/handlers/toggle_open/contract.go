package toggle_open

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig/models"
)

type ScheduleConfigService interface {
	ToggleOpen(ctx context.Context, stationID int64, userID int64) (*models.ToggleOpenResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
