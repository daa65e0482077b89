package add_holiday

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig/models"
)

type ScheduleConfigService interface {
	AddHoliday(ctx context.Context, stationID int64, req *models.AddHolidayRequest) (*models.HolidayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
