package get_week_schedule

import (
	"context"

	getWeekSchedule "github.com/m04kA/SMC-LavaderoService/internal/usecase/get_week_schedule"
)

type GetWeekScheduleUseCase interface {
	Execute(ctx context.Context, req *getWeekSchedule.Request) (*getWeekSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
