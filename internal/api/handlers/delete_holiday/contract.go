package delete_holiday

import "context"

type ScheduleConfigService interface {
	DeleteHoliday(ctx context.Context, stationID int64, holidayID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
