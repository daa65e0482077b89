package get_week_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
)

// StationRepository интерфейс репозитория лавадеро
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetByStationID(ctx context.Context, stationID int64) (*domain.ScheduleConfig, error)
}

// HolidayRepository интерфейс репозитория нерабочих дней
type HolidayRepository interface {
	ListByStation(ctx context.Context, stationID int64) ([]*domain.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
