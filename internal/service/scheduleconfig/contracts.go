package scheduleconfig

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetByStationID(ctx context.Context, stationID int64) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	SetOpenNow(ctx context.Context, stationID int64, open bool) error
}

// StationRepository интерфейс репозитория лавадеро (для проверки владения)
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// HolidayRepository интерфейс репозитория нерабочих дней
type HolidayRepository interface {
	ListByStation(ctx context.Context, stationID int64) ([]*domain.Holiday, error)
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	Delete(ctx context.Context, id int64, stationID int64) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
