package stations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
)

// StationRepository интерфейс репозитория лавадеро
type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) (*domain.Station, error)
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	GetByAdminID(ctx context.Context, adminID int64) (*domain.Station, error)
	List(ctx context.Context, filter domain.StationsFilter) ([]*domain.Station, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StationStatus, expiresAt *time.Time) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetByStationID(ctx context.Context, stationID int64) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// PaymentRepository интерфейс репозитория ежемесячных платежей
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p *domain.MonthlyPayment) (*domain.MonthlyPayment, error)
	GetByAdminAndPeriod(ctx context.Context, adminID int64, period string) (*domain.MonthlyPayment, error)
	GetPendingByAdminAndPeriod(ctx context.Context, adminID int64, period string) (*domain.MonthlyPayment, error)
}

// PlatformConfigRepository интерфейс репозитория конфигурации платформы
type PlatformConfigRepository interface {
	Get(ctx context.Context) (*domain.PlatformConfig, error)
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
