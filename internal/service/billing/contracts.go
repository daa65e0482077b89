package billing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
)

// PaymentRepository интерфейс репозитория платежей и чеков
type PaymentRepository interface {
	GetPendingByAdmin(ctx context.Context, adminID int64) (*domain.MonthlyPayment, error)
	GetPaymentByID(ctx context.Context, id int64) (*domain.MonthlyPayment, error)
	CreateProof(ctx context.Context, proof *domain.PaymentProof) (*domain.PaymentProof, error)
	GetProofByID(ctx context.Context, id int64) (*domain.PaymentProof, error)
	ExistsPendingProof(ctx context.Context, paymentID int64) (bool, error)
	UpdateProofStatus(ctx context.Context, id int64, status domain.PaymentStatus, comment *string, reviewedAt time.Time) error
	ListProofs(ctx context.Context, filter domain.PaymentProofsFilter) ([]*domain.PaymentProofInfo, error)
}

// PlatformConfigRepository интерфейс репозитория конфигурации платформы
type PlatformConfigRepository interface {
	Get(ctx context.Context) (*domain.PlatformConfig, error)
	Upsert(ctx context.Context, cfg *domain.PlatformConfig) (*domain.PlatformConfig, error)
}

// StationRepository интерфейс репозитория лавадеро (для проверки владения)
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
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
