package approve_payment_proof

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
)

// PaymentRepository интерфейс репозитория платежей и чеков
type PaymentRepository interface {
	GetProofByID(ctx context.Context, id int64) (*domain.PaymentProof, error)
	UpdateProofStatus(ctx context.Context, id int64, status domain.PaymentStatus, comment *string, reviewedAt time.Time) error
	GetPaymentByID(ctx context.Context, id int64) (*domain.MonthlyPayment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// StationRepository интерфейс репозитория лавадеро
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StationStatus, expiresAt *time.Time) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
