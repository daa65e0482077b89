package approve_payment_proof

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
)

type fakePaymentRepo struct {
	proof   *domain.PaymentProof
	payment *domain.MonthlyPayment

	proofStatus   *domain.PaymentStatus
	proofComment  *string
	paymentStatus *domain.PaymentStatus
	getProofErr   error
	getPaymentErr error
}

func (f *fakePaymentRepo) GetProofByID(_ context.Context, _ int64) (*domain.PaymentProof, error) {
	if f.getProofErr != nil {
		return nil, f.getProofErr
	}
	return f.proof, nil
}

func (f *fakePaymentRepo) UpdateProofStatus(_ context.Context, _ int64, status domain.PaymentStatus, comment *string, _ time.Time) error {
	f.proofStatus = &status
	f.proofComment = comment
	return nil
}

func (f *fakePaymentRepo) GetPaymentByID(_ context.Context, _ int64) (*domain.MonthlyPayment, error) {
	if f.getPaymentErr != nil {
		return nil, f.getPaymentErr
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.paymentStatus = &status
	return nil
}

type fakeStationRepo struct {
	status    *domain.StationStatus
	expiresAt *time.Time
	active    *bool
}

func (f *fakeStationRepo) GetByID(_ context.Context, _ int64) (*domain.Station, error) {
	return nil, nil
}

func (f *fakeStationRepo) UpdateStatus(_ context.Context, _ int64, status domain.StationStatus, expiresAt *time.Time) error {
	f.status = &status
	f.expiresAt = expiresAt
	return nil
}

func (f *fakeStationRepo) SetActive(_ context.Context, _ int64, active bool) error {
	f.active = &active
	return nil
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUser(_ context.Context, _ int64) (*userservice.User, error) {
	return f.user, f.err
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func superAdmin() *userservice.User {
	return &userservice.User{ID: 1, Role: userservice.RoleSuperAdmin, IsActive: true}
}

func pendingProof() *domain.PaymentProof {
	return &domain.PaymentProof{
		ID:        5,
		PaymentID: 7,
		AdminID:   10,
		ImageURL:  "https://example.com/comprobante.jpg",
		Status:    domain.PaymentPending,
	}
}

func pendingPayment() *domain.MonthlyPayment {
	return &domain.MonthlyPayment{
		ID:        7,
		AdminID:   10,
		StationID: 3,
		Amount:    10000,
		Period:    "2025-03",
		Status:    domain.PaymentPending,
	}
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	payments := &fakePaymentRepo{proof: pendingProof(), payment: pendingPayment()}
	stations := &fakeStationRepo{}

	uc := NewUseCase(payments, stations, &fakeUserClient{user: superAdmin()}, inlineTxManager{}, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, ProofID: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ProofID)
	assert.Equal(t, int64(7), resp.PaymentID)
	assert.Equal(t, int64(3), resp.StationID)
	assert.Equal(t, string(domain.PaymentConfirmed), resp.Status)
	assert.Equal(t, now.AddDate(0, 0, domain.PaidPeriodDays), resp.ExpiresAt)

	// Чек и платеж переведены в CONFIRMADO
	require.NotNil(t, payments.proofStatus)
	assert.Equal(t, domain.PaymentConfirmed, *payments.proofStatus)
	require.NotNil(t, payments.paymentStatus)
	assert.Equal(t, domain.PaymentConfirmed, *payments.paymentStatus)

	// Без комментария суперадмина подставляется комментарий по умолчанию
	require.NotNil(t, payments.proofComment)
	assert.Equal(t, defaultApproveComment, *payments.proofComment)

	// Лавадеро активировано на оплаченный период
	require.NotNil(t, stations.status)
	assert.Equal(t, domain.StatusActive, *stations.status)
	require.NotNil(t, stations.expiresAt)
	assert.Equal(t, resp.ExpiresAt, *stations.expiresAt)
	require.NotNil(t, stations.active)
	assert.True(t, *stations.active)
}

func TestUseCase_Execute_CustomComment(t *testing.T) {
	payments := &fakePaymentRepo{proof: pendingProof(), payment: pendingPayment()}
	comment := "Transferencia verificada"

	uc := NewUseCase(payments, &fakeStationRepo{}, &fakeUserClient{user: superAdmin()}, inlineTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, ProofID: 5, Comment: &comment})
	require.NoError(t, err)

	require.NotNil(t, payments.proofComment)
	assert.Equal(t, comment, *payments.proofComment)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeUserClient
	}{
		{"обычный админ", &fakeUserClient{user: &userservice.User{ID: 2, Role: userservice.RoleAdmin}}},
		{"клиент", &fakeUserClient{user: &userservice.User{ID: 3, Role: userservice.RoleClient}}},
		{"пользователь не найден", &fakeUserClient{err: userservice.ErrUserNotFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := &fakePaymentRepo{proof: pendingProof(), payment: pendingPayment()}
			uc := NewUseCase(payments, &fakeStationRepo{}, tt.client, inlineTxManager{}, noopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{UserID: 2, ProofID: 5})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrAccessDenied)
			assert.Nil(t, payments.proofStatus)
		})
	}
}

func TestUseCase_Execute_ProofNotFound(t *testing.T) {
	payments := &fakePaymentRepo{getProofErr: paymentRepo.ErrProofNotFound}
	uc := NewUseCase(payments, &fakeStationRepo{}, &fakeUserClient{user: superAdmin()}, inlineTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, ProofID: 99})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrProofNotFound)
}

func TestUseCase_Execute_ProofAlreadyReviewed(t *testing.T) {
	proof := pendingProof()
	proof.Status = domain.PaymentRejected

	payments := &fakePaymentRepo{proof: proof, payment: pendingPayment()}
	stations := &fakeStationRepo{}
	uc := NewUseCase(payments, stations, &fakeUserClient{user: superAdmin()}, inlineTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, ProofID: 5})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrProofAlreadyReviewed)
	assert.Nil(t, stations.status)
}

func TestUseCase_Execute_InvalidProofID(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeStationRepo{}, &fakeUserClient{user: superAdmin()}, inlineTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, ProofID: 0})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
