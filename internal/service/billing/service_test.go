package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	platformRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/platformconfig"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
	"github.com/m04kA/SMC-LavaderoService/pkg/ptr"
)

type fakePaymentRepo struct {
	payment         *domain.MonthlyPayment
	proof           *domain.PaymentProof
	proofs          []*domain.PaymentProofInfo
	hasPendingProof bool

	createdProof *domain.PaymentProof
	proofStatus  *domain.PaymentStatus
	proofComment *string
	listedFilter *domain.PaymentProofsFilter
}

func (f *fakePaymentRepo) GetPendingByAdmin(_ context.Context, _ int64) (*domain.MonthlyPayment, error) {
	if f.payment == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) GetPaymentByID(_ context.Context, _ int64) (*domain.MonthlyPayment, error) {
	if f.payment == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) CreateProof(_ context.Context, proof *domain.PaymentProof) (*domain.PaymentProof, error) {
	proof.ID = 5
	f.createdProof = proof
	return proof, nil
}

func (f *fakePaymentRepo) GetProofByID(_ context.Context, _ int64) (*domain.PaymentProof, error) {
	if f.proof == nil {
		return nil, paymentRepo.ErrProofNotFound
	}
	return f.proof, nil
}

func (f *fakePaymentRepo) ExistsPendingProof(_ context.Context, _ int64) (bool, error) {
	return f.hasPendingProof, nil
}

func (f *fakePaymentRepo) UpdateProofStatus(_ context.Context, _ int64, status domain.PaymentStatus, comment *string, _ time.Time) error {
	f.proofStatus = &status
	f.proofComment = comment
	return nil
}

func (f *fakePaymentRepo) ListProofs(_ context.Context, filter domain.PaymentProofsFilter) ([]*domain.PaymentProofInfo, error) {
	f.listedFilter = &filter
	return f.proofs, nil
}

type fakePlatformRepo struct {
	config   *domain.PlatformConfig
	upserted *domain.PlatformConfig
}

func (f *fakePlatformRepo) Get(_ context.Context) (*domain.PlatformConfig, error) {
	if f.config == nil {
		return nil, platformRepo.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakePlatformRepo) Upsert(_ context.Context, cfg *domain.PlatformConfig) (*domain.PlatformConfig, error) {
	cfg.ID = 1
	f.upserted = cfg
	return cfg, nil
}

type fakeStationRepo struct {
	station *domain.Station
}

func (f *fakeStationRepo) GetByID(_ context.Context, _ int64) (*domain.Station, error) {
	return f.station, nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, userservice.ErrUserNotFound
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

const (
	superAdminID  = int64(1)
	adminID       = int64(10)
	testStationID = int64(3)
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testUsers() *fakeUserClient {
	return &fakeUserClient{users: map[int64]*userservice.User{
		superAdminID: {ID: superAdminID, Role: userservice.RoleSuperAdmin},
		adminID:      {ID: adminID, Role: userservice.RoleAdmin},
	}}
}

func ownedStation() *domain.Station {
	return &domain.Station{ID: testStationID, AdminID: adminID, Status: domain.StatusActive, IsActive: true}
}

func pendingPayment() *domain.MonthlyPayment {
	return &domain.MonthlyPayment{
		ID:        7,
		AdminID:   adminID,
		StationID: testStationID,
		Amount:    10000,
		Period:    "2025-03",
		Status:    domain.PaymentPending,
		DueAt:     testNow.AddDate(0, 0, 30),
	}
}

func newTestService(payments *fakePaymentRepo, platform *fakePlatformRepo, stations *fakeStationRepo) *Service {
	return NewService(payments, platform, stations, testUsers(), &fixedTimeProvider{now: testNow}, noopLogger{})
}

func TestService_GetPlatformConfig_Defaults(t *testing.T) {
	svc := newTestService(&fakePaymentRepo{}, &fakePlatformRepo{}, &fakeStationRepo{})

	resp, err := svc.GetPlatformConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPlatformBankAlias, resp.BankAlias)
	assert.Equal(t, domain.DefaultMonthlyPrice, resp.MonthlyPrice)
}

func TestService_UpdatePlatformConfig(t *testing.T) {
	platform := &fakePlatformRepo{}
	svc := newTestService(&fakePaymentRepo{}, platform, &fakeStationRepo{})

	resp, err := svc.UpdatePlatformConfig(context.Background(), &models.UpdatePlatformConfigRequest{
		UserID:       superAdminID,
		BankAlias:    "plataforma.mp",
		MonthlyPrice: 15000,
	})
	require.NoError(t, err)

	assert.Equal(t, "plataforma.mp", resp.BankAlias)
	assert.Equal(t, 15000.0, resp.MonthlyPrice)
	require.NotNil(t, platform.upserted)
}

func TestService_UpdatePlatformConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdatePlatformConfigRequest
		wantErr error
	}{
		{
			name:    "не суперадмин",
			req:     &models.UpdatePlatformConfigRequest{UserID: adminID, BankAlias: "x.mp", MonthlyPrice: 1},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "пустой alias",
			req:     &models.UpdatePlatformConfigRequest{UserID: superAdminID, BankAlias: " ", MonthlyPrice: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "отрицательная цена",
			req:     &models.UpdatePlatformConfigRequest{UserID: superAdminID, BankAlias: "x.mp", MonthlyPrice: -1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakePaymentRepo{}, &fakePlatformRepo{}, &fakeStationRepo{})

			resp, err := svc.UpdatePlatformConfig(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_PendingPayment(t *testing.T) {
	payments := &fakePaymentRepo{payment: pendingPayment(), hasPendingProof: true}
	platform := &fakePlatformRepo{config: &domain.PlatformConfig{ID: 1, BankAlias: "plataforma.mp", MonthlyPrice: 10000}}
	svc := newTestService(payments, platform, &fakeStationRepo{station: ownedStation()})

	resp, err := svc.PendingPayment(context.Background(), testStationID, adminID)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-03", resp.Period)
	assert.Equal(t, "plataforma.mp", resp.BankAlias)
	assert.True(t, resp.HasPendingProof)
}

func TestService_PendingPayment_NoPayment(t *testing.T) {
	svc := newTestService(&fakePaymentRepo{}, &fakePlatformRepo{}, &fakeStationRepo{station: ownedStation()})

	resp, err := svc.PendingPayment(context.Background(), testStationID, adminID)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestService_PendingPayment_NotOwner(t *testing.T) {
	svc := newTestService(&fakePaymentRepo{payment: pendingPayment()}, &fakePlatformRepo{}, &fakeStationRepo{station: ownedStation()})

	resp, err := svc.PendingPayment(context.Background(), testStationID, superAdminID)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UploadProof(t *testing.T) {
	payments := &fakePaymentRepo{payment: pendingPayment()}
	svc := newTestService(payments, &fakePlatformRepo{}, &fakeStationRepo{station: ownedStation()})

	resp, err := svc.UploadProof(context.Background(), testStationID, &models.UploadProofRequest{
		UserID:   adminID,
		ImageURL: "https://example.com/comprobante.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(7), resp.PaymentID)
	assert.Equal(t, string(domain.PaymentPending), resp.Status)
	require.NotNil(t, payments.createdProof)
	assert.Equal(t, adminID, payments.createdProof.AdminID)
}

func TestService_UploadProof_AlreadyPending(t *testing.T) {
	payments := &fakePaymentRepo{payment: pendingPayment(), hasPendingProof: true}
	svc := newTestService(payments, &fakePlatformRepo{}, &fakeStationRepo{station: ownedStation()})

	resp, err := svc.UploadProof(context.Background(), testStationID, &models.UploadProofRequest{
		UserID:   adminID,
		ImageURL: "https://example.com/comprobante.jpg",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrProofAlreadyPending)
	assert.Nil(t, payments.createdProof)
}

func TestService_UploadProof_EmptyImageURL(t *testing.T) {
	svc := newTestService(&fakePaymentRepo{payment: pendingPayment()}, &fakePlatformRepo{}, &fakeStationRepo{station: ownedStation()})

	resp, err := svc.UploadProof(context.Background(), testStationID, &models.UploadProofRequest{
		UserID:   adminID,
		ImageURL: "  ",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_MyProofs_FiltersByOwner(t *testing.T) {
	payments := &fakePaymentRepo{proofs: []*domain.PaymentProofInfo{}}
	svc := newTestService(payments, &fakePlatformRepo{}, &fakeStationRepo{station: ownedStation()})

	_, err := svc.MyProofs(context.Background(), testStationID, adminID)
	require.NoError(t, err)

	require.NotNil(t, payments.listedFilter)
	require.NotNil(t, payments.listedFilter.AdminID)
	assert.Equal(t, adminID, *payments.listedFilter.AdminID)
}

func TestService_ListProofs_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakePaymentRepo{}, &fakePlatformRepo{}, &fakeStationRepo{})

	resp, err := svc.ListProofs(context.Background(), &models.ListProofsRequest{
		UserID: superAdminID,
		Status: ptr.Ptr("DESCONOCIDO"),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_RejectProof(t *testing.T) {
	payments := &fakePaymentRepo{proof: &domain.PaymentProof{ID: 5, PaymentID: 7, Status: domain.PaymentPending}}
	svc := newTestService(payments, &fakePlatformRepo{}, &fakeStationRepo{})

	err := svc.RejectProof(context.Background(), 5, &models.RejectProofRequest{
		UserID:  superAdminID,
		Comment: "Monto incorrecto",
	})
	require.NoError(t, err)

	require.NotNil(t, payments.proofStatus)
	assert.Equal(t, domain.PaymentRejected, *payments.proofStatus)
	require.NotNil(t, payments.proofComment)
	assert.Equal(t, "Monto incorrecto", *payments.proofComment)
}

func TestService_RejectProof_Errors(t *testing.T) {
	tests := []struct {
		name    string
		proof   *domain.PaymentProof
		req     *models.RejectProofRequest
		wantErr error
	}{
		{
			name:    "комментарий обязателен",
			proof:   &domain.PaymentProof{ID: 5, Status: domain.PaymentPending},
			req:     &models.RejectProofRequest{UserID: superAdminID, Comment: "  "},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "чек не найден",
			req:     &models.RejectProofRequest{UserID: superAdminID, Comment: "x"},
			wantErr: ErrProofNotFound,
		},
		{
			name:    "чек уже проверен",
			proof:   &domain.PaymentProof{ID: 5, Status: domain.PaymentConfirmed},
			req:     &models.RejectProofRequest{UserID: superAdminID, Comment: "x"},
			wantErr: ErrProofAlreadyReviewed,
		},
		{
			name:    "не суперадмин",
			proof:   &domain.PaymentProof{ID: 5, Status: domain.PaymentPending},
			req:     &models.RejectProofRequest{UserID: adminID, Comment: "x"},
			wantErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := &fakePaymentRepo{proof: tt.proof}
			svc := newTestService(payments, &fakePlatformRepo{}, &fakeStationRepo{})

			err := svc.RejectProof(context.Background(), 5, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
