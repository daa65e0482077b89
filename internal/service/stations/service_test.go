package stations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	platformRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/platformconfig"
	configRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/scheduleconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
	"github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LavaderoService/internal/service/stations/models"
)

type fakeStationRepo struct {
	stations  []*domain.Station
	createErr error
	getErr    error

	statusSet    *domain.StationStatus
	expiresAtSet *time.Time
	activeSet    *bool
}

func (f *fakeStationRepo) Create(_ context.Context, station *domain.Station) (*domain.Station, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	station.ID = 1
	return station, nil
}

func (f *fakeStationRepo) GetByID(_ context.Context, id int64) (*domain.Station, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, s := range f.stations {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, stationRepo.ErrStationNotFound
}

func (f *fakeStationRepo) GetByAdminID(_ context.Context, adminID int64) (*domain.Station, error) {
	for _, s := range f.stations {
		if s.AdminID == adminID {
			return s, nil
		}
	}
	return nil, stationRepo.ErrStationNotFound
}

func (f *fakeStationRepo) List(_ context.Context, _ domain.StationsFilter) ([]*domain.Station, error) {
	return f.stations, nil
}

func (f *fakeStationRepo) UpdateStatus(_ context.Context, _ int64, status domain.StationStatus, expiresAt *time.Time) error {
	f.statusSet = &status
	f.expiresAtSet = expiresAt
	return nil
}

func (f *fakeStationRepo) SetActive(_ context.Context, _ int64, active bool) error {
	f.activeSet = &active
	return nil
}

type fakeConfigRepo struct {
	config   *domain.ScheduleConfig
	upserted *domain.ScheduleConfig
}

func (f *fakeConfigRepo) GetByStationID(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	f.upserted = config
	return config, nil
}

type fakePaymentRepo struct {
	payment *domain.MonthlyPayment
	created *domain.MonthlyPayment
}

func (f *fakePaymentRepo) CreatePayment(_ context.Context, p *domain.MonthlyPayment) (*domain.MonthlyPayment, error) {
	p.ID = 1
	f.created = p
	return p, nil
}

func (f *fakePaymentRepo) GetByAdminAndPeriod(_ context.Context, _ int64, _ string) (*domain.MonthlyPayment, error) {
	if f.payment == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) GetPendingByAdminAndPeriod(_ context.Context, _ int64, _ string) (*domain.MonthlyPayment, error) {
	if f.payment == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

type fakePlatformRepo struct {
	config *domain.PlatformConfig
}

func (f *fakePlatformRepo) Get(_ context.Context) (*domain.PlatformConfig, error) {
	if f.config == nil {
		return nil, platformRepo.ErrConfigNotFound
	}
	return f.config, nil
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

func (f *fakeUserClient) GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error) {
	return f.GetUser(ctx, userID)
}

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

const (
	superAdminID = int64(1)
	adminID      = int64(10)
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testUsers() *fakeUserClient {
	return &fakeUserClient{users: map[int64]*userservice.User{
		superAdminID: {ID: superAdminID, Role: userservice.RoleSuperAdmin, IsActive: true},
		adminID:      {ID: adminID, Name: "Carlos", Role: userservice.RoleAdmin, IsActive: true},
		20:           {ID: 20, Role: userservice.RoleClient, IsActive: true},
	}}
}

func newTestService(stations *fakeStationRepo, configs *fakeConfigRepo, payments *fakePaymentRepo, platform *fakePlatformRepo) *Service {
	return NewService(
		stations, configs, payments, platform, testUsers(),
		inlineTxManager{}, &fixedTimeProvider{now: testNow}, noopLogger{},
	)
}

func activeStation() *domain.Station {
	expires := testNow.AddDate(0, 0, 10)
	return &domain.Station{
		ID:        3,
		Name:      "Lavadero Centro",
		Address:   "Av. Siempreviva 742",
		AdminID:   adminID,
		Status:    domain.StatusActive,
		ExpiresAt: &expires,
		IsActive:  true,
	}
}

func TestService_ListOperational(t *testing.T) {
	stations := &fakeStationRepo{stations: []*domain.Station{activeStation()}}
	svc := newTestService(stations, &fakeConfigRepo{}, &fakePaymentRepo{}, &fakePlatformRepo{})

	resp, err := svc.ListOperational(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Stations, 1)
	card := resp.Stations[0]
	assert.Equal(t, int64(3), card.ID)
	assert.Equal(t, "Lavadero Centro", card.Name)
	// Без сохраненной конфигурации карточка обогащается значениями по умолчанию
	assert.Equal(t, "08:00", card.OpenTime)
	assert.Equal(t, "18:00", card.CloseTime)
}

func TestService_ListOperational_MarksExpiredStations(t *testing.T) {
	expired := activeStation()
	past := testNow.AddDate(0, 0, -1)
	expired.ExpiresAt = &past

	stations := &fakeStationRepo{stations: []*domain.Station{expired}}
	svc := newTestService(stations, &fakeConfigRepo{}, &fakePaymentRepo{}, &fakePlatformRepo{})

	resp, err := svc.ListOperational(context.Background())
	require.NoError(t, err)

	// Просроченное лавадеро скрыто из каталога и переведено в VENCIDO
	assert.Empty(t, resp.Stations)
	require.NotNil(t, stations.statusSet)
	assert.Equal(t, domain.StatusExpired, *stations.statusSet)
	assert.Nil(t, stations.expiresAtSet)
}

func TestService_Create(t *testing.T) {
	stations := &fakeStationRepo{}
	configs := &fakeConfigRepo{}
	svc := newTestService(stations, configs, &fakePaymentRepo{}, &fakePlatformRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateStationRequest{
		UserID:  superAdminID,
		AdminID: adminID,
		Name:    "Lavadero Norte",
		Address: "Calle 123",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPendingApproval), resp.Status)
	require.NotNil(t, resp.Admin)
	assert.Equal(t, "Carlos", resp.Admin.Name)

	// Новое лавадеро сразу получает конфигурацию по умолчанию
	require.NotNil(t, configs.upserted)
	assert.Equal(t, int64(1), configs.upserted.StationID)
}

func TestService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateStationRequest
		repoErr error
		wantErr error
	}{
		{
			name:    "не суперадмин",
			req:     &models.CreateStationRequest{UserID: adminID, AdminID: adminID, Name: "X", Address: "Y"},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "пустое имя",
			req:     &models.CreateStationRequest{UserID: superAdminID, AdminID: adminID, Name: "  ", Address: "Y"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "админ не найден",
			req:     &models.CreateStationRequest{UserID: superAdminID, AdminID: 404, Name: "X", Address: "Y"},
			wantErr: ErrAdminNotFound,
		},
		{
			name:    "роль не ADMIN",
			req:     &models.CreateStationRequest{UserID: superAdminID, AdminID: 20, Name: "X", Address: "Y"},
			wantErr: ErrNotAnAdmin,
		},
		{
			name:    "у админа уже есть лавадеро",
			req:     &models.CreateStationRequest{UserID: superAdminID, AdminID: adminID, Name: "X", Address: "Y"},
			repoErr: stationRepo.ErrDuplicateStation,
			wantErr: ErrStationAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(
				&fakeStationRepo{createErr: tt.repoErr},
				&fakeConfigRepo{}, &fakePaymentRepo{}, &fakePlatformRepo{},
			)

			resp, err := svc.Create(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ToggleState_Activate(t *testing.T) {
	pending := activeStation()
	pending.Status = domain.StatusPendingApproval
	pending.IsActive = false
	pending.ExpiresAt = nil

	stations := &fakeStationRepo{stations: []*domain.Station{pending}}
	payments := &fakePaymentRepo{}
	platform := &fakePlatformRepo{config: &domain.PlatformConfig{ID: 1, BankAlias: "sa.mp", MonthlyPrice: 12000}}
	svc := newTestService(stations, &fakeConfigRepo{}, payments, platform)

	resp, err := svc.ToggleState(context.Background(), pending.ID, superAdminID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.ExpiresAt)
	assert.Equal(t, testNow.AddDate(0, 0, domain.PaidPeriodDays), *resp.ExpiresAt)

	require.NotNil(t, stations.activeSet)
	assert.True(t, *stations.activeSet)

	// Без платежа за текущий период активация фиксирует подтвержденный платеж
	require.NotNil(t, payments.created)
	assert.Equal(t, domain.PaymentConfirmed, payments.created.Status)
	assert.Equal(t, "2025-03", payments.created.Period)
	assert.Equal(t, 12000.0, payments.created.Amount)
}

func TestService_ToggleState_Deactivate(t *testing.T) {
	stations := &fakeStationRepo{stations: []*domain.Station{activeStation()}}
	payments := &fakePaymentRepo{}
	svc := newTestService(stations, &fakeConfigRepo{}, payments, &fakePlatformRepo{})

	resp, err := svc.ToggleState(context.Background(), 3, superAdminID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingApproval), resp.Status)
	assert.False(t, resp.IsActive)
	assert.Nil(t, resp.ExpiresAt)

	require.NotNil(t, stations.activeSet)
	assert.False(t, *stations.activeSet)

	// Для повторного включения выставляется неоплаченный платеж
	// по цене платформы по умолчанию
	require.NotNil(t, payments.created)
	assert.Equal(t, domain.PaymentPending, payments.created.Status)
	assert.Equal(t, domain.DefaultMonthlyPrice, payments.created.Amount)
}

func TestService_ToggleState_ExistingPaymentNotDuplicated(t *testing.T) {
	stations := &fakeStationRepo{stations: []*domain.Station{activeStation()}}
	payments := &fakePaymentRepo{payment: &domain.MonthlyPayment{ID: 7, Status: domain.PaymentPending}}
	svc := newTestService(stations, &fakeConfigRepo{}, payments, &fakePlatformRepo{})

	_, err := svc.ToggleState(context.Background(), 3, superAdminID)
	require.NoError(t, err)
	assert.Nil(t, payments.created)
}

func TestService_ToggleState_NotFound(t *testing.T) {
	svc := newTestService(&fakeStationRepo{}, &fakeConfigRepo{}, &fakePaymentRepo{}, &fakePlatformRepo{})

	resp, err := svc.ToggleState(context.Background(), 99, superAdminID)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestService_ListAll_RequiresSuperAdmin(t *testing.T) {
	svc := newTestService(&fakeStationRepo{}, &fakeConfigRepo{}, &fakePaymentRepo{}, &fakePlatformRepo{})

	resp, err := svc.ListAll(context.Background(), adminID)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ListAll(t *testing.T) {
	stations := &fakeStationRepo{stations: []*domain.Station{activeStation()}}
	svc := newTestService(stations, &fakeConfigRepo{}, &fakePaymentRepo{}, &fakePlatformRepo{})

	resp, err := svc.ListAll(context.Background(), superAdminID)
	require.NoError(t, err)

	require.Len(t, resp.Stations, 1)
	require.NotNil(t, resp.Stations[0].Admin)
	assert.Equal(t, "Carlos", resp.Stations[0].Admin.Name)
}
