package get_week_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	configRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/scheduleconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
)

type fakeStationRepo struct {
	station *domain.Station
	err     error
}

func (f *fakeStationRepo) GetByID(_ context.Context, _ int64) (*domain.Station, error) {
	return f.station, f.err
}

type fakeConfigRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (f *fakeConfigRepo) GetByStationID(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	return f.config, f.err
}

type fakeHolidayRepo struct {
	holidays []*domain.Holiday
	err      error
}

func (f *fakeHolidayRepo) ListByStation(_ context.Context, _ int64) ([]*domain.Holiday, error) {
	return f.holidays, f.err
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

func operationalStation() *domain.Station {
	return &domain.Station{
		ID:       1,
		Name:     "Lavadero Centro",
		AdminID:  10,
		Status:   domain.StatusActive,
		IsActive: true,
	}
}

func newTestUseCase(stations *fakeStationRepo, configs *fakeConfigRepo, holidays *fakeHolidayRepo, now time.Time) *UseCase {
	return NewUseCase(stations, configs, holidays, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
}

func TestUseCase_Execute(t *testing.T) {
	anchor := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeStationRepo{station: operationalStation()},
		&fakeConfigRepo{config: testConfig()},
		&fakeHolidayRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StationID: 1, Date: anchor})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StationID)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), resp.Week.WeekStart)
	assert.Equal(t, "3 - 9 de Marzo 2025", resp.Week.Label)
}

func TestUseCase_Execute_StationNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeStationRepo{err: stationRepo.ErrStationNotFound},
		&fakeConfigRepo{},
		&fakeHolidayRepo{},
		time.Now(),
	)

	resp, err := uc.Execute(context.Background(), &Request{StationID: 42, Date: time.Now()})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestUseCase_Execute_StationNotOperational(t *testing.T) {
	tests := []struct {
		name    string
		station *domain.Station
	}{
		{"ожидает подтверждения оплаты", &domain.Station{ID: 1, Status: domain.StatusPendingApproval, IsActive: true}},
		{"срок оплаты истек", &domain.Station{ID: 1, Status: domain.StatusExpired, IsActive: true}},
		{"выключено суперадмином", &domain.Station{ID: 1, Status: domain.StatusActive, IsActive: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&fakeStationRepo{station: tt.station},
				&fakeConfigRepo{config: testConfig()},
				&fakeHolidayRepo{},
				time.Now(),
			)

			resp, err := uc.Execute(context.Background(), &Request{StationID: 1, Date: time.Now()})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrStationNotOperational)
		})
	}
}

func TestUseCase_Execute_DefaultConfigWhenMissing(t *testing.T) {
	anchor := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeStationRepo{station: operationalStation()},
		&fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		&fakeHolidayRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StationID: 1, Date: anchor})
	require.NoError(t, err)

	// Конфигурация по умолчанию: понедельник - пятница, 08:00-18:00 по часу
	monday := resp.Week.Days[0]
	assert.Equal(t, domain.DayWorking, monday.Status)
	assert.Len(t, monday.Slots, 10)
	assert.Equal(t, domain.DayNonWorkingWeekday, resp.Week.Days[5].Status)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeStationRepo{station: operationalStation()},
		&fakeConfigRepo{config: testConfig()},
		&fakeHolidayRepo{},
		time.Now(),
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой идентификатор лавадеро", &Request{StationID: 0, Date: time.Now()}},
		{"нулевая дата", &Request{StationID: 1}},
		{"некорректное время выбора", &Request{
			StationID: 1,
			Date:      time.Now(),
			Selection: &domain.SlotSelection{Date: time.Now(), StartTime: "25:99"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_InvalidStoredConfig(t *testing.T) {
	badConfig := testConfig()
	badConfig.OpenTime = "20:00" // позже закрытия

	uc := newTestUseCase(
		&fakeStationRepo{station: operationalStation()},
		&fakeConfigRepo{config: badConfig},
		&fakeHolidayRepo{},
		time.Now(),
	)

	resp, err := uc.Execute(context.Background(), &Request{StationID: 1, Date: time.Now()})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
}
