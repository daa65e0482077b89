package get_week_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	configRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/scheduleconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
)

// UseCase use case построения недельной сетки доступных слотов
type UseCase struct {
	stationRepo  StationRepository
	configRepo   ConfigRepository
	holidayRepo  HolidayRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	stationRepo StationRepository,
	configRepo ConfigRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		stationRepo:  stationRepo,
		configRepo:   configRepo,
		holidayRepo:  holidayRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case построения недельной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekSchedule: station=%d, date=%s",
		req.StationID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Лавадеро должно существовать и работать
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("GetWeekSchedule: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("GetWeekSchedule: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}
	if !station.IsOperational() {
		uc.logger.Warn("GetWeekSchedule: station id=%d is not operational (status=%s, active=%v)",
			station.ID, station.Status, station.IsActive)
		return nil, ErrStationNotOperational
	}

	// 3. Конфигурация расписания; без сохраненной берутся значения по умолчанию
	config, err := uc.configRepo.GetByStationID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			config = domain.DefaultScheduleConfig(req.StationID)
			uc.logger.Info("GetWeekSchedule: using default config for station=%d", req.StationID)
		} else {
			uc.logger.Error("GetWeekSchedule: failed to get config for station=%d: %v", req.StationID, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
	}

	// 4. Нерабочие даты лавадеро
	holidays, err := uc.holidayRepo.ListByStation(ctx, req.StationID)
	if err != nil {
		uc.logger.Error("GetWeekSchedule: failed to get holidays for station=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	// 5. Чистый расчет сетки
	now := uc.timeProvider.Now()
	week, err := computeWeek(req.Date, now, config, holidays, req.Selection)
	if err != nil {
		uc.logger.Warn("GetWeekSchedule: failed to compute week for station=%d: %v", req.StationID, err)
		return nil, err
	}

	uc.logger.Info("GetWeekSchedule: computed week %s for station=%d",
		week.WeekStart.Format(domain.DateFormat), req.StationID)

	return &Response{
		StationID: req.StationID,
		Week:      week,
	}, nil
}
