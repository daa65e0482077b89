package scheduleconfig

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/holiday"
	configRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/scheduleconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
	"github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig/models"
)

// Service сервис конфигурации расписания лавадеро
type Service struct {
	configRepo   ConfigRepository
	stationRepo  StationRepository
	holidayRepo  HolidayRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepository ConfigRepository,
	stationRepository StationRepository,
	holidayRepository HolidayRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		configRepo:   configRepository,
		stationRepo:  stationRepository,
		holidayRepo:  holidayRepository,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetConfig возвращает конфигурацию лавадеро или конфигурацию по умолчанию
// Доступно только владельцу лавадеро
func (s *Service) GetConfig(ctx context.Context, stationID int64, userID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for station=%d by user=%d", stationID, userID)

	if err := s.requireOwner(ctx, stationID, userID); err != nil {
		return nil, err
	}

	config, err := s.configRepo.GetByStationID(ctx, stationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetConfig: no stored config for station=%d, returning defaults", stationID)
			return models.FromDomainConfig(domain.DefaultScheduleConfig(stationID)), nil
		}
		s.logger.Error("GetConfig: repository error for station=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// UpdateConfig полностью обновляет конфигурацию лавадеро (upsert)
// Доступно только владельцу лавадеро
func (s *Service) UpdateConfig(ctx context.Context, stationID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating config for station=%d by user=%d", stationID, req.UserID)

	if err := s.requireOwner(ctx, stationID, req.UserID); err != nil {
		return nil, err
	}

	config := req.ToDomainConfig(stationID)
	if err := s.validateConfig(config); err != nil {
		s.logger.Warn("UpdateConfig: validation failed for station=%d: %v", stationID, err)
		return nil, err
	}

	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error for station=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully updated config for station=%d", stationID)
	return models.FromDomainConfig(updated), nil
}

// ToggleOpen переключает флаг "открыто сейчас"
// Доступно только владельцу лавадеро
func (s *Service) ToggleOpen(ctx context.Context, stationID int64, userID int64) (*models.ToggleOpenResponse, error) {
	s.logger.Info("ToggleOpen: toggling open flag for station=%d by user=%d", stationID, userID)

	if err := s.requireOwner(ctx, stationID, userID); err != nil {
		return nil, err
	}

	config, err := s.configRepo.GetByStationID(ctx, stationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			// Без сохраненной конфигурации создаем её с настройками по умолчанию
			config, err = s.configRepo.Upsert(ctx, domain.DefaultScheduleConfig(stationID))
			if err != nil {
				s.logger.Error("ToggleOpen: failed to create default config for station=%d: %v", stationID, err)
				return nil, fmt.Errorf("%w: ToggleOpen - failed to create default config: %v", ErrInternal, err)
			}
		} else {
			s.logger.Error("ToggleOpen: repository error for station=%d: %v", stationID, err)
			return nil, fmt.Errorf("%w: ToggleOpen - repository error: %v", ErrInternal, err)
		}
	}

	newState := !config.IsOpenNow
	if err := s.configRepo.SetOpenNow(ctx, stationID, newState); err != nil {
		s.logger.Error("ToggleOpen: failed to set open flag for station=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: ToggleOpen - failed to set open flag: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleOpen: station=%d is now open=%v", stationID, newState)
	return &models.ToggleOpenResponse{StationID: stationID, IsOpenNow: newState}, nil
}

// ListHolidays возвращает нерабочие дни лавадеро
// Доступно только владельцу лавадеро
func (s *Service) ListHolidays(ctx context.Context, stationID int64, userID int64) (*models.HolidayListResponse, error) {
	s.logger.Info("ListHolidays: fetching holidays for station=%d by user=%d", stationID, userID)

	if err := s.requireOwner(ctx, stationID, userID); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListByStation(ctx, stationID)
	if err != nil {
		s.logger.Error("ListHolidays: repository error for station=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHolidayList(holidays), nil
}

// AddHoliday помечает дату как нерабочую
// Прошедшие даты и дубликаты отклоняются
func (s *Service) AddHoliday(ctx context.Context, stationID int64, req *models.AddHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("AddHoliday: adding holiday %s for station=%d by user=%d", req.Date, stationID, req.UserID)

	if err := s.requireOwner(ctx, stationID, req.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("AddHoliday: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		s.logger.Warn("AddHoliday: date %s is in the past", req.Date)
		return nil, ErrHolidayInPast
	}

	created, err := s.holidayRepo.Create(ctx, &domain.Holiday{
		StationID: stationID,
		Date:      date,
		Reason:    req.Reason,
	})
	if err != nil {
		if errors.Is(err, holidayRepo.ErrDuplicateHoliday) {
			s.logger.Warn("AddHoliday: date %s already marked for station=%d", req.Date, stationID)
			return nil, ErrHolidayAlreadyExists
		}
		s.logger.Error("AddHoliday: repository error for station=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: AddHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddHoliday: successfully added holiday id=%d for station=%d", created.ID, stationID)
	resp := models.FromDomainHoliday(created)
	return &resp, nil
}

// DeleteHoliday снимает отметку нерабочего дня
// Доступно только владельцу лавадеро
func (s *Service) DeleteHoliday(ctx context.Context, stationID int64, holidayID int64, userID int64) error {
	s.logger.Info("DeleteHoliday: deleting holiday id=%d for station=%d by user=%d", holidayID, stationID, userID)

	if err := s.requireOwner(ctx, stationID, userID); err != nil {
		return err
	}

	if err := s.holidayRepo.Delete(ctx, holidayID, stationID); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("DeleteHoliday: holiday id=%d not found for station=%d", holidayID, stationID)
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error for station=%d: %v", stationID, err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteHoliday: successfully deleted holiday id=%d for station=%d", holidayID, stationID)
	return nil
}

// requireOwner проверяет, что пользователь владеет лавадеро
func (s *Service) requireOwner(ctx context.Context, stationID int64, userID int64) error {
	station, err := s.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("requireOwner: station id=%d not found", stationID)
			return ErrStationNotFound
		}
		s.logger.Error("requireOwner: repository error for station id=%d: %v", stationID, err)
		return fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}

	if station.AdminID != userID {
		s.logger.Warn("requireOwner: user=%d does not own station=%d", userID, stationID)
		return ErrAccessDenied
	}

	return nil
}

// validateConfig проверяет конфигурацию перед сохранением
func (s *Service) validateConfig(config *domain.ScheduleConfig) error {
	if !config.OpenTime.IsValid() || !config.CloseTime.IsValid() {
		return fmt.Errorf("%w: openTime and closeTime must be HH:MM", ErrInvalidInput)
	}
	if !config.OpenTime.IsBefore(config.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}
	if config.SlotDurationMinutes < domain.MinSlotDurationMinutes || config.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	seen := make(map[int]bool, len(config.WorkingWeekdays))
	for _, d := range config.WorkingWeekdays {
		if d < domain.MinISOWeekday || d > domain.MaxISOWeekday {
			return fmt.Errorf("%w: working weekdays must be between 1 (lunes) and 7 (domingo)", ErrInvalidInput)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate working weekday %d", ErrInvalidInput, d)
		}
		seen[d] = true
	}

	if config.BasePrice < 0 || config.PriceMotorcycle < 0 || config.PriceCar < 0 || config.PriceVan < 0 {
		return fmt.Errorf("%w: prices must be non-negative", ErrInvalidInput)
	}

	return nil
}
