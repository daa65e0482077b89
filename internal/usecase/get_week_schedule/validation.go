package get_week_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Selection != nil && !req.Selection.StartTime.IsValid() {
		return fmt.Errorf("%w: selected time must be HH:MM", ErrInvalidInput)
	}

	return nil
}

// validateConfig проверяет конфигурацию перед построением сетки
// Противоречивая конфигурация делает расчет невозможным целиком:
// частичная сетка не возвращается
func validateConfig(config *domain.ScheduleConfig) error {
	if !config.OpenTime.IsValid() {
		return fmt.Errorf("%w: open time %q is not HH:MM", ErrInvalidScheduleConfig, config.OpenTime)
	}

	if !config.CloseTime.IsValid() {
		return fmt.Errorf("%w: close time %q is not HH:MM", ErrInvalidScheduleConfig, config.CloseTime)
	}

	if !config.OpenTime.IsBefore(config.CloseTime) {
		return fmt.Errorf("%w: open time %s must be before close time %s",
			ErrInvalidScheduleConfig, config.OpenTime, config.CloseTime)
	}

	if config.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d",
			ErrInvalidScheduleConfig, config.SlotDurationMinutes)
	}

	for _, d := range config.WorkingWeekdays {
		if d < domain.MinISOWeekday || d > domain.MaxISOWeekday {
			return fmt.Errorf("%w: weekday %d is outside 1..7", ErrInvalidScheduleConfig, d)
		}
	}

	return nil
}
