package get_week_schedule

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/types"
)

// computeWeek строит недельную сетку слотов
// Чистая функция: весь ввод (включая текущее время) передается аргументами,
// при некорректной конфигурации сетка не строится вовсе
func computeWeek(
	anchorDate time.Time,
	now time.Time,
	config *domain.ScheduleConfig,
	holidays []*domain.Holiday,
	selection *domain.SlotSelection,
) (*domain.WeekGrid, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	start := weekStart(anchorDate)
	grid := &domain.WeekGrid{
		WeekStart: start,
		Label:     weekLabel(start),
	}

	for i := 0; i < domain.DaysInWeek; i++ {
		date := start.AddDate(0, 0, i)
		grid.Days[i] = computeDay(date, now, config, holidays, selection)
	}

	return grid, nil
}

// computeDay определяет статус дня и генерирует его слоты
// Приоритет статусов: прошедший день > нерабочая дата > нерабочий день недели
func computeDay(
	date time.Time,
	now time.Time,
	config *domain.ScheduleConfig,
	holidays []*domain.Holiday,
	selection *domain.SlotSelection,
) domain.DaySchedule {
	day := domain.DaySchedule{
		Date:       date,
		ISOWeekday: domain.ISOWeekday(date),
		Slots:      []domain.Slot{},
	}

	if isDateInPast(date, now) {
		day.Status = domain.DayPast
		return day
	}

	if holiday := domain.FindHoliday(holidays, date); holiday != nil {
		day.Status = domain.DayHoliday
		day.HolidayReason = holiday.Reason
		return day
	}

	if !config.IsWorkingWeekday(day.ISOWeekday) {
		day.Status = domain.DayNonWorkingWeekday
		return day
	}

	day.Status = domain.DayWorking
	day.Slots = generateDaySlots(date, now, config, selection)
	return day
}

// generateDaySlots генерирует слоты рабочего дня
// Сетка идет от открытия с шагом длительности слота; неполный хвостовой слот
// попадает в сетку, если до закрытия остается хотя бы 30 минут
func generateDaySlots(
	date time.Time,
	now time.Time,
	config *domain.ScheduleConfig,
	selection *domain.SlotSelection,
) []domain.Slot {
	slots := []domain.Slot{}
	start := config.OpenTime

	for start.IsBefore(config.CloseTime) {
		if fitsSchedule(start, config) {
			slots = append(slots, domain.Slot{
				StartTime: start,
				State:     slotState(date, start, now, selection),
			})
		}

		next, err := start.AddMinutes(config.SlotDurationMinutes)
		if err != nil {
			break
		}
		start = next
	}

	return slots
}

// fitsSchedule проверяет, помещается ли слот до закрытия
func fitsSchedule(start types.TimeString, config *domain.ScheduleConfig) bool {
	end, err := start.AddMinutes(config.SlotDurationMinutes)
	if err == nil && !end.IsAfter(config.CloseTime) {
		return true
	}

	// Хвостовой неполный слот: минимум 30 минут до закрытия
	floor, err := start.AddMinutes(domain.TrailingSlotFloorMinutes)
	return err == nil && !floor.IsAfter(config.CloseTime)
}

// slotState определяет состояние слота
// Прошедшее время сильнее выбора клиента
func slotState(date time.Time, start types.TimeString, now time.Time, selection *domain.SlotSelection) domain.SlotState {
	if isSameDay(date, now) {
		nowTime := types.NewTimeString(now)
		if !start.IsAfter(nowTime) {
			return domain.SlotPast
		}
	}

	if selection.Matches(date, start) {
		return domain.SlotSelected
	}

	return domain.SlotAvailable
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
