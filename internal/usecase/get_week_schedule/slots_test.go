package get_week_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/ptr"
	"github.com/m04kA/SMC-LavaderoService/pkg/types"
)

// Понедельник 3 марта 2025, вся неделя внутри одного месяца
var (
	testMonday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	testNow    = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) // суббота до начала недели
)

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		StationID:           1,
		OpenTime:            "08:00",
		CloseTime:           "18:00",
		SlotDurationMinutes: 60,
		WorkingWeekdays:     []int{1, 2, 3, 4, 5},
	}
}

func TestComputeWeek_MondayAlignment(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
	}{
		{"понедельник", testMonday},
		{"среда", testMonday.AddDate(0, 0, 2)},
		{"воскресенье", testMonday.AddDate(0, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, err := computeWeek(tt.anchor, testNow, testConfig(), nil, nil)
			require.NoError(t, err)

			assert.Equal(t, testMonday, week.WeekStart)
			for i, day := range week.Days {
				assert.Equal(t, i+1, day.ISOWeekday)
				assert.Equal(t, testMonday.AddDate(0, 0, i), day.Date)
			}
		})
	}
}

func TestComputeWeek_WorkingDaySlotCount(t *testing.T) {
	week, err := computeWeek(testMonday, testNow, testConfig(), nil, nil)
	require.NoError(t, err)

	// Понедельник - пятница: 10 слотов по часу с 08:00 до 18:00
	for i := 0; i < 5; i++ {
		day := week.Days[i]
		assert.Equal(t, domain.DayWorking, day.Status)
		require.Len(t, day.Slots, 10)
		assert.Equal(t, types.TimeString("08:00"), day.Slots[0].StartTime)
		assert.Equal(t, types.TimeString("17:00"), day.Slots[9].StartTime)
	}

	// Суббота и воскресенье нерабочие, слотов нет
	for i := 5; i < 7; i++ {
		day := week.Days[i]
		assert.Equal(t, domain.DayNonWorkingWeekday, day.Status)
		assert.Empty(t, day.Slots)
	}
}

func TestComputeWeek_TrailingSlot(t *testing.T) {
	tests := []struct {
		name      string
		closeTime types.TimeString
		want      []types.TimeString
	}{
		{
			// До закрытия 40 минут - хвостовой слот попадает в сетку
			name:      "хвостовой слот включен при 40 минутах до закрытия",
			closeTime: "09:40",
			want:      []types.TimeString{"08:00", "09:00"},
		},
		{
			// До закрытия 20 минут - меньше минимального окна в 30 минут
			name:      "хвостовой слот отброшен при 20 минутах до закрытия",
			closeTime: "09:20",
			want:      []types.TimeString{"08:00"},
		},
		{
			// Ровно 30 минут до закрытия - граница включается
			name:      "хвостовой слот включен ровно при 30 минутах",
			closeTime: "09:30",
			want:      []types.TimeString{"08:00", "09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			config.CloseTime = tt.closeTime

			week, err := computeWeek(testMonday, testNow, config, nil, nil)
			require.NoError(t, err)

			var starts []types.TimeString
			for _, slot := range week.Days[0].Slots {
				starts = append(starts, slot.StartTime)
			}
			assert.Equal(t, tt.want, starts)
		})
	}
}

func TestComputeWeek_PastSlotsOnCurrentDay(t *testing.T) {
	// Среда 5 марта, 14:30 - слоты до 14:30 включительно уже прошли
	now := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

	week, err := computeWeek(testMonday, now, testConfig(), nil, nil)
	require.NoError(t, err)

	// Понедельник и вторник полностью в прошлом
	assert.Equal(t, domain.DayPast, week.Days[0].Status)
	assert.Equal(t, domain.DayPast, week.Days[1].Status)
	assert.Empty(t, week.Days[0].Slots)

	// В среду прошли слоты с 08:00 по 14:00, остались с 15:00 по 17:00
	wednesday := week.Days[2]
	require.Len(t, wednesday.Slots, 10)
	for _, slot := range wednesday.Slots[:7] {
		assert.Equal(t, domain.SlotPast, slot.State, "slot %s", slot.StartTime)
	}
	for _, slot := range wednesday.Slots[7:] {
		assert.Equal(t, domain.SlotAvailable, slot.State, "slot %s", slot.StartTime)
	}

	// Четверг целиком доступен
	for _, slot := range week.Days[3].Slots {
		assert.Equal(t, domain.SlotAvailable, slot.State)
	}
}

func TestComputeWeek_Selection(t *testing.T) {
	selection := &domain.SlotSelection{
		Date:      testMonday.AddDate(0, 0, 3), // четверг
		StartTime: "10:00",
	}

	week, err := computeWeek(testMonday, testNow, testConfig(), nil, selection)
	require.NoError(t, err)

	// Ровно один слот на всей неделе помечен как выбранный
	var selected int
	for _, day := range week.Days {
		for _, slot := range day.Slots {
			if slot.State == domain.SlotSelected {
				selected++
				assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
				assert.Equal(t, selection.Date, day.Date)
			}
		}
	}
	assert.Equal(t, 1, selected)
}

func TestComputeWeek_PastBeatsSelection(t *testing.T) {
	// Выбор указывает на уже прошедший слот текущего дня
	now := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	selection := &domain.SlotSelection{
		Date:      time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}

	week, err := computeWeek(testMonday, now, testConfig(), nil, selection)
	require.NoError(t, err)

	for _, slot := range week.Days[2].Slots {
		if slot.StartTime == "10:00" {
			assert.Equal(t, domain.SlotPast, slot.State)
			return
		}
	}
	t.Fatal("slot 10:00 not found")
}

func TestComputeWeek_HolidayOverridesWorkingWeekday(t *testing.T) {
	holidays := []*domain.Holiday{
		{
			StationID: 1,
			Date:      testMonday.AddDate(0, 0, 1), // вторник
			Reason:    ptr.Ptr("Feriado nacional"),
		},
	}

	week, err := computeWeek(testMonday, testNow, testConfig(), holidays, nil)
	require.NoError(t, err)

	tuesday := week.Days[1]
	assert.Equal(t, domain.DayHoliday, tuesday.Status)
	require.NotNil(t, tuesday.HolidayReason)
	assert.Equal(t, "Feriado nacional", *tuesday.HolidayReason)
	assert.Empty(t, tuesday.Slots)
}

func TestComputeWeek_PastBeatsHoliday(t *testing.T) {
	// Нерабочая дата на прошедшем дне: прошедший статус сильнее
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	holidays := []*domain.Holiday{
		{StationID: 1, Date: testMonday},
	}

	week, err := computeWeek(testMonday, now, testConfig(), holidays, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DayPast, week.Days[0].Status)
	assert.Nil(t, week.Days[0].HolidayReason)
}

func TestComputeWeek_EmptyWorkingWeekdays(t *testing.T) {
	config := testConfig()
	config.WorkingWeekdays = []int{}

	week, err := computeWeek(testMonday, testNow, config, nil, nil)
	require.NoError(t, err)

	for _, day := range week.Days {
		assert.Equal(t, domain.DayNonWorkingWeekday, day.Status)
		assert.Empty(t, day.Slots)
	}
}

func TestComputeWeek_Deterministic(t *testing.T) {
	holidays := []*domain.Holiday{
		{StationID: 1, Date: testMonday.AddDate(0, 0, 4)},
	}
	selection := &domain.SlotSelection{
		Date:      testMonday.AddDate(0, 0, 2),
		StartTime: "12:00",
	}

	first, err := computeWeek(testMonday, testNow, testConfig(), holidays, selection)
	require.NoError(t, err)
	second, err := computeWeek(testMonday, testNow, testConfig(), holidays, selection)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeWeek_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.ScheduleConfig)
	}{
		{"открытие позже закрытия", func(c *domain.ScheduleConfig) {
			c.OpenTime = "19:00"
		}},
		{"открытие равно закрытию", func(c *domain.ScheduleConfig) {
			c.OpenTime = c.CloseTime
		}},
		{"неположительная длительность слота", func(c *domain.ScheduleConfig) {
			c.SlotDurationMinutes = 0
		}},
		{"день недели вне диапазона", func(c *domain.ScheduleConfig) {
			c.WorkingWeekdays = []int{1, 8}
		}},
		{"некорректное время открытия", func(c *domain.ScheduleConfig) {
			c.OpenTime = "8am"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.mutate(config)

			week, err := computeWeek(testMonday, testNow, config, nil, nil)
			assert.Nil(t, week)
			assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
		})
	}
}
