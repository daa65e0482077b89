package get_week_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
	}{
		{"понедельник остается на месте", monday},
		{"среда откатывается к понедельнику", monday.AddDate(0, 0, 2)},
		{"воскресенье относится к прошлому понедельнику", monday.AddDate(0, 0, 6)},
		{"время суток отбрасывается", time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, weekStart(tt.date))
		})
	}
}

func TestNavigateWeek(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday.AddDate(0, 0, 7), NavigateWeek(monday, 1))
	assert.Equal(t, monday.AddDate(0, 0, -7), NavigateWeek(monday, -1))
	assert.Equal(t, monday, NavigateWeek(monday, 0))

	// Навигация с произвольного дня недели тоже выравнивается по понедельникам
	thursday := monday.AddDate(0, 0, 3)
	assert.Equal(t, monday.AddDate(0, 0, 7), NavigateWeek(thursday, 1))
	assert.Equal(t, monday.AddDate(0, 0, -7), NavigateWeek(thursday, -1))
}

func TestNavigateWeek_RoundTrip(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	next := NavigateWeek(monday, 1)
	assert.Equal(t, monday, NavigateWeek(next, -1))
}

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{
			name:  "неделя внутри одного месяца",
			start: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			want:  "3 - 9 de Marzo 2025",
		},
		{
			name:  "неделя на границе месяцев",
			start: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			want:  "31 de Marzo - 6 de Abril 2025",
		},
		{
			name:  "неделя на границе лет",
			start: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			want:  "30 de Diciembre 2024 - 5 de Enero 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weekLabel(tt.start))
		})
	}
}
