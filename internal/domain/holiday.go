package domain

import "time"

// Holiday represents a non-working date exception (dia no laboral) for a station
// The date is compared by calendar day; the time part is always midnight
type Holiday struct {
	ID        int64
	StationID int64
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}

// SameDate returns true if the holiday falls on the given calendar date
func (h *Holiday) SameDate(date time.Time) bool {
	y1, m1, d1 := h.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FindHoliday возвращает первый праздник на указанную дату или nil
// Дубликаты по дате идемпотентны - достаточно любого совпадения
func FindHoliday(holidays []*Holiday, date time.Time) *Holiday {
	for _, h := range holidays {
		if h.SameDate(date) {
			return h
		}
	}
	return nil
}
