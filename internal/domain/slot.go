package domain

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/pkg/types"
)

// SlotState represents the selectability of a single time slot
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotSelected  SlotState = "selected"
	SlotPast      SlotState = "past"
)

// DayStatus represents why a calendar day does (not) offer slots
type DayStatus string

const (
	DayWorking           DayStatus = "working"
	DayNonWorkingWeekday DayStatus = "non_working_weekday"
	DayHoliday           DayStatus = "holiday"
	DayPast              DayStatus = "past"
)

// Slot represents one bookable time slot on one calendar date
// Transient: recomputed on every request, never persisted
type Slot struct {
	StartTime types.TimeString
	State     SlotState
}

// IsSelectable returns true if the slot can be chosen by a client
func (s *Slot) IsSelectable() bool {
	return s.State == SlotAvailable || s.State == SlotSelected
}

// DaySchedule represents one calendar day of the weekly grid
type DaySchedule struct {
	Date          time.Time
	ISOWeekday    int // 1=понедельник ... 7=воскресенье
	Status        DayStatus
	HolidayReason *string // Заполнено только при Status == DayHoliday
	Slots         []Slot  // Пусто для нерабочих дней
}

// IsWorking returns true if the day generates slots
func (d *DaySchedule) IsWorking() bool {
	return d.Status == DayWorking
}

// WeekGrid represents a Monday-aligned week of day schedules
type WeekGrid struct {
	WeekStart time.Time // Всегда понедельник
	Label     string    // Человекочитаемый диапазон недели, например "3 - 9 de Marzo 2025"
	Days      [7]DaySchedule
}

// SlotSelection текущий выбор клиента: дата + время начала слота
// Хранится вызывающей стороной и передается в движок как данные
type SlotSelection struct {
	Date      time.Time
	StartTime types.TimeString
}

// Matches returns true if the selection points at the given (date, start time) pair
func (s *SlotSelection) Matches(date time.Time, start types.TimeString) bool {
	if s == nil {
		return false
	}
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 && s.StartTime == start
}
