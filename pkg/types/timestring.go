package types

import (
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (24 часа)
// Используется для расписаний и слотов, где важна только часть времени без даты
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("invalid time string %q: expected HH:MM", s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsValid проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) IsValid() bool {
	_, err := time.Parse("15:04", string(t))
	return err == nil
}

// TotalMinutes возвращает количество минут с полуночи
func (t TimeString) TotalMinutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string %q: expected HH:MM", t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на minutes минут вперед
// Результат не переходит через полночь - при переполнении возвращается ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, minutes)
	}

	// 24:00 используется как верхняя граница интервалов
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return string(t) < string(other)
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}
