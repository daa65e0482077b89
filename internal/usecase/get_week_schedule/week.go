package get_week_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
)

// spanishMonths названия месяцев для человекочитаемой подписи недели
var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// weekStart возвращает понедельник недели, содержащей дату
// Воскресенье относится к неделе, понедельник которой на 6 дней раньше
func weekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := domain.ISOWeekday(day) - 1
	return day.AddDate(0, 0, -offset)
}

// NavigateWeek сдвигает начало недели на одну неделю вперед или назад
// direction > 0 - следующая неделя, direction < 0 - предыдущая
func NavigateWeek(start time.Time, direction int) time.Time {
	if direction > 0 {
		return weekStart(start.AddDate(0, 0, domain.DaysInWeek))
	}
	if direction < 0 {
		return weekStart(start.AddDate(0, 0, -domain.DaysInWeek))
	}
	return weekStart(start)
}

// weekLabel строит подпись диапазона недели
// "3 - 9 de Marzo 2025" внутри одного месяца,
// "31 de Marzo - 6 de Abril 2025" на границе месяцев,
// оба года указываются на границе лет
func weekLabel(start time.Time) string {
	end := start.AddDate(0, 0, domain.DaysInWeek-1)

	startMonth := spanishMonths[start.Month()-1]
	endMonth := spanishMonths[end.Month()-1]

	if start.Year() != end.Year() {
		return fmt.Sprintf("%d de %s %d - %d de %s %d",
			start.Day(), startMonth, start.Year(), end.Day(), endMonth, end.Year())
	}

	if start.Month() != end.Month() {
		return fmt.Sprintf("%d de %s - %d de %s %d",
			start.Day(), startMonth, end.Day(), endMonth, end.Year())
	}

	return fmt.Sprintf("%d - %d de %s %d", start.Day(), end.Day(), startMonth, end.Year())
}
