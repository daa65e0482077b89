package get_week_schedule

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	getWeekSchedule "github.com/m04kA/SMC-LavaderoService/internal/usecase/get_week_schedule"
	"github.com/m04kA/SMC-LavaderoService/pkg/types"
)

// WeekScheduleResponse HTTP response model
type WeekScheduleResponse struct {
	StationID int64         `json:"stationId"`
	WeekStart string        `json:"weekStart"`
	Label     string        `json:"label"`
	Days      []DaySchedule `json:"days"`
}

// DaySchedule модель одного дня недельной сетки
type DaySchedule struct {
	Date          string  `json:"date"`
	ISOWeekday    int     `json:"isoWeekday"`
	Status        string  `json:"status"`
	HolidayReason *string `json:"holidayReason,omitempty"`
	Slots         []Slot  `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime string `json:"startTime"`
	State     string `json:"state"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSchedule.Response) *WeekScheduleResponse {
	days := make([]DaySchedule, 0, len(resp.Week.Days))
	for _, day := range resp.Week.Days {
		slots := make([]Slot, len(day.Slots))
		for i, slot := range day.Slots {
			slots[i] = Slot{
				StartTime: slot.StartTime.String(),
				State:     string(slot.State),
			}
		}

		days = append(days, DaySchedule{
			Date:          day.Date.Format(domain.DateFormat),
			ISOWeekday:    day.ISOWeekday,
			Status:        string(day.Status),
			HolidayReason: day.HolidayReason,
			Slots:         slots,
		})
	}

	return &WeekScheduleResponse{
		StationID: resp.StationID,
		WeekStart: resp.Week.WeekStart.Format(domain.DateFormat),
		Label:     resp.Week.Label,
		Days:      days,
	}
}

// ToUseCaseRequest создает запрос use case из параметров URL
// selectedDate и selectedTime опциональны и работают только парой
func ToUseCaseRequest(stationID int64, dateStr, selectedDateStr, selectedTimeStr string) (*getWeekSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getWeekSchedule.Request{
		StationID: stationID,
		Date:      date,
	}

	if selectedDateStr != "" && selectedTimeStr != "" {
		selectedDate, err := time.Parse(domain.DateFormat, selectedDateStr)
		if err != nil {
			return nil, err
		}
		req.Selection = &domain.SlotSelection{
			Date:      selectedDate,
			StartTime: types.TimeString(selectedTimeStr),
		}
	}

	return req, nil
}
