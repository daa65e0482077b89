package models

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/types"
)

// Request модели

// UpdateConfigRequest запрос на полное обновление конфигурации лавадеро
type UpdateConfigRequest struct {
	UserID              int64    `json:"-"`
	OpenTime            string   `json:"openTime"`
	CloseTime           string   `json:"closeTime"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	WorkingWeekdays     []int    `json:"workingWeekdays"`
	BankAlias           string   `json:"bankAlias"`
	BasePrice           float64  `json:"basePrice"`
	ServesMotorcycles   bool     `json:"servesMotorcycles"`
	ServesCars          bool     `json:"servesCars"`
	ServesVans          bool     `json:"servesVans"`
	PriceMotorcycle     float64  `json:"priceMotorcycle"`
	PriceCar            float64  `json:"priceCar"`
	PriceVan            float64  `json:"priceVan"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	FullAddress         *string  `json:"fullAddress,omitempty"`
}

// AddHolidayRequest запрос на добавление нерабочего дня
type AddHolidayRequest struct {
	UserID int64   `json:"-"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// ConfigResponse ответ с конфигурацией лавадеро
type ConfigResponse struct {
	StationID           int64     `json:"stationId"`
	OpenTime            string    `json:"openTime"`
	CloseTime           string    `json:"closeTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	WorkingWeekdays     []int     `json:"workingWeekdays"`
	BankAlias           string    `json:"bankAlias"`
	BasePrice           float64   `json:"basePrice"`
	ServesMotorcycles   bool      `json:"servesMotorcycles"`
	ServesCars          bool      `json:"servesCars"`
	ServesVans          bool      `json:"servesVans"`
	PriceMotorcycle     float64   `json:"priceMotorcycle"`
	PriceCar            float64   `json:"priceCar"`
	PriceVan            float64   `json:"priceVan"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	FullAddress         *string   `json:"fullAddress,omitempty"`
	IsOpenNow           bool      `json:"isOpenNow"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// HolidayResponse ответ с нерабочим днем
type HolidayResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// HolidayListResponse ответ со списком нерабочих дней
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// ToggleOpenResponse результат переключения флага "открыто сейчас"
type ToggleOpenResponse struct {
	StationID int64 `json:"stationId"`
	IsOpenNow bool  `json:"isOpenNow"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		StationID:           c.StationID,
		OpenTime:            c.OpenTime.String(),
		CloseTime:           c.CloseTime.String(),
		SlotDurationMinutes: c.SlotDurationMinutes,
		WorkingWeekdays:     c.WorkingWeekdays,
		BankAlias:           c.BankAlias,
		BasePrice:           c.BasePrice,
		ServesMotorcycles:   c.ServesMotorcycles,
		ServesCars:          c.ServesCars,
		ServesVans:          c.ServesVans,
		PriceMotorcycle:     c.PriceMotorcycle,
		PriceCar:            c.PriceCar,
		PriceVan:            c.PriceVan,
		Latitude:            c.Latitude,
		Longitude:           c.Longitude,
		FullAddress:         c.FullAddress,
		IsOpenNow:           c.IsOpenNow,
		UpdatedAt:           c.UpdatedAt,
	}
}

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpdateConfigRequest) ToDomainConfig(stationID int64) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		StationID:           stationID,
		OpenTime:            types.TimeString(r.OpenTime),
		CloseTime:           types.TimeString(r.CloseTime),
		SlotDurationMinutes: r.SlotDurationMinutes,
		WorkingWeekdays:     r.WorkingWeekdays,
		BankAlias:           r.BankAlias,
		BasePrice:           r.BasePrice,
		ServesMotorcycles:   r.ServesMotorcycles,
		ServesCars:          r.ServesCars,
		ServesVans:          r.ServesVans,
		PriceMotorcycle:     r.PriceMotorcycle,
		PriceCar:            r.PriceCar,
		PriceVan:            r.PriceVan,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		FullAddress:         r.FullAddress,
	}
}

// FromDomainHoliday конвертирует domain модель нерабочего дня в DTO
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID,
		Date:   h.Date.Format(domain.DateFormat),
		Reason: h.Reason,
	}
}

// FromDomainHolidayList конвертирует список нерабочих дней в DTO
func FromDomainHolidayList(holidays []*domain.Holiday) *HolidayListResponse {
	resp := &HolidayListResponse{Holidays: []HolidayResponse{}}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, FromDomainHoliday(h))
	}
	return resp
}
