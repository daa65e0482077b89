package domain

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/pkg/types"
)

// ScheduleConfig represents the booking schedule and pricing configuration of a station
// One config per station; when absent, defaults apply
type ScheduleConfig struct {
	ID                  int64
	StationID           int64
	OpenTime            types.TimeString // "08:00"
	CloseTime           types.TimeString // "18:00"
	SlotDurationMinutes int
	WorkingWeekdays     []int // ISO: 1=понедельник ... 7=воскресенье; пустой список = никогда не открыто
	BankAlias           string
	BasePrice           float64

	// Типы обслуживаемых транспортных средств и цены
	ServesMotorcycles bool
	ServesCars        bool
	ServesVans        bool
	PriceMotorcycle   float64
	PriceCar          float64
	PriceVan          float64

	// Местоположение лавадеро
	Latitude    *float64
	Longitude   *float64
	FullAddress *string

	// Открыто ли лавадеро прямо сейчас (переключается админом вручную)
	IsOpenNow bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingWeekday returns true if the ISO weekday (1=Monday...7=Sunday) is enabled
func (c *ScheduleConfig) IsWorkingWeekday(isoWeekday int) bool {
	for _, d := range c.WorkingWeekdays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// VehicleType тип транспортного средства
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "moto"
	VehicleCar        VehicleType = "auto"
	VehicleVan        VehicleType = "camioneta"
)

// Serves returns true if the station serves the given vehicle type
func (c *ScheduleConfig) Serves(v VehicleType) bool {
	switch v {
	case VehicleMotorcycle:
		return c.ServesMotorcycles
	case VehicleCar:
		return c.ServesCars
	case VehicleVan:
		return c.ServesVans
	default:
		return false
	}
}

// PriceFor returns the price for the given vehicle type, falling back to the base price
func (c *ScheduleConfig) PriceFor(v VehicleType) float64 {
	switch v {
	case VehicleMotorcycle:
		return c.PriceMotorcycle
	case VehicleCar:
		return c.PriceCar
	case VehicleVan:
		return c.PriceVan
	default:
		return c.BasePrice
	}
}

// ISOWeekday converts a time.Time weekday to ISO numbering (1=Monday ... 7=Sunday)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DefaultScheduleConfig возвращает конфигурацию по умолчанию для лавадеро
// Используется, пока админ не сохранил собственную конфигурацию
func DefaultScheduleConfig(stationID int64) *ScheduleConfig {
	return &ScheduleConfig{
		StationID:           stationID,
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		WorkingWeekdays:     []int{1, 2, 3, 4, 5}, // Понедельник - пятница
		BankAlias:           DefaultStationBankAlias,
		BasePrice:           DefaultPriceCar,
		ServesMotorcycles:   true,
		ServesCars:          true,
		ServesVans:          true,
		PriceMotorcycle:     DefaultPriceMotorcycle,
		PriceCar:            DefaultPriceCar,
		PriceVan:            DefaultPriceVan,
		IsOpenNow:           false,
	}
}
