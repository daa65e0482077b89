package domain

import "github.com/m04kA/SMC-LavaderoService/pkg/types"

// Default schedule configuration values
const (
	DefaultOpenTime            = types.TimeString("08:00")
	DefaultCloseTime           = types.TimeString("18:00")
	DefaultSlotDurationMinutes = 60
	DefaultStationBankAlias    = "lavadero.alias.mp"
	DefaultPriceMotorcycle     = 3000.0
	DefaultPriceCar            = 5000.0
	DefaultPriceVan            = 8000.0
)

// Default platform billing values
const (
	DefaultPlatformBankAlias = "superadmin.alias.mp"
	DefaultMonthlyPrice      = 10000.0

	// PaidPeriodDays период, на который активируется лавадеро после подтверждения оплаты
	PaidPeriodDays = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 1
	MaxSlotDurationMinutes = 480 // 8 часов

	MinISOWeekday = 1 // Понедельник
	MaxISOWeekday = 7 // Воскресенье

	MaxHolidayReasonLength = 200
	MaxReviewCommentLength = 500
)

// TrailingSlotFloorMinutes минимальное окно до закрытия, при котором
// последний (усечённый) слот дня всё ещё предлагается
// Фиксированные 30 минут независимо от длительности слота
const TrailingSlotFloorMinutes = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysInWeek количество дней в недельной сетке
const DaysInWeek = 7
