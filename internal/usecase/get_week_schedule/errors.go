package get_week_schedule

import "errors"

var (
	// ErrStationNotFound возвращается, когда лавадеро не найдено
	ErrStationNotFound = errors.New("station not found")

	// ErrStationNotOperational возвращается, когда лавадеро не работает
	// (не активировано, заблокировано или отключено)
	ErrStationNotOperational = errors.New("station is not operational")

	// ErrInvalidScheduleConfig возвращается при противоречивой конфигурации:
	// открытие не раньше закрытия, неположительная длительность слота,
	// день недели вне диапазона 1..7
	ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
