package scheduleconfig

import "errors"

var (
	// ErrStationNotFound возвращается, когда лавадеро не найдено
	ErrStationNotFound = errors.New("station not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет лавадеро
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrHolidayNotFound возвращается, когда нерабочий день не найден
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrHolidayInPast возвращается при попытке пометить прошедшую дату
	ErrHolidayInPast = errors.New("holiday date is in the past")

	// ErrHolidayAlreadyExists возвращается, когда дата уже помечена как нерабочая
	ErrHolidayAlreadyExists = errors.New("date already marked as non-working")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
