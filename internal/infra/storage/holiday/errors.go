package holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда день не найден
	ErrHolidayNotFound = errors.New("holiday.repository: holiday not found")

	// ErrDuplicateHoliday возвращается, когда дата уже помечена как нерабочая
	ErrDuplicateHoliday = errors.New("holiday.repository: date already marked as non-working")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("holiday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("holiday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("holiday.repository: failed to scan row")
)
