package station

import "errors"

var (
	// ErrStationNotFound возвращается, когда лавадеро не найдено
	ErrStationNotFound = errors.New("station.repository: station not found")

	// ErrDuplicateStation возвращается при попытке создать второе лавадеро для одного админа
	ErrDuplicateStation = errors.New("station.repository: admin already owns a station")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("station.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("station.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("station.repository: failed to scan row")
)
