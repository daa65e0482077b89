package stations

import "errors"

var (
	// ErrStationNotFound возвращается, когда лавадеро не найдено
	ErrStationNotFound = errors.New("station not found")

	// ErrAdminNotFound возвращается, когда админ не найден в сервисе пользователей
	ErrAdminNotFound = errors.New("admin not found")

	// ErrNotAnAdmin возвращается, когда пользователь не имеет роли ADMIN
	ErrNotAnAdmin = errors.New("user is not an admin")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrStationAlreadyExists возвращается, когда у админа уже есть лавадеро
	ErrStationAlreadyExists = errors.New("admin already owns a station")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
