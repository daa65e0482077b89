package billing

import "errors"

var (
	// ErrStationNotFound возвращается, когда лавадеро не найдено
	ErrStationNotFound = errors.New("station not found")

	// ErrPaymentNotFound возвращается, когда неоплаченный платеж не найден
	ErrPaymentNotFound = errors.New("pending payment not found")

	// ErrProofNotFound возвращается, когда чек не найден
	ErrProofNotFound = errors.New("payment proof not found")

	// ErrProofAlreadyPending возвращается, когда у платежа уже есть чек на проверке
	ErrProofAlreadyPending = errors.New("payment already has a pending proof")

	// ErrProofAlreadyReviewed возвращается при повторной проверке чека
	ErrProofAlreadyReviewed = errors.New("payment proof already reviewed")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
