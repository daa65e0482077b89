package approve_payment_proof

import "errors"

var (
	// ErrProofNotFound возвращается, когда чек не найден
	ErrProofNotFound = errors.New("payment proof not found")

	// ErrProofAlreadyReviewed возвращается при повторной проверке чека
	ErrProofAlreadyReviewed = errors.New("payment proof already reviewed")

	// ErrAccessDenied возвращается, когда пользователь не суперадмин
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
