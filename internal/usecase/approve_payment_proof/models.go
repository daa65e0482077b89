package approve_payment_proof

import "time"

// Request модель запроса на подтверждение чека
type Request struct {
	UserID  int64   // ID суперадмина
	ProofID int64   // ID чека
	Comment *string // Комментарий проверяющего (опционально)
}

// Response результат подтверждения: платеж закрыт, лавадеро активировано
type Response struct {
	ProofID   int64     `json:"proofId"`
	PaymentID int64     `json:"paymentId"`
	StationID int64     `json:"stationId"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
}
