package domain

import "time"

// PaymentStatus represents the review status of a payment or proof
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDIENTE"
	PaymentConfirmed PaymentStatus = "CONFIRMADO"
	PaymentRejected  PaymentStatus = "RECHAZADO"
)

// PlatformConfig represents the platform-wide billing configuration (single row)
type PlatformConfig struct {
	ID           int64
	BankAlias    string
	MonthlyPrice float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyPayment represents one month of platform fee owed by a station admin
type MonthlyPayment struct {
	ID        int64
	AdminID   int64
	StationID int64
	Amount    float64
	Period    string // "YYYY-MM"
	Status    PaymentStatus
	DueAt     time.Time
	CreatedAt time.Time
}

// IsPending returns true if the payment still awaits a confirmed proof
func (p *MonthlyPayment) IsPending() bool {
	return p.Status == PaymentPending
}

// PaymentProof represents a transfer receipt submitted by an admin for review
type PaymentProof struct {
	ID            int64
	PaymentID     int64
	AdminID       int64
	ImageURL      string
	Status        PaymentStatus
	ReviewComment *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
}

// CanBeReviewed returns true if the proof has not been reviewed yet
func (p *PaymentProof) CanBeReviewed() bool {
	return p.Status == PaymentPending
}

// PaymentProofsFilter фильтр для выборки чеков об оплате
type PaymentProofsFilter struct {
	Status  *PaymentStatus // Фильтр по статусу (опционально)
	AdminID *int64         // Фильтр по админу (опционально)
	Limit   int
	Offset  int
}

// PaymentProofInfo чек об оплате, обогащенный данными платежа и лавадеро
// Используется в очереди ревью суперадмина и в истории
type PaymentProofInfo struct {
	PaymentProof
	Amount      float64
	Period      string
	StationID   int64
	StationName string
}

// Period возвращает период "YYYY-MM" для указанного момента времени
func Period(t time.Time) string {
	return t.Format("2006-01")
}
