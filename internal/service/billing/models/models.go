package models

import (
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
)

// Request модели

// UpdatePlatformConfigRequest запрос на обновление конфигурации платформы
type UpdatePlatformConfigRequest struct {
	UserID       int64   `json:"-"`
	BankAlias    string  `json:"bankAlias"`
	MonthlyPrice float64 `json:"monthlyPrice"`
}

// UploadProofRequest запрос на загрузку чека об оплате
type UploadProofRequest struct {
	UserID   int64  `json:"-"`
	ImageURL string `json:"imageUrl"`
}

// RejectProofRequest запрос на отклонение чека
type RejectProofRequest struct {
	UserID  int64  `json:"-"`
	Comment string `json:"comment"`
}

// ListProofsRequest параметры выборки чеков для суперадмина
type ListProofsRequest struct {
	UserID  int64
	Status  *string
	AdminID *int64
	Limit   int
	Offset  int
}

// Response модели

// PlatformConfigResponse публичная конфигурация платформы
type PlatformConfigResponse struct {
	BankAlias    string  `json:"bankAlias"`
	MonthlyPrice float64 `json:"monthlyPrice"`
}

// PendingPaymentResponse текущий неоплаченный платеж админа
type PendingPaymentResponse struct {
	ID              int64     `json:"id"`
	Amount          float64   `json:"amount"`
	Period          string    `json:"period"`
	DueAt           time.Time `json:"dueAt"`
	BankAlias       string    `json:"bankAlias"`
	HasPendingProof bool      `json:"hasPendingProof"`
}

// ProofResponse чек об оплате с данными платежа
type ProofResponse struct {
	ID            int64      `json:"id"`
	PaymentID     int64      `json:"paymentId"`
	AdminID       int64      `json:"adminId"`
	ImageURL      string     `json:"imageUrl"`
	Status        string     `json:"status"`
	ReviewComment *string    `json:"reviewComment,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	Amount        float64    `json:"amount"`
	Period        string     `json:"period"`
	StationID     int64      `json:"stationId"`
	StationName   string     `json:"stationName"`
}

// ProofListResponse ответ со списком чеков
type ProofListResponse struct {
	Proofs []ProofResponse `json:"proofs"`
}

// Методы конвертации

// FromDomainPlatformConfig конвертирует domain модель в DTO
func FromDomainPlatformConfig(cfg *domain.PlatformConfig) *PlatformConfigResponse {
	return &PlatformConfigResponse{
		BankAlias:    cfg.BankAlias,
		MonthlyPrice: cfg.MonthlyPrice,
	}
}

// FromDomainProofInfo конвертирует чек с данными платежа в DTO
func FromDomainProofInfo(info *domain.PaymentProofInfo) ProofResponse {
	return ProofResponse{
		ID:            info.ID,
		PaymentID:     info.PaymentID,
		AdminID:       info.AdminID,
		ImageURL:      info.ImageURL,
		Status:        string(info.Status),
		ReviewComment: info.ReviewComment,
		ReviewedAt:    info.ReviewedAt,
		CreatedAt:     info.CreatedAt,
		Amount:        info.Amount,
		Period:        info.Period,
		StationID:     info.StationID,
		StationName:   info.StationName,
	}
}

// FromDomainProofInfoList конвертирует список чеков в DTO
func FromDomainProofInfoList(proofs []*domain.PaymentProofInfo) *ProofListResponse {
	resp := &ProofListResponse{Proofs: []ProofResponse{}}
	for _, info := range proofs {
		resp.Proofs = append(resp.Proofs, FromDomainProofInfo(info))
	}
	return resp
}

// ToDomainFilter конвертирует параметры выборки в domain фильтр
func (r *ListProofsRequest) ToDomainFilter() domain.PaymentProofsFilter {
	filter := domain.PaymentProofsFilter{
		AdminID: r.AdminID,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}
	if r.Status != nil {
		status := domain.PaymentStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}
