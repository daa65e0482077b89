package list_payment_proofs

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

type BillingService interface {
	ListProofs(ctx context.Context, req *models.ListProofsRequest) (*models.ProofListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
