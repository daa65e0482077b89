package reject_payment_proof

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

type BillingService interface {
	RejectProof(ctx context.Context, proofID int64, req *models.RejectProofRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
