package list_my_proofs

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

type BillingService interface {
	MyProofs(ctx context.Context, stationID int64, userID int64) (*models.ProofListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
