package approve_payment_proof

import (
	"context"

	approveProof "github.com/m04kA/SMC-LavaderoService/internal/usecase/approve_payment_proof"
)

type ApprovePaymentProofUseCase interface {
	Execute(ctx context.Context, req *approveProof.Request) (*approveProof.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
