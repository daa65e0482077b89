package approve_payment_proof

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	userClient "github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LavaderoService/pkg/ptr"
)

const defaultApproveComment = "Pago confirmado"

// UseCase use case подтверждения чека об оплате
// Одной сериализуемой транзакцией: чек и платеж переводятся в CONFIRMADO,
// лавадеро активируется на оплаченный период
type UseCase struct {
	paymentRepo  PaymentRepository
	stationRepo  StationRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	stationRepo StationRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:  paymentRepo,
		stationRepo:  stationRepo,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет подтверждение чека
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApprovePaymentProof: proof=%d by user=%d", req.ProofID, req.UserID)

	// 1. Валидация входных данных
	if req.ProofID <= 0 {
		uc.logger.Warn("ApprovePaymentProof: invalid proof id %d", req.ProofID)
		return nil, fmt.Errorf("%w: proofID must be positive", ErrInvalidInput)
	}

	// 2. Проверяем права: только суперадмин подтверждает оплату
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("ApprovePaymentProof: user id=%d not found", req.UserID)
			return nil, ErrAccessDenied
		}
		uc.logger.Error("ApprovePaymentProof: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsSuperAdmin() {
		uc.logger.Warn("ApprovePaymentProof: user id=%d has role %s", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	var resp *Response

	// 3. Переводим чек, платеж и лавадеро одной транзакцией
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		proof, err := uc.paymentRepo.GetProofByID(ctx, req.ProofID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrProofNotFound) {
				return ErrProofNotFound
			}
			return fmt.Errorf("%w: failed to get proof: %v", ErrInternal, err)
		}

		if !proof.CanBeReviewed() {
			return ErrProofAlreadyReviewed
		}

		payment, err := uc.paymentRepo.GetPaymentByID(ctx, proof.PaymentID)
		if err != nil {
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}

		now := uc.timeProvider.Now()

		comment := req.Comment
		if comment == nil {
			comment = ptr.Ptr(defaultApproveComment)
		}

		if err := uc.paymentRepo.UpdateProofStatus(ctx, proof.ID, domain.PaymentConfirmed, comment, now); err != nil {
			return fmt.Errorf("%w: failed to update proof: %v", ErrInternal, err)
		}

		if err := uc.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, domain.PaymentConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}

		// Оплата открывает лавадеро на следующий оплаченный период
		expiresAt := now.AddDate(0, 0, domain.PaidPeriodDays)
		if err := uc.stationRepo.UpdateStatus(ctx, payment.StationID, domain.StatusActive, &expiresAt); err != nil {
			return fmt.Errorf("%w: failed to activate station: %v", ErrInternal, err)
		}
		if err := uc.stationRepo.SetActive(ctx, payment.StationID, true); err != nil {
			return fmt.Errorf("%w: failed to enable station: %v", ErrInternal, err)
		}

		resp = &Response{
			ProofID:   proof.ID,
			PaymentID: payment.ID,
			StationID: payment.StationID,
			Status:    string(domain.PaymentConfirmed),
			ExpiresAt: expiresAt,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrProofNotFound) || errors.Is(err, ErrProofAlreadyReviewed) {
			uc.logger.Warn("ApprovePaymentProof: proof=%d rejected: %v", req.ProofID, err)
		} else {
			uc.logger.Error("ApprovePaymentProof: transaction failed for proof=%d: %v", req.ProofID, err)
		}
		return nil, err
	}

	uc.logger.Info("ApprovePaymentProof: proof=%d confirmed, station=%d active until %s",
		resp.ProofID, resp.StationID, resp.ExpiresAt.Format(domain.DateFormat))
	return resp, nil
}
