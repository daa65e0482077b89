package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	platformRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/platformconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
	userClient "github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

// Service сервис платежей платформы: конфигурация, платежи админов, чеки
type Service struct {
	paymentRepo  PaymentRepository
	platformRepo PlatformConfigRepository
	stationRepo  StationRepository
	userClient   UserServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepository PaymentRepository,
	platformRepository PlatformConfigRepository,
	stationRepository StationRepository,
	userServiceClient UserServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:  paymentRepository,
		platformRepo: platformRepository,
		stationRepo:  stationRepository,
		userClient:   userServiceClient,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetPlatformConfig возвращает публичную конфигурацию платформы
// Если конфигурация не сохранена, возвращаются значения по умолчанию
func (s *Service) GetPlatformConfig(ctx context.Context) (*models.PlatformConfigResponse, error) {
	cfg, err := s.platformRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, platformRepo.ErrConfigNotFound) {
			return &models.PlatformConfigResponse{
				BankAlias:    domain.DefaultPlatformBankAlias,
				MonthlyPrice: domain.DefaultMonthlyPrice,
			}, nil
		}
		s.logger.Error("GetPlatformConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPlatformConfig(cfg), nil
}

// UpdatePlatformConfig обновляет конфигурацию платформы (upsert)
// Доступно только суперадмину
func (s *Service) UpdatePlatformConfig(ctx context.Context, req *models.UpdatePlatformConfigRequest) (*models.PlatformConfigResponse, error) {
	s.logger.Info("UpdatePlatformConfig: updating platform config by user=%d", req.UserID)

	if err := s.requireSuperAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.BankAlias) == "" {
		s.logger.Warn("UpdatePlatformConfig: empty bank alias")
		return nil, fmt.Errorf("%w: bankAlias is required", ErrInvalidInput)
	}
	if req.MonthlyPrice < 0 {
		s.logger.Warn("UpdatePlatformConfig: negative monthly price %f", req.MonthlyPrice)
		return nil, fmt.Errorf("%w: monthlyPrice must be non-negative", ErrInvalidInput)
	}

	updated, err := s.platformRepo.Upsert(ctx, &domain.PlatformConfig{
		BankAlias:    req.BankAlias,
		MonthlyPrice: req.MonthlyPrice,
	})
	if err != nil {
		s.logger.Error("UpdatePlatformConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdatePlatformConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePlatformConfig: successfully updated platform config")
	return models.FromDomainPlatformConfig(updated), nil
}

// PendingPayment возвращает текущий неоплаченный платеж владельца лавадеро
func (s *Service) PendingPayment(ctx context.Context, stationID int64, userID int64) (*models.PendingPaymentResponse, error) {
	s.logger.Info("PendingPayment: fetching pending payment for station=%d by user=%d", stationID, userID)

	if err := s.requireOwner(ctx, stationID, userID); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetPendingByAdmin(ctx, userID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Info("PendingPayment: no pending payment for admin=%d", userID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("PendingPayment: repository error for admin=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: PendingPayment - repository error: %v", ErrInternal, err)
	}

	hasPendingProof, err := s.paymentRepo.ExistsPendingProof(ctx, payment.ID)
	if err != nil {
		s.logger.Error("PendingPayment: failed to check pending proof for payment=%d: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: PendingPayment - failed to check pending proof: %v", ErrInternal, err)
	}

	platformCfg, err := s.GetPlatformConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PendingPaymentResponse{
		ID:              payment.ID,
		Amount:          payment.Amount,
		Period:          payment.Period,
		DueAt:           payment.DueAt,
		BankAlias:       platformCfg.BankAlias,
		HasPendingProof: hasPendingProof,
	}, nil
}

// UploadProof загружает чек об оплате для текущего неоплаченного платежа
// Пока предыдущий чек не проверен, новый не принимается
func (s *Service) UploadProof(ctx context.Context, stationID int64, req *models.UploadProofRequest) (*models.ProofResponse, error) {
	s.logger.Info("UploadProof: uploading proof for station=%d by user=%d", stationID, req.UserID)

	if err := s.requireOwner(ctx, stationID, req.UserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.ImageURL) == "" {
		s.logger.Warn("UploadProof: empty image URL")
		return nil, fmt.Errorf("%w: imageUrl is required", ErrInvalidInput)
	}

	payment, err := s.paymentRepo.GetPendingByAdmin(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("UploadProof: no pending payment for admin=%d", req.UserID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("UploadProof: repository error for admin=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: UploadProof - repository error: %v", ErrInternal, err)
	}

	hasPendingProof, err := s.paymentRepo.ExistsPendingProof(ctx, payment.ID)
	if err != nil {
		s.logger.Error("UploadProof: failed to check pending proof for payment=%d: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: UploadProof - failed to check pending proof: %v", ErrInternal, err)
	}
	if hasPendingProof {
		s.logger.Warn("UploadProof: payment id=%d already has a pending proof", payment.ID)
		return nil, ErrProofAlreadyPending
	}

	created, err := s.paymentRepo.CreateProof(ctx, &domain.PaymentProof{
		PaymentID: payment.ID,
		AdminID:   req.UserID,
		ImageURL:  req.ImageURL,
		Status:    domain.PaymentPending,
	})
	if err != nil {
		s.logger.Error("UploadProof: failed to create proof for payment=%d: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: UploadProof - failed to create proof: %v", ErrInternal, err)
	}

	s.logger.Info("UploadProof: successfully created proof id=%d for payment=%d", created.ID, payment.ID)
	return &models.ProofResponse{
		ID:        created.ID,
		PaymentID: created.PaymentID,
		AdminID:   created.AdminID,
		ImageURL:  created.ImageURL,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
		Amount:    payment.Amount,
		Period:    payment.Period,
		StationID: payment.StationID,
	}, nil
}

// MyProofs возвращает чеки владельца лавадеро с данными платежей
func (s *Service) MyProofs(ctx context.Context, stationID int64, userID int64) (*models.ProofListResponse, error) {
	s.logger.Info("MyProofs: fetching proofs for station=%d by user=%d", stationID, userID)

	if err := s.requireOwner(ctx, stationID, userID); err != nil {
		return nil, err
	}

	proofs, err := s.paymentRepo.ListProofs(ctx, domain.PaymentProofsFilter{AdminID: &userID})
	if err != nil {
		s.logger.Error("MyProofs: repository error for admin=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyProofs - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProofInfoList(proofs), nil
}

// ListProofs возвращает очередь ревью чеков для суперадмина
func (s *Service) ListProofs(ctx context.Context, req *models.ListProofsRequest) (*models.ProofListResponse, error) {
	s.logger.Info("ListProofs: fetching proofs by user=%d", req.UserID)

	if err := s.requireSuperAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := domain.PaymentStatus(*req.Status)
		if status != domain.PaymentPending && status != domain.PaymentConfirmed && status != domain.PaymentRejected {
			s.logger.Warn("ListProofs: unknown status %q", *req.Status)
			return nil, fmt.Errorf("%w: unknown proof status %q", ErrInvalidInput, *req.Status)
		}
	}

	proofs, err := s.paymentRepo.ListProofs(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListProofs: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProofs - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProofs: returning %d proofs", len(proofs))
	return models.FromDomainProofInfoList(proofs), nil
}

// RejectProof отклоняет чек с обязательным комментарием
// Платеж остается неоплаченным, админ может загрузить новый чек
func (s *Service) RejectProof(ctx context.Context, proofID int64, req *models.RejectProofRequest) error {
	s.logger.Info("RejectProof: rejecting proof id=%d by user=%d", proofID, req.UserID)

	if err := s.requireSuperAdmin(ctx, req.UserID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Comment) == "" {
		s.logger.Warn("RejectProof: empty comment for proof id=%d", proofID)
		return fmt.Errorf("%w: rejection comment is required", ErrInvalidInput)
	}

	proof, err := s.paymentRepo.GetProofByID(ctx, proofID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrProofNotFound) {
			s.logger.Warn("RejectProof: proof id=%d not found", proofID)
			return ErrProofNotFound
		}
		s.logger.Error("RejectProof: repository error for proof id=%d: %v", proofID, err)
		return fmt.Errorf("%w: RejectProof - repository error: %v", ErrInternal, err)
	}

	if !proof.CanBeReviewed() {
		s.logger.Warn("RejectProof: proof id=%d already reviewed (status=%s)", proofID, proof.Status)
		return ErrProofAlreadyReviewed
	}

	comment := req.Comment
	if err := s.paymentRepo.UpdateProofStatus(ctx, proofID, domain.PaymentRejected, &comment, s.timeProvider.Now()); err != nil {
		s.logger.Error("RejectProof: failed to update proof id=%d: %v", proofID, err)
		return fmt.Errorf("%w: RejectProof - failed to update proof: %v", ErrInternal, err)
	}

	s.logger.Info("RejectProof: successfully rejected proof id=%d", proofID)
	return nil
}

func (s *Service) requireSuperAdmin(ctx context.Context, userID int64) error {
	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("requireSuperAdmin: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("requireSuperAdmin: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsSuperAdmin() {
		s.logger.Warn("requireSuperAdmin: user id=%d has role %s", userID, user.Role)
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) requireOwner(ctx context.Context, stationID int64, userID int64) error {
	station, err := s.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("requireOwner: station id=%d not found", stationID)
			return ErrStationNotFound
		}
		s.logger.Error("requireOwner: repository error for station id=%d: %v", stationID, err)
		return fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}

	if station.AdminID != userID {
		s.logger.Warn("requireOwner: user=%d does not own station=%d", userID, stationID)
		return ErrAccessDenied
	}

	return nil
}
