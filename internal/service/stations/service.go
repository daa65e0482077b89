package stations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	platformRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/platformconfig"
	configRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/scheduleconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
	userClient "github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LavaderoService/internal/service/stations/models"
)

// Service сервис для работы с каталогом лавадеро
type Service struct {
	stationRepo  StationRepository
	configRepo   ConfigRepository
	paymentRepo  PaymentRepository
	platformRepo PlatformConfigRepository
	userClient   UserServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса лавадеро
func NewService(
	stationRepository StationRepository,
	configRepository ConfigRepository,
	paymentRepository PaymentRepository,
	platformRepository PlatformConfigRepository,
	userServiceClient UserServiceClient,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		stationRepo:  stationRepository,
		configRepo:   configRepository,
		paymentRepo:  paymentRepository,
		platformRepo: platformRepository,
		userClient:   userServiceClient,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListOperational возвращает работающие лавадеро для публичного каталога
// Карточки обогащаются адресом, ценами и статусом открытия из конфигурации
func (s *Service) ListOperational(ctx context.Context) (*models.PublicStationListResponse, error) {
	s.logger.Info("ListOperational: fetching operational stations")

	stations, err := s.stationRepo.List(ctx, domain.StationsFilter{OnlyOperative: true})
	if err != nil {
		s.logger.Error("ListOperational: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOperational - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	resp := &models.PublicStationListResponse{Stations: []models.PublicStationResponse{}}

	for _, station := range stations {
		// Просроченный оплаченный период переводит лавадеро в VENCIDO
		if station.HasExpired(now) {
			s.logger.Warn("ListOperational: station id=%d expired at %v, marking VENCIDO", station.ID, station.ExpiresAt)
			if err := s.stationRepo.UpdateStatus(ctx, station.ID, domain.StatusExpired, nil); err != nil {
				s.logger.Error("ListOperational: failed to mark station id=%d expired: %v", station.ID, err)
			}
			continue
		}

		cfg, err := s.stationConfig(ctx, station.ID)
		if err != nil {
			return nil, err
		}

		resp.Stations = append(resp.Stations, models.FromDomainPublicStation(station, cfg))
	}

	s.logger.Info("ListOperational: returning %d stations", len(resp.Stations))
	return resp, nil
}

// ListAll возвращает все лавадеро с данными их админов
// Доступно только суперадмину; при недоступности сервиса пользователей
// карточки возвращаются без данных админа
func (s *Service) ListAll(ctx context.Context, userID int64) (*models.StationListResponse, error) {
	s.logger.Info("ListAll: fetching all stations by user=%d", userID)

	if err := s.requireSuperAdmin(ctx, userID); err != nil {
		return nil, err
	}

	stations, err := s.stationRepo.List(ctx, domain.StationsFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	resp := &models.StationListResponse{Stations: []models.StationResponse{}}
	for _, station := range stations {
		admin, err := s.userClient.GetUserWithGracefulDegradation(ctx, station.AdminID)
		if err != nil && !errors.Is(err, userClient.ErrServiceDegraded) {
			s.logger.Warn("ListAll: failed to get admin id=%d: %v", station.AdminID, err)
			admin = nil
		}

		resp.Stations = append(resp.Stations, models.FromDomainStation(station, admin))
	}

	s.logger.Info("ListAll: returning %d stations", len(resp.Stations))
	return resp, nil
}

// Create регистрирует лавадеро для существующего админа
// Доступно только суперадмину; у одного админа может быть только одно лавадеро
func (s *Service) Create(ctx context.Context, req *models.CreateStationRequest) (*models.StationResponse, error) {
	s.logger.Info("Create: creating station %q for admin=%d by user=%d", req.Name, req.AdminID, req.UserID)

	if err := s.requireSuperAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		s.logger.Warn("Create: empty name or address")
		return nil, fmt.Errorf("%w: name and address are required", ErrInvalidInput)
	}

	// Целевой пользователь должен существовать и иметь роль ADMIN
	admin, err := s.userClient.GetUser(ctx, req.AdminID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("Create: admin id=%d not found", req.AdminID)
			return nil, ErrAdminNotFound
		}
		s.logger.Error("Create: failed to get admin id=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: failed to get admin: %v", ErrInternal, err)
	}
	if !admin.IsAdmin() {
		s.logger.Warn("Create: user id=%d has role %s, not ADMIN", req.AdminID, admin.Role)
		return nil, ErrNotAnAdmin
	}

	created, err := s.stationRepo.Create(ctx, req.ToDomainStation())
	if err != nil {
		if errors.Is(err, stationRepo.ErrDuplicateStation) {
			s.logger.Warn("Create: admin id=%d already owns a station", req.AdminID)
			return nil, ErrStationAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Новое лавадеро сразу получает конфигурацию по умолчанию
	if _, err := s.configRepo.Upsert(ctx, domain.DefaultScheduleConfig(created.ID)); err != nil {
		s.logger.Error("Create: failed to create default config for station id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Create - failed to create default config: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created station id=%d for admin=%d", created.ID, req.AdminID)
	resp := models.FromDomainStation(created, admin)
	return &resp, nil
}

// ToggleState переключает лавадеро между ACTIVO и PENDIENTE_APROBACION
// Активация открывает оплаченный период на 30 дней и фиксирует подтвержденный
// платеж за текущий месяц; деактивация сбрасывает период и выставляет
// неоплаченный платеж, если его еще нет
func (s *Service) ToggleState(ctx context.Context, stationID int64, userID int64) (*models.ToggleStateResponse, error) {
	s.logger.Info("ToggleState: toggling station id=%d by user=%d", stationID, userID)

	if err := s.requireSuperAdmin(ctx, userID); err != nil {
		return nil, err
	}

	var resp *models.ToggleStateResponse

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		station, err := s.stationRepo.GetByID(ctx, stationID)
		if err != nil {
			if errors.Is(err, stationRepo.ErrStationNotFound) {
				return ErrStationNotFound
			}
			return fmt.Errorf("%w: ToggleState - repository error: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()

		if station.Status == domain.StatusActive {
			resp, err = s.deactivate(ctx, station, now)
			return err
		}
		resp, err = s.activate(ctx, station, now)
		return err
	})

	if err != nil {
		if errors.Is(err, ErrStationNotFound) {
			s.logger.Warn("ToggleState: station id=%d not found", stationID)
		} else {
			s.logger.Error("ToggleState: transaction failed for station id=%d: %v", stationID, err)
		}
		return nil, err
	}

	s.logger.Info("ToggleState: station id=%d now %s (active=%v)", stationID, resp.Status, resp.IsActive)
	return resp, nil
}

func (s *Service) activate(ctx context.Context, station *domain.Station, now time.Time) (*models.ToggleStateResponse, error) {
	expiresAt := now.AddDate(0, 0, domain.PaidPeriodDays)

	if err := s.stationRepo.UpdateStatus(ctx, station.ID, domain.StatusActive, &expiresAt); err != nil {
		return nil, fmt.Errorf("%w: activate - failed to update status: %v", ErrInternal, err)
	}
	if err := s.stationRepo.SetActive(ctx, station.ID, true); err != nil {
		return nil, fmt.Errorf("%w: activate - failed to enable station: %v", ErrInternal, err)
	}

	// За текущий период должен существовать подтвержденный платеж
	period := domain.Period(now)
	_, err := s.paymentRepo.GetByAdminAndPeriod(ctx, station.AdminID, period)
	if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		if _, err := s.createPayment(ctx, station, now, domain.PaymentConfirmed); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: activate - failed to check payment: %v", ErrInternal, err)
	}

	return &models.ToggleStateResponse{
		ID:        station.ID,
		Status:    string(domain.StatusActive),
		IsActive:  true,
		ExpiresAt: &expiresAt,
	}, nil
}

func (s *Service) deactivate(ctx context.Context, station *domain.Station, now time.Time) (*models.ToggleStateResponse, error) {
	if err := s.stationRepo.UpdateStatus(ctx, station.ID, domain.StatusPendingApproval, nil); err != nil {
		return nil, fmt.Errorf("%w: deactivate - failed to update status: %v", ErrInternal, err)
	}
	if err := s.stationRepo.SetActive(ctx, station.ID, false); err != nil {
		return nil, fmt.Errorf("%w: deactivate - failed to disable station: %v", ErrInternal, err)
	}

	// Чтобы включиться обратно, админ должен оплатить текущий период
	period := domain.Period(now)
	_, err := s.paymentRepo.GetPendingByAdminAndPeriod(ctx, station.AdminID, period)
	if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		if _, err := s.createPayment(ctx, station, now, domain.PaymentPending); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: deactivate - failed to check pending payment: %v", ErrInternal, err)
	}

	return &models.ToggleStateResponse{
		ID:       station.ID,
		Status:   string(domain.StatusPendingApproval),
		IsActive: false,
	}, nil
}

func (s *Service) createPayment(ctx context.Context, station *domain.Station, now time.Time, status domain.PaymentStatus) (*domain.MonthlyPayment, error) {
	price := domain.DefaultMonthlyPrice

	cfg, err := s.platformRepo.Get(ctx)
	if err != nil && !errors.Is(err, platformRepo.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: createPayment - failed to get platform config: %v", ErrInternal, err)
	}
	if cfg != nil {
		price = cfg.MonthlyPrice
	}

	payment := &domain.MonthlyPayment{
		AdminID:   station.AdminID,
		StationID: station.ID,
		Amount:    price,
		Period:    domain.Period(now),
		Status:    status,
		DueAt:     now.AddDate(0, 0, domain.PaidPeriodDays),
	}

	created, err := s.paymentRepo.CreatePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("%w: createPayment - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// stationConfig возвращает конфигурацию лавадеро или конфигурацию по умолчанию
func (s *Service) stationConfig(ctx context.Context, stationID int64) (*domain.ScheduleConfig, error) {
	cfg, err := s.configRepo.GetByStationID(ctx, stationID)
	if errors.Is(err, configRepo.ErrConfigNotFound) {
		return domain.DefaultScheduleConfig(stationID), nil
	}
	if err != nil {
		s.logger.Error("stationConfig: repository error for station id=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: stationConfig - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
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
