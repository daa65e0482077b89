package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addHolidayHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/add_holiday"
	approveProofHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/approve_payment_proof"
	createStationHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/create_station"
	deleteHolidayHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/delete_holiday"
	getPendingPaymentHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/get_pending_payment"
	getPlatformConfigHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/get_platform_config"
	getStationConfigHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/get_station_config"
	getWeekScheduleHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/get_week_schedule"
	listAllStationsHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/list_all_stations"
	listHolidaysHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/list_holidays"
	listMyProofsHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/list_my_proofs"
	listProofsHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/list_payment_proofs"
	listStationsHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/list_stations"
	rejectProofHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/reject_payment_proof"
	toggleOpenHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/toggle_open"
	toggleStationStateHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/toggle_station_state"
	updatePlatformConfigHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/update_platform_config"
	updateStationConfigHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/update_station_config"
	uploadProofHandler "github.com/m04kA/SMC-LavaderoService/internal/api/handlers/upload_payment_proof"
	"github.com/m04kA/SMC-LavaderoService/internal/api/middleware"
	"github.com/m04kA/SMC-LavaderoService/internal/config"
	holidayRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/holiday"
	paymentRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/payment"
	platformConfigRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/platformconfig"
	scheduleConfigRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/scheduleconfig"
	stationRepo "github.com/m04kA/SMC-LavaderoService/internal/infra/storage/station"
	userServiceClient "github.com/m04kA/SMC-LavaderoService/internal/integrations/userservice"
	billingService "github.com/m04kA/SMC-LavaderoService/internal/service/billing"
	scheduleConfigService "github.com/m04kA/SMC-LavaderoService/internal/service/scheduleconfig"
	stationsService "github.com/m04kA/SMC-LavaderoService/internal/service/stations"
	approveProofUC "github.com/m04kA/SMC-LavaderoService/internal/usecase/approve_payment_proof"
	getWeekScheduleUC "github.com/m04kA/SMC-LavaderoService/internal/usecase/get_week_schedule"
	"github.com/m04kA/SMC-LavaderoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/logger"
	"github.com/m04kA/SMC-LavaderoService/pkg/metrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-LavaderoService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-LavaderoService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент UserService
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		stationRepository        *stationRepo.Repository
		scheduleConfigRepository *scheduleConfigRepo.Repository
		holidayRepository        *holidayRepo.Repository
		paymentRepository        *paymentRepo.Repository
		platformConfigRepository *platformConfigRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		stationRepository = stationRepo.NewRepository(wrappedDB)
		scheduleConfigRepository = scheduleConfigRepo.NewRepository(wrappedDB)
		holidayRepository = holidayRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		platformConfigRepository = platformConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		stationRepository = stationRepo.NewRepository(db)
		scheduleConfigRepository = scheduleConfigRepo.NewRepository(db)
		holidayRepository = holidayRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		platformConfigRepository = platformConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	stationsSvc := stationsService.NewService(
		stationRepository,
		scheduleConfigRepository,
		paymentRepository,
		platformConfigRepository,
		userClient,
		txMgr,
		&stationsService.RealTimeProvider{},
		log,
	)
	scheduleConfigSvc := scheduleConfigService.NewService(
		scheduleConfigRepository,
		stationRepository,
		holidayRepository,
		&scheduleConfigService.RealTimeProvider{},
		log,
	)
	billingSvc := billingService.NewService(
		paymentRepository,
		platformConfigRepository,
		stationRepository,
		userClient,
		&billingService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	getWeekScheduleUseCase := getWeekScheduleUC.NewUseCase(
		stationRepository,
		scheduleConfigRepository,
		holidayRepository,
		log,
	)
	approveProofUseCase := approveProofUC.NewUseCase(
		paymentRepository,
		stationRepository,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listStations := listStationsHandler.NewHandler(stationsSvc, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	getPlatformConfig := getPlatformConfigHandler.NewHandler(billingSvc, log)
	getStationConfig := getStationConfigHandler.NewHandler(scheduleConfigSvc, log)
	updateStationConfig := updateStationConfigHandler.NewHandler(scheduleConfigSvc, log)
	toggleOpen := toggleOpenHandler.NewHandler(scheduleConfigSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(scheduleConfigSvc, log)
	addHoliday := addHolidayHandler.NewHandler(scheduleConfigSvc, log)
	deleteHoliday := deleteHolidayHandler.NewHandler(scheduleConfigSvc, log)
	getPendingPayment := getPendingPaymentHandler.NewHandler(billingSvc, log)
	uploadProof := uploadProofHandler.NewHandler(billingSvc, log)
	listMyProofs := listMyProofsHandler.NewHandler(billingSvc, log)
	listAllStations := listAllStationsHandler.NewHandler(stationsSvc, log)
	createStation := createStationHandler.NewHandler(stationsSvc, log)
	toggleStationState := toggleStationStateHandler.NewHandler(stationsSvc, log)
	listProofs := listProofsHandler.NewHandler(billingSvc, log)
	approveProof := approveProofHandler.NewHandler(approveProofUseCase, log)
	rejectProof := rejectProofHandler.NewHandler(billingSvc, log)
	updatePlatformConfig := updatePlatformConfigHandler.NewHandler(billingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог операционных лавадеро
	api.HandleFunc("/lavaderos", listStations.Handle).Methods(http.MethodGet)

	// Недельное расписание лавадеро
	api.HandleFunc("/lavaderos/{stationId}/week-schedule",
		getWeekSchedule.Handle).Methods(http.MethodGet)

	// Публичная конфигурация платформы (alias банковский, цена)
	api.HandleFunc("/platform-config", getPlatformConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Панель администратора лавадеро ---
	// Конфигурация расписания
	protected.HandleFunc("/admin/lavaderos/{stationId}/config",
		getStationConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/lavaderos/{stationId}/config",
		updateStationConfig.Handle).Methods(http.MethodPut)

	// Быстрое открытие/закрытие
	protected.HandleFunc("/admin/lavaderos/{stationId}/toggle-apertura",
		toggleOpen.Handle).Methods(http.MethodPost)

	// Нерабочие дни
	protected.HandleFunc("/admin/lavaderos/{stationId}/dias-no-laborales",
		listHolidays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/lavaderos/{stationId}/dias-no-laborales",
		addHoliday.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/lavaderos/{stationId}/dias-no-laborales/{holidayId}",
		deleteHoliday.Handle).Methods(http.MethodDelete)

	// Ежемесячные платежи и чеки об оплате
	protected.HandleFunc("/admin/lavaderos/{stationId}/pago-pendiente",
		getPendingPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/lavaderos/{stationId}/comprobantes",
		uploadProof.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/lavaderos/{stationId}/comprobantes",
		listMyProofs.Handle).Methods(http.MethodGet)

	// --- Панель суперадмина ---
	// Управление лавадеро
	protected.HandleFunc("/superadmin/lavaderos", listAllStations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/superadmin/lavaderos", createStation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/superadmin/lavaderos/{stationId}/toggle-state",
		toggleStationState.Handle).Methods(http.MethodPost)

	// Модерация чеков об оплате
	protected.HandleFunc("/superadmin/comprobantes", listProofs.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/superadmin/comprobantes/{proofId}/aprobar",
		approveProof.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/superadmin/comprobantes/{proofId}/rechazar",
		rejectProof.Handle).Methods(http.MethodPost)

	// Конфигурация платформы
	protected.HandleFunc("/superadmin/config", updatePlatformConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
