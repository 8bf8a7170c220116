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

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
	approveReservationHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/approve_reservation"
	checkAvailabilityHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/check_availability"
	createBlockHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/create_block"
	createReservationHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/create_reservation"
	deleteBlockHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/delete_block"
	getReservationHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/get_reservation"
	listBlocksHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/list_blocks"
	listReservationsHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/list_reservations"
	rejectReservationHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/reject_reservation"
	uploadPaymentProofHandler "github.com/m04kA/HalisahaBookingService/internal/api/handlers/upload_payment_proof"
	"github.com/m04kA/HalisahaBookingService/internal/api/middleware"
	"github.com/m04kA/HalisahaBookingService/internal/app"
	"github.com/m04kA/HalisahaBookingService/internal/config"
	"github.com/m04kA/HalisahaBookingService/internal/infra/notify"
	blockRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/block"
	reservationRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/reservation"
	filestoreClient "github.com/m04kA/HalisahaBookingService/internal/integrations/filestore"
	blocksService "github.com/m04kA/HalisahaBookingService/internal/service/blocks"
	reservationsService "github.com/m04kA/HalisahaBookingService/internal/service/reservations"
	approveReservationUC "github.com/m04kA/HalisahaBookingService/internal/usecase/approve_reservation"
	checkAvailabilityUC "github.com/m04kA/HalisahaBookingService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/HalisahaBookingService/internal/usecase/create_reservation"
	expireReservationsUC "github.com/m04kA/HalisahaBookingService/internal/usecase/expire_reservations"
	"github.com/m04kA/HalisahaBookingService/internal/worker/sweeper"
	"github.com/m04kA/HalisahaBookingService/pkg/dbmetrics"
	"github.com/m04kA/HalisahaBookingService/pkg/logger"
	"github.com/m04kA/HalisahaBookingService/pkg/metrics"
	"github.com/m04kA/HalisahaBookingService/pkg/simpletxmanager"
	"github.com/m04kA/HalisahaBookingService/pkg/txmanager"
)

const migrationsDir = "migrations"

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

	log.Info("Starting HalisahaBookingService...")
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

	// Применяем миграции
	if err := app.RunMigrations(db, migrationsDir); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Клиент внешнего файлового хранилища (квитанции об оплате)
	fileStore := filestoreClient.NewClient(
		cfg.FileStore.URL,
		time.Duration(cfg.FileStore.Timeout)*time.Second,
		log,
	)
	log.Info("File store client initialized (url=%s, timeout=%ds)", cfg.FileStore.URL, cfg.FileStore.Timeout)

	// Kafka продюсер уведомлений (опционально)
	var producer *notify.Producer
	if cfg.Kafka.Enabled {
		producer = notify.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		log.Info("Kafka producer initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		blockRepository       *blockRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	blockSvc := blocksService.NewService(blockRepository, log)

	// Инициализируем use cases
	// Интерфейс остаётся nil, когда Kafka выключена - уведомления не отправляются
	var notificationProducer createReservationUC.NotificationProducer
	if producer != nil {
		notificationProducer = producer
	}
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		notificationProducer,
		cfg.Kafka.Topic,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		blockRepository,
		reservationRepository,
		log,
	)
	approveReservationUseCase := approveReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		log,
	)
	expireReservationsUseCase := expireReservationsUC.NewUseCase(
		reservationRepository,
		cfg.Sweeper.GraceDuration(),
		log,
	)

	// Фоновый sweeper просроченных pending-броней
	var sweeperMetrics sweeper.Metrics
	if cfg.Metrics.Enabled {
		sweeperMetrics = metricsCollector
	}
	expirySweeper := sweeper.New(
		cfg.Sweeper.IntervalDuration(),
		expireReservationsUseCase,
		sweeperMetrics,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, log)
	rejectReservation := rejectReservationHandler.NewHandler(reservationSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBlock := createBlockHandler.NewHandler(blockSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)
	uploadPaymentProof := uploadPaymentProofHandler.NewHandler(fileStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondMethodNotAllowed(w)
	})

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
	// PUBLIC ROUTES (мастер бронирования)
	// ============================================================

	// Создание заявки на бронь
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список всех броней (лента мастера и админ-панели)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Бронь по ID
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Вердикт доступности слота
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Список блокировок (мастер показывает причину дословно)
	api.HandleFunc("/blocks", listBlocks.Handle).Methods(http.MethodGet)

	// Загрузка квитанции об оплате
	api.HandleFunc("/payment-proofs", uploadPaymentProof.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Одобрение брони (с каскадным отклонением конкурентов)
	protected.HandleFunc("/reservations/{reservationId}/approve", approveReservation.Handle).Methods(http.MethodPatch)

	// Отклонение брони
	protected.HandleFunc("/reservations/{reservationId}/reject", rejectReservation.Handle).Methods(http.MethodPatch)

	// Управление блокировками
	protected.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// Запускаем sweeper
	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	expirySweeper.Start(sweeperCtx)

	// Создаем HTTP сервер. CORS оборачивает весь роутер,
	// чтобы preflight OPTIONS обрабатывался для любого маршрута
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
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

	// Останавливаем sweeper и дожидаемся конца текущего прогона
	cancelSweeper()
	expirySweeper.Stop()
	log.Info("Expiry sweeper stopped")

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
