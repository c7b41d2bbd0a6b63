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

	cancelReservationHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/cancel_reservation"
	createPlanHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/create_plan"
	createReservationHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/create_reservation"
	deletePlanHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/delete_plan"
	getDeskAvailabilityHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_desk_availability"
	getPlanHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_plan"
	getReservationsHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_reservations"
	getUserReservationsHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_user_reservations"
	reconcileBookingsHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/reconcile_bookings"
	syncPlanHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/sync_plan"
	updatePlanHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/update_plan"
	updateReservationHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/config"
	planRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/plan"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	employeeServiceClient "github.com/m04kA/SMC-WorkplaceService/internal/integrations/employeeservice"
	plansService "github.com/m04kA/SMC-WorkplaceService/internal/service/plans"
	reservationsService "github.com/m04kA/SMC-WorkplaceService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-WorkplaceService/internal/usecase/create_reservation"
	getDeskAvailabilityUC "github.com/m04kA/SMC-WorkplaceService/internal/usecase/get_desk_availability"
	reconcileBookingsUC "github.com/m04kA/SMC-WorkplaceService/internal/usecase/reconcile_bookings"
	syncPlanUC "github.com/m04kA/SMC-WorkplaceService/internal/usecase/sync_plan"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/logger"
	"github.com/m04kA/SMC-WorkplaceService/pkg/metrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-WorkplaceService/pkg/txmanager"
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

	log.Info("Starting SMC-WorkplaceService...")
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

	// Инициализируем клиент каталога сотрудников
	employeeClient := employeeServiceClient.NewClient(
		cfg.EmployeeService.URL,
		time.Duration(cfg.EmployeeService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (EmployeeService=%s timeout=%ds)",
		cfg.EmployeeService.URL, cfg.EmployeeService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		planRepository        *planRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		planRepository = planRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		planRepository = planRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		employeeClient,
		log,
	)
	planSvc := plansService.NewService(
		planRepository,
		employeeClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		planRepository,
		employeeClient,
		txMgr,
		log,
	)

	getDeskAvailabilityUseCase := getDeskAvailabilityUC.NewUseCase(
		reservationRepository,
		planRepository,
		employeeClient,
		log,
	)

	reconcileBookingsUseCase := reconcileBookingsUC.NewUseCase(
		reservationRepository,
		createReservationUseCase,
		log,
	)

	syncPlanUseCase := syncPlanUC.NewUseCase(
		planRepository,
		employeeClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getDeskAvailability := getDeskAvailabilityHandler.NewHandler(getDeskAvailabilityUseCase, log)
	reconcileBookings := reconcileBookingsHandler.NewHandler(reconcileBookingsUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationSvc, log)
	getPlan := getPlanHandler.NewHandler(planSvc, log)
	createPlan := createPlanHandler.NewHandler(planSvc, log)
	updatePlan := updatePlanHandler.NewHandler(planSvc, log)
	deletePlan := deletePlanHandler.NewHandler(planSvc, log)
	syncPlan := syncPlanHandler.NewHandler(syncPlanUseCase, log)

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

	// Просмотр плана этажа со столами и стенами
	api.HandleFunc("/plan", getPlan.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность и сверка сессии бронирования ---
	// Статус стола по рабочим дням периода
	protected.HandleFunc("/desks/{deskId}/availability", getDeskAvailability.Handle).Methods(http.MethodGet)

	// Подтверждение сессии: сведение бронирований стола к желаемому набору дат
	protected.HandleFunc("/desks/{deskId}/reconcile", reconcileBookings.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание одного бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Все бронирования за период (только администраторы)
	protected.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Смена длительности бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Бронирования пользователя за период
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- План этажа (для администраторов) ---
	protected.HandleFunc("/plan", createPlan.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/plan/{planId}", updatePlan.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/plan/{planId}", deletePlan.Handle).Methods(http.MethodDelete)

	// Синхронизация желаемого состояния плана (столы и стены целиком)
	protected.HandleFunc("/plan/{planId}/sync", syncPlan.Handle).Methods(http.MethodPost)

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
