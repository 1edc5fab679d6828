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

	acceptTermsHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/accept_terms"
	checkAvailabilityHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/check_availability"
	confirmPaymentHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/confirm_payment"
	createCarHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/delete_car"
	getCarHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/get_car"
	getSessionHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/get_session"
	initiatePaymentHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/initiate_payment"
	listBookingsHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/list_bookings"
	listCarsHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/list_cars"
	listEnquiriesHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/list_enquiries"
	resetSessionHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/reset_session"
	resolveStepHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/resolve_step"
	updateCarHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/update_car"
	updateEnquiryHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/update_enquiry"
	updateSessionHandler "github.com/rentovia/SDC-RentalService/internal/api/handlers/update_session"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
	"github.com/rentovia/SDC-RentalService/internal/config"
	bookingRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/car"
	enquiryRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/enquiry"
	mailerClient "github.com/rentovia/SDC-RentalService/internal/integrations/mailer"
	paymentClient "github.com/rentovia/SDC-RentalService/internal/integrations/paymentgw"
	enquiriesService "github.com/rentovia/SDC-RentalService/internal/service/enquiries"
	fleetService "github.com/rentovia/SDC-RentalService/internal/service/fleet"
	rentalsService "github.com/rentovia/SDC-RentalService/internal/service/rentals"
	sessionStore "github.com/rentovia/SDC-RentalService/internal/service/session"
	checkAvailabilityUC "github.com/rentovia/SDC-RentalService/internal/usecase/check_availability"
	confirmPaymentUC "github.com/rentovia/SDC-RentalService/internal/usecase/confirm_payment"
	initiatePaymentUC "github.com/rentovia/SDC-RentalService/internal/usecase/initiate_payment"
	"github.com/rentovia/SDC-RentalService/pkg/dbmetrics"
	"github.com/rentovia/SDC-RentalService/pkg/logger"
	"github.com/rentovia/SDC-RentalService/pkg/metrics"
	"github.com/rentovia/SDC-RentalService/pkg/simpletxmanager"
	"github.com/rentovia/SDC-RentalService/pkg/txmanager"
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

	log.Info("Starting SDC-RentalService...")
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

	// Инициализируем интеграционных клиентов
	paymentGW := paymentClient.NewClient(
		cfg.Payment.URL,
		cfg.Payment.KeyID,
		cfg.Payment.KeySecret,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		cfg.Mailer.APIKey,
		cfg.Mailer.From,
		cfg.Mailer.To,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentGW=%s timeout=%ds)",
		cfg.Payment.URL, cfg.Payment.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		carRepository     *carRepo.Repository
		enquiryRepository *enquiryRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		carRepository = carRepo.NewRepository(wrappedDB)
		enquiryRepository = enquiryRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		carRepository = carRepo.NewRepository(db)
		enquiryRepository = enquiryRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище черновиков бронирований (процессное, по X-Session-ID)
	drafts := sessionStore.NewStore()

	// Инициализируем сервисы
	fleetSvc := fleetService.NewService(carRepository, log)
	enquiriesSvc := enquiriesService.NewService(enquiryRepository, log)
	rentalsSvc := rentalsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		carRepository,
		enquiryRepository,
		drafts,
		mailer,
		log,
	)
	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(
		drafts,
		paymentGW,
		cfg.Payment.AdvanceAmount,
		cfg.Payment.Currency,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		drafts,
		bookingRepository,
		txMgr,
		cfg.Payment.AdvanceAmount,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	initiatePayment := initiatePaymentHandler.NewHandler(initiatePaymentUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getSession := getSessionHandler.NewHandler(drafts, log)
	updateSession := updateSessionHandler.NewHandler(drafts, log)
	acceptTerms := acceptTermsHandler.NewHandler(drafts, log)
	resetSession := resetSessionHandler.NewHandler(drafts, log)
	resolveStep := resolveStepHandler.NewHandler(drafts, log)
	listCars := listCarsHandler.NewHandler(fleetSvc, log)
	getCar := getCarHandler.NewHandler(fleetSvc, log)
	createCar := createCarHandler.NewHandler(fleetSvc, log)
	updateCar := updateCarHandler.NewHandler(fleetSvc, log)
	deleteCar := deleteCarHandler.NewHandler(fleetSvc, log)
	listEnquiries := listEnquiriesHandler.NewHandler(enquiriesSvc, log)
	updateEnquiry := updateEnquiryHandler.NewHandler(enquiriesSvc, log)
	listBookings := listBookingsHandler.NewHandler(rentalsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (каталог, без сессии)
	// ============================================================

	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	// Проверка доступности: валидация расписания, расчет длительности и цен
	session.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Черновик бронирования ---
	session.HandleFunc("/sessions", getSession.Handle).Methods(http.MethodGet)
	session.HandleFunc("/sessions", updateSession.Handle).Methods(http.MethodPatch)
	session.HandleFunc("/sessions/terms", acceptTerms.Handle).Methods(http.MethodPost)
	session.HandleFunc("/sessions/reset", resetSession.Handle).Methods(http.MethodPost)
	session.HandleFunc("/sessions/steps/{step}", resolveStep.Handle).Methods(http.MethodGet)

	// --- Оплата аванса ---
	session.HandleFunc("/payments", initiatePayment.Handle).Methods(http.MethodPost)
	session.HandleFunc("/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Admin)

	// --- Управление автопарком ---
	admin.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{carId}", updateCar.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/cars/{carId}", deleteCar.Handle).Methods(http.MethodDelete)

	// --- Триаж заявок ---
	admin.HandleFunc("/enquiries", listEnquiries.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/enquiries/{enquiryId}", updateEnquiry.Handle).Methods(http.MethodPatch)

	// --- Подтвержденные бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

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
