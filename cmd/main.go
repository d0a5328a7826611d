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

	addTableHandler "github.com/restopoint/TableReservationService/internal/api/handlers/add_table"
	cancelBookingHandler "github.com/restopoint/TableReservationService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/restopoint/TableReservationService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/restopoint/TableReservationService/internal/api/handlers/create_booking"
	deleteTableHandler "github.com/restopoint/TableReservationService/internal/api/handlers/delete_table"
	getAvailableSlotsHandler "github.com/restopoint/TableReservationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/restopoint/TableReservationService/internal/api/handlers/get_booking"
	getLocationBookingsHandler "github.com/restopoint/TableReservationService/internal/api/handlers/get_location_bookings"
	getLocationConfigHandler "github.com/restopoint/TableReservationService/internal/api/handlers/get_location_config"
	listTablesHandler "github.com/restopoint/TableReservationService/internal/api/handlers/list_tables"
	suggestSlotsHandler "github.com/restopoint/TableReservationService/internal/api/handlers/suggest_slots"
	updateTableHandler "github.com/restopoint/TableReservationService/internal/api/handlers/update_table"
	"github.com/restopoint/TableReservationService/internal/api/middleware"
	"github.com/restopoint/TableReservationService/internal/config"
	bookingRepo "github.com/restopoint/TableReservationService/internal/infra/storage/booking"
	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
	tableRepo "github.com/restopoint/TableReservationService/internal/infra/storage/table"
	crmServiceClient "github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	mailServiceClient "github.com/restopoint/TableReservationService/internal/integrations/mailservice"
	availabilityService "github.com/restopoint/TableReservationService/internal/service/availability"
	bookingsService "github.com/restopoint/TableReservationService/internal/service/bookings"
	tablesService "github.com/restopoint/TableReservationService/internal/service/tables"
	confirmBookingUC "github.com/restopoint/TableReservationService/internal/usecase/confirm_booking"
	createBookingUC "github.com/restopoint/TableReservationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/restopoint/TableReservationService/internal/usecase/get_available_slots"
	suggestSlotsUC "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
	"github.com/restopoint/TableReservationService/pkg/dbmetrics"
	"github.com/restopoint/TableReservationService/pkg/logger"
	"github.com/restopoint/TableReservationService/pkg/metrics"
	"github.com/restopoint/TableReservationService/pkg/simpletxmanager"
	"github.com/restopoint/TableReservationService/pkg/txmanager"
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

	log.Info("Starting TableReservationService...")
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
	crmClient := crmServiceClient.NewClient(
		cfg.CRMService.URL,
		time.Duration(cfg.CRMService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CRMService=%s timeout=%ds, MailService=%s timeout=%ds)",
		cfg.CRMService.URL, cfg.CRMService.Timeout, cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		tableRepository    *tableRepo.Repository
		locationRepository *locationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	resolver := availabilityService.NewService(
		bookingRepository,
		tableRepository,
		locationRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		crmClient,
		log,
	)
	tableSvc := tablesService.NewService(
		tableRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		locationRepository,
		resolver,
		crmClient,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		tableRepository,
		locationRepository,
		txMgr,
		crmClient,
		mailClient,
		log,
	)
	suggestSlotsUseCase := suggestSlotsUC.NewUseCase(
		locationRepository,
		resolver,
		cfg.Booking.SuggestionRadiusMinutes,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		tableRepository,
		locationRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, suggestSlotsUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, suggestSlotsUseCase, bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getLocationBookings := getLocationBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	suggestSlots := suggestSlotsHandler.NewHandler(suggestSlotsUseCase, log)
	getLocationConfig := getLocationConfigHandler.NewHandler(locationRepository, log)
	addTable := addTableHandler.NewHandler(tableSvc, log)
	listTables := listTablesHandler.NewHandler(tableSvc, log)
	updateTable := updateTableHandler.NewHandler(tableSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tableSvc, log)

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

	// Слоты дня со счетчиками свободных столов
	api.HandleFunc("/locations/{locationId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор альтернативных слотов вокруг желаемого времени
	api.HandleFunc("/locations/{locationId}/slot-suggestions",
		suggestSlots.Handle).Methods(http.MethodGet)

	// Настройки расписания локации
	api.HandleFunc("/locations/{locationId}/config",
		getLocationConfig.Handle).Methods(http.MethodGet)

	// Список столов локации
	api.HandleFunc("/locations/{locationId}/tables",
		listTables.Handle).Methods(http.MethodGet)

	// Создание бронирования (гостевой портал)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования с выделением стола
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Список бронирований локации (для менеджеров)
	protected.HandleFunc("/locations/{locationId}/bookings", getLocationBookings.Handle).Methods(http.MethodGet)

	// --- Инвентарь столов (для менеджеров) ---
	protected.HandleFunc("/locations/{locationId}/tables", addTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

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
