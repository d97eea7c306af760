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

	cancelBookingHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/confirm_booking"
	createPaymentIntentHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/create_payment_intent"
	getBookingHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/get_user_bookings"
	initiateBookingHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/initiate_booking"
	listCouponsHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/list_coupons"
	previewPriceHandler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/preview_price"
	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
	"github.com/zumipet/ZMI-BookingService/internal/config"
	bookingRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/booking"
	couponRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/coupon"
	itemRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/item"
	subscriptionRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/subscription"
	stripeClient "github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
	"github.com/zumipet/ZMI-BookingService/internal/rewards"
	bookingsService "github.com/zumipet/ZMI-BookingService/internal/service/bookings"
	couponsService "github.com/zumipet/ZMI-BookingService/internal/service/coupons"
	confirmBookingUC "github.com/zumipet/ZMI-BookingService/internal/usecase/confirm_booking"
	initiateBookingUC "github.com/zumipet/ZMI-BookingService/internal/usecase/initiate_booking"
	previewPriceUC "github.com/zumipet/ZMI-BookingService/internal/usecase/preview_price"
	"github.com/zumipet/ZMI-BookingService/pkg/dbmetrics"
	"github.com/zumipet/ZMI-BookingService/pkg/logger"
	"github.com/zumipet/ZMI-BookingService/pkg/metrics"
	"github.com/zumipet/ZMI-BookingService/pkg/simpletxmanager"
	"github.com/zumipet/ZMI-BookingService/pkg/txmanager"
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

	log.Info("Starting ZMI-BookingService...")
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

	// Инициализируем клиент платёжного шлюза
	gateway := stripeClient.NewClient(
		cfg.Payments.BaseURL,
		cfg.Payments.SecretKey,
		cfg.Payments.MaxAmount,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (base_url=%s, timeout=%ds)",
		cfg.Payments.BaseURL, cfg.Payments.Timeout)

	// Генератор наградных промокодов
	rewardIssuer := rewards.NewGenerator()

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		itemRepository         *itemRepo.Repository
		couponRepository       *couponRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		itemRepository = itemRepo.NewRepository(wrappedDB)
		couponRepository = couponRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		itemRepository = itemRepo.NewRepository(db)
		couponRepository = couponRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	couponSvc := couponsService.NewService(couponRepository, log)

	// Инициализируем use cases
	previewPriceUseCase := previewPriceUC.NewUseCase(
		itemRepository,
		subscriptionRepository,
		couponRepository,
		txMgr,
		log,
	)
	initiateBookingUseCase := initiateBookingUC.NewUseCase(
		bookingRepository,
		itemRepository,
		subscriptionRepository,
		couponRepository,
		txMgr,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		couponRepository,
		gateway,
		rewardIssuer,
		txMgr,
		log,
	)

	// Инициализируем handlers
	previewPrice := previewPriceHandler.NewHandler(previewPriceUseCase, log)
	initiateBooking := initiateBookingHandler.NewHandler(initiateBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(gateway, cfg.Payments.Currency, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listCoupons := listCouponsHandler.NewHandler(couponSvc, log)

	// Реестр событий аутентификации: отказы логируются подписчиком,
	// а не самим middleware
	authEvents := middleware.NewAuthEvents()
	authEventCh, unsubscribeAuth := authEvents.Subscribe()
	defer unsubscribeAuth()
	go func() {
		for event := range authEventCh {
			log.Warn("Auth rejected: path=%s, reason=%s", event.Path, event.Reason)
		}
	}()

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

	// Список действующих купонов
	api.HandleFunc("/coupons", listCoupons.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authEvents))

	// --- Цены ---
	// Предварительный расчёт цены со скидками
	protected.HandleFunc("/pricing/preview", previewPrice.Handle).Methods(http.MethodPost)

	// --- Платежи ---
	// Создание платёжного интента
	protected.HandleFunc("/payments/intent", createPaymentIntent.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Инициация бронирования (pending_payment)
	protected.HandleFunc("/bookings/initiate", initiateBooking.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования после оплаты
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
