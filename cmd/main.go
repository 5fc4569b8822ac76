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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminBookingsHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/admin_bookings"
	adminConflictsHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/admin_conflicts"
	adminCreateHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/admin_create"
	adminLoginHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/admin_login"
	createBookingHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/create_booking"
	createReminderHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/create_reminder"
	generateRemindersHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/generate_reminders"
	getBookingHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/get_booking"
	getServiceExtrasHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/get_service_extras"
	listRemindersHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/list_reminders"
	quotePriceHandler "github.com/urinakcleaning/booking-service/internal/api/handlers/quote_price"
	"github.com/urinakcleaning/booking-service/internal/api/middleware"
	"github.com/urinakcleaning/booking-service/internal/config"
	extrasCache "github.com/urinakcleaning/booking-service/internal/infra/cache/extras"
	adminsRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/admins"
	bookingRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/booking"
	extrasRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/extras"
	remindersRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/reminders"
	"github.com/urinakcleaning/booking-service/internal/integrations/mailer"
	adminsService "github.com/urinakcleaning/booking-service/internal/service/admins"
	bookingsService "github.com/urinakcleaning/booking-service/internal/service/bookings"
	extrasService "github.com/urinakcleaning/booking-service/internal/service/extras"
	"github.com/urinakcleaning/booking-service/internal/service/notifications"
	remindersService "github.com/urinakcleaning/booking-service/internal/service/reminders"
	createBookingUC "github.com/urinakcleaning/booking-service/internal/usecase/create_booking"
	quotePriceUC "github.com/urinakcleaning/booking-service/internal/usecase/quote_price"
	reminderWorker "github.com/urinakcleaning/booking-service/internal/worker/reminders"
	"github.com/urinakcleaning/booking-service/pkg/dbmetrics"
	"github.com/urinakcleaning/booking-service/pkg/jwtauth"
	"github.com/urinakcleaning/booking-service/pkg/logger"
	"github.com/urinakcleaning/booking-service/pkg/metrics"
	"github.com/urinakcleaning/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Без коллектора обёртка просто проксирует запросы
	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	if cfg.Metrics.Enabled {
		wrappedDB.StartPoolStatsCollector(15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	reminderRepository := remindersRepo.NewRepository(wrappedDB)
	adminRepository := adminsRepo.NewRepository(wrappedDB)

	var extrasRepository extrasCache.Source = extrasRepo.NewRepository(wrappedDB)

	// Кеш дополнительных услуг в Redis (если включен)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, extras cache disabled: %v", err)
		} else {
			extrasRepository = extrasCache.NewCachedRepository(
				extrasRepository,
				redisClient,
				time.Duration(cfg.Redis.TTL)*time.Second,
				log,
			)
			log.Info("Extras cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Инициализируем отправку писем
	var sender notifications.Sender
	if cfg.Email.Enabled && cfg.Email.APIKey != "" {
		sender = mailer.NewClient(mailer.Config{
			APIKey:    cfg.Email.APIKey,
			FromEmail: cfg.Email.FromAddress,
			FromName:  cfg.Email.FromName,
		}, log)
		log.Info("SendGrid mailer initialized (from=%s)", cfg.Email.FromAddress)
	} else {
		sender = mailer.NewStubClient(log)
		log.Warn("Email delivery disabled, messages will only be logged")
	}

	tokenIssuer := jwtauth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute)

	// Инициализируем сервисы
	notifier := notifications.NewService(sender, notifications.Config{
		OwnerEmail:  cfg.Email.OwnerEmail,
		MaxAttempts: cfg.Email.MaxAttempts,
		RetryDelay:  time.Duration(cfg.Email.RetryDelay) * time.Millisecond,
	}, metricsCollector, log)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		extrasRepository,
		metricsCollector,
		log,
	)
	extrasSvc := extrasService.NewService(extrasRepository, log)
	reminderSvc := remindersService.NewService(
		reminderRepository,
		bookingRepository,
		notifier,
		metricsCollector,
		location,
		cfg.Reminders.BatchSize,
		log,
	)
	adminSvc := adminsService.NewService(adminRepository, tokenIssuer, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		reminderRepository,
		extrasRepository,
		notifier,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(extrasRepository, log)

	// Инициализируем handlers
	getServiceExtras := getServiceExtrasHandler.NewHandler(extrasSvc, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	adminLogin := adminLoginHandler.NewHandler(adminSvc, log)
	adminCreate := adminCreateHandler.NewHandler(adminSvc, cfg.Auth.BootstrapEnabled, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)
	adminConflicts := adminConflictsHandler.NewHandler(bookingSvc, log)
	createReminder := createReminderHandler.NewHandler(reminderSvc, log)
	generateReminders := generateRemindersHandler.NewHandler(reminderSvc, log)
	listReminders := listRemindersHandler.NewHandler(reminderSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Дополнительные услуги для формы бронирования
	api.HandleFunc("/service-extras/{serviceType}", getServiceExtras.Handle).Methods(http.MethodGet)

	// Предварительный расчёт стоимости
	api.HandleFunc("/pricing/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Создание администратора: токен либо первичная настройка
	api.Handle("/admin/create",
		middleware.OptionalAdminAuth(tokenIssuer, log)(http.HandlerFunc(adminCreate.Handle)),
	).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(tokenIssuer, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/conflicts", adminConflicts.Handle).Methods(http.MethodGet)

	// --- Напоминания ---
	admin.HandleFunc("/bookings/{bookingId}/reminders", createReminder.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reminders/generate", generateReminders.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reminders", listReminders.Handle).Methods(http.MethodGet)

	// Фоновая отправка напоминаний
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})

	if cfg.Reminders.Enabled {
		worker := reminderWorker.NewWorker(
			reminderSvc,
			time.Duration(cfg.Reminders.IntervalMinutes)*time.Minute,
			log,
		)
		go func() {
			defer close(workerDone)
			worker.Run(workerCtx)
		}()
		log.Info("Reminder worker started (interval=%dm, batch=%d)",
			cfg.Reminders.IntervalMinutes, cfg.Reminders.BatchSize)
	} else {
		close(workerDone)
	}

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

	stopWorker()
	<-workerDone
	log.Info("Reminder worker stopped")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)
	if cfg.Metrics.Enabled {
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
