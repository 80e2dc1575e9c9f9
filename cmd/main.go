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
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getBarbersHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_barbers"
	getDashboardHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_dashboard"
	getMeHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_me"
	getServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_services"
	healthHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/health"
	signInHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/sign_out"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/internal/dashboard"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/changefeed"
	adminUserRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/adminuser"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	sessionStore "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/notifications"
	appointmentsService "github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	authService "github.com/m04kA/SMC-BarberBooking/internal/service/auth"
	catalogService "github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
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

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Booking policy: initial_status=%s, timezone=%s", cfg.Booking.Status(), cfg.Booking.Location())

	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

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

	// Обертка над БД: с метриками запросов и пула или без них
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Подключаемся к Redis (сессии и rate limit)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(appCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	barberRepository := barberRepo.NewRepository(wrappedDB)
	adminUserRepository := adminUserRepo.NewRepository(wrappedDB)
	sessions := sessionStore.NewStore(rdb)

	// Инициализируем каналы уведомлений о новых записях
	notifyTimeout := time.Duration(cfg.Notifications.Timeout) * time.Second
	senders := []notifications.Sender{notifications.NewLogSender(log)}

	if cfg.Notifications.WebhookURL != "" {
		senders = append(senders, notifications.NewWebhookClient(
			cfg.Notifications.WebhookURL,
			cfg.Notifications.WebhookSecret,
			notifyTimeout,
		))
		log.Info("Webhook notifications enabled (url=%s)", cfg.Notifications.WebhookURL)
	}

	var kafkaPublisher *notifications.KafkaPublisher
	if cfg.Kafka.Enabled() {
		writer := notifications.NewKafkaWriter(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
		)
		kafkaPublisher = notifications.NewKafkaPublisher(writer, cfg.Kafka.Topic)
		senders = append(senders, kafkaPublisher)
		log.Info("Kafka notifications enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	notifier := notifications.NewNotifier(senders, notifyTimeout, metricsCollector, log)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(serviceRepository, barberRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	authSvc := authService.NewService(
		adminUserRepository,
		sessions,
		time.Duration(cfg.Auth.SessionTTL)*time.Second,
		cfg.Auth.BcryptCost,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		barberRepository,
		txMgr,
		metricsCollector,
		createBookingUC.Policy{
			InitialStatus: cfg.Booking.Status(),
			Location:      cfg.Booking.Location(),
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		barberRepository,
		cfg.Booking.Location(),
		log,
	)

	// Панель администратора: поток изменений записей и живая коллекция
	feed := changefeed.NewFeed(cfg.Database.DSN(), changefeed.Config{
		Channel:      cfg.ChangeFeed.Channel,
		BatchWindow:  time.Duration(cfg.ChangeFeed.BatchWindowMs) * time.Millisecond,
		MinReconnect: time.Duration(cfg.ChangeFeed.MinReconnectMs) * time.Millisecond,
		MaxReconnect: time.Duration(cfg.ChangeFeed.MaxReconnectMs) * time.Millisecond,
	}, appointmentRepository, metricsCollector, log)

	dashboardSession := dashboard.NewSession(feed, notifier, cfg.Booking.Location(), log)
	go startDashboard(appCtx, dashboardSession, log)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getBarbers := getBarbersHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createBookingUseCase, log)
	signIn := signInHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler()
	getDashboard := getDashboardHandler.NewHandler(dashboardSession, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	health := healthHandler.NewHandler(
		map[string]healthHandler.Pinger{
			"postgres": db,
			"redis":    healthHandler.PingerFunc(sessions.Ping),
		},
		map[string]healthHandler.ReadinessProbe{
			"dashboard": dashboardSession,
		},
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health checks
	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (мастер записи клиента)
	// ============================================================

	// Каталог услуг и барберов
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers", getBarbers.Handle).Methods(http.MethodGet)

	// Свободные слоты барбера на дату
	api.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Вход администратора (с ограничением частоты по IP)
	trustedProxies, err := middleware.ParseTrustedProxies(cfg.Auth.TrustedProxies)
	if err != nil {
		log.Fatal("Failed to parse trusted proxies: %v", err)
	}
	signInLimit := middleware.RateLimit(
		middleware.NewRedisCounter(rdb),
		"sign-in",
		cfg.Auth.RateLimitRequests,
		time.Duration(cfg.Auth.RateLimitWindow)*time.Second,
		trustedProxies,
		log,
	)
	api.Handle("/auth/sign-in", signInLimit(http.HandlerFunc(signIn.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен сессии администратора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Сессия ---
	protected.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Панель администратора ---
	protected.HandleFunc("/admin/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/appointments/{appointmentId}/confirm", updateAppointmentStatus.Confirm).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/appointments/{appointmentId}/reject", updateAppointmentStatus.Reject).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем панель и фоновые задачи
	cancelApp()
	dashboardSession.Stop()

	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error("Failed to close kafka writer: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}

// startDashboard запускает сессию панели, повторяя попытки, пока поток изменений недоступен
func startDashboard(ctx context.Context, session *dashboard.Session, log *logger.Logger) {
	backoff := time.Second
	for {
		err := session.Start(ctx)
		if err == nil {
			return
		}
		log.Error("Dashboard: failed to start, retry in %s: %v", backoff, err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}
