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

	adminLoginHandler "github.com/kmestetica/agenda-service/internal/api/handlers/admin_login"
	cancelAppointmentHandler "github.com/kmestetica/agenda-service/internal/api/handlers/cancel_appointment"
	clearAppointmentsHandler "github.com/kmestetica/agenda-service/internal/api/handlers/clear_appointments"
	createAppointmentHandler "github.com/kmestetica/agenda-service/internal/api/handlers/create_appointment"
	exportAppointmentsHandler "github.com/kmestetica/agenda-service/internal/api/handlers/export_appointments"
	getAvailableDaysHandler "github.com/kmestetica/agenda-service/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/kmestetica/agenda-service/internal/api/handlers/get_available_slots"
	getOccupancyHandler "github.com/kmestetica/agenda-service/internal/api/handlers/get_occupancy"
	listAppointmentsHandler "github.com/kmestetica/agenda-service/internal/api/handlers/list_appointments"
	sendInviteHandler "github.com/kmestetica/agenda-service/internal/api/handlers/send_invite"
	"github.com/kmestetica/agenda-service/internal/api/middleware"
	"github.com/kmestetica/agenda-service/internal/config"
	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/internal/infra/migrate"
	appointmentRepo "github.com/kmestetica/agenda-service/internal/infra/storage/appointment"
	"github.com/kmestetica/agenda-service/internal/integrations/whatsapp"
	"github.com/kmestetica/agenda-service/internal/notify"
	appointmentsService "github.com/kmestetica/agenda-service/internal/service/appointments"
	createAppointmentUC "github.com/kmestetica/agenda-service/internal/usecase/create_appointment"
	getAvailableDaysUC "github.com/kmestetica/agenda-service/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/kmestetica/agenda-service/internal/usecase/get_available_slots"
	"github.com/kmestetica/agenda-service/pkg/dbmetrics"
	"github.com/kmestetica/agenda-service/pkg/logger"
	"github.com/kmestetica/agenda-service/pkg/metrics"
	"github.com/kmestetica/agenda-service/pkg/simpletxmanager"
	"github.com/kmestetica/agenda-service/pkg/txmanager"
	"github.com/kmestetica/agenda-service/pkg/types"
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

	log.Info("Starting agenda-service...")
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
	migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsDir)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, version=%d", version)
	}

	// Строим недельное расписание из конфигурации
	schedule := domain.NewWeekSchedule(domain.ScheduleParams{
		OpenTime:               types.TimeString(cfg.Schedule.OpenTime),
		CloseTime:              types.TimeString(cfg.Schedule.CloseTime),
		SlotStepMinutes:        cfg.Schedule.SlotStepMinutes,
		ServiceDurationMinutes: cfg.Schedule.ServiceDurationMinutes,
		ClosedWeekday:          time.Weekday(cfg.Schedule.ClosedWeekday),
		ShortWeekday:           time.Weekday(cfg.Schedule.ShortWeekday),
		ShortDayCutoffHour:     cfg.Schedule.ShortDayCutoffHour,
	})
	log.Info("Schedule: %s-%s, step=%dmin, service=%dmin, closed=%s, short=%s until %d:00",
		cfg.Schedule.OpenTime, cfg.Schedule.CloseTime,
		cfg.Schedule.SlotStepMinutes, cfg.Schedule.ServiceDurationMinutes,
		time.Weekday(cfg.Schedule.ClosedWeekday), time.Weekday(cfg.Schedule.ShortWeekday),
		cfg.Schedule.ShortDayCutoffHour)

	// WhatsApp отправитель (если включен)
	var sender notify.MessageSender
	if cfg.Notify.Enabled {
		sender = whatsapp.NewClient(
			cfg.Notify.ZAPIInstanceID,
			cfg.Notify.ZAPIInstanceToken,
			cfg.Notify.ZAPIClientToken,
			cfg.Notify.ZAPITimeout(),
			log,
		)
		log.Info("WhatsApp sending enabled via Z-API (timeout=%s)", cfg.Notify.ZAPITimeout())
	} else {
		log.Info("WhatsApp sending disabled, confirmations via click-to-chat links only")
	}

	messageBuilder := notify.NewMessageBuilder()
	notifier := notify.NewNotifier(sender, cfg.Notify.ZAPITimeout(), log)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, schedule, log)

	// Инициализируем use cases
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(schedule, cfg.Schedule.DayWindowSize, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, schedule, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		schedule,
		txMgr,
		messageBuilder,
		notifier,
		log,
	)

	// Сессии администратора
	sessions := middleware.NewSessionManager(
		[]byte(cfg.Admin.SessionHashKey),
		[]byte(cfg.Admin.SessionBlockKey),
	)

	// Инициализируем handlers
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	clearAppointments := clearAppointmentsHandler.NewHandler(appointmentsSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(appointmentsSvc, log)
	sendInvite := sendInviteHandler.NewHandler(sender, cfg.Schedule.AppURL, log)
	adminLogin := adminLoginHandler.NewHandler(cfg.Admin.Password, sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (виджет записи, без аутентификации)
	// ============================================================

	// Окно дней для записи
	api.HandleFunc("/agenda/days", getAvailableDays.Handle).Methods(http.MethodGet)

	// Каталог слотов дня с доступностью
	api.HandleFunc("/agenda/days/{date}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Отмена записи клиентом (идемпотентная)
	api.HandleFunc("/appointments/{id}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют cookie администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(sessions))

	// Список записей (опционально по дню)
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Полный сброс агенды
	admin.HandleFunc("/appointments", clearAppointments.Handle).Methods(http.MethodDelete)

	// Выгрузка записей в CSV
	admin.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)

	// Статистика занятости
	admin.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// Приглашение клиента в календарь
	admin.HandleFunc("/invites", sendInvite.Handle).Methods(http.MethodPost)

	// Выход администратора
	admin.HandleFunc("/logout", adminLogin.HandleLogout).Methods(http.MethodPost)

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
