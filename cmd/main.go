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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/cancel_appointment"
	cancelByCodeHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/cancel_appointment_by_code"
	createAppointmentHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/get_appointment"
	getByCodeHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/get_appointment_by_code"
	getAvailableSlotsHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/get_available_slots"
	getProfessionalAppointmentsHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/get_professional_appointments"
	getScheduleHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/get_schedule"
	updateStatusHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/m04kA/SMP-AppointmentService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMP-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMP-AppointmentService/internal/config"
	"github.com/m04kA/SMP-AppointmentService/internal/infra/cache/schedulecache"
	agendaRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/agenda"
	appointmentRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/customer"
	scheduleRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/schedule"
	profileServiceClient "github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
	appointmentsService "github.com/m04kA/SMP-AppointmentService/internal/service/appointments"
	occupancyService "github.com/m04kA/SMP-AppointmentService/internal/service/occupancy"
	scheduleService "github.com/m04kA/SMP-AppointmentService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/SMP-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMP-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMP-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-AppointmentService/pkg/logger"
	"github.com/m04kA/SMP-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMP-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMP-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMP-AppointmentService...")
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

	// Инициализируем клиента ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		agendaRepository      *agendaRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		customerRepository    *customerRepo.Repository
	)

	// Интерфейс transaction manager (используется сервисом расписаний)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		agendaRepository = agendaRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		agendaRepository = agendaRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Читающая сторона расписаний: с кешем Redis или напрямую из БД
	var scheduleReader getAvailableSlotsUC.ScheduleRepository = scheduleRepository
	var cacheInvalidator scheduleService.CacheInvalidator
	var redisClient *redis.Client

	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		scheduleCache := schedulecache.New(
			scheduleRepository,
			redisClient,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log,
		)
		scheduleReader = scheduleCache
		cacheInvalidator = scheduleCache
		log.Info("Schedule cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем сервисы
	occupancySvc := occupancyService.NewService(appointmentRepository, agendaRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, cacheInvalidator, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleReader,
		occupancySvc,
		profileClient,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleReader,
		occupancySvc,
		profileClient,
		customerRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getByCode := getByCodeHandler.NewHandler(appointmentsSvc, log)
	cancelByCode := cancelByCodeHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты профессионала на дату
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом по публичной ссылке
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Просмотр и отмена записи по публичному коду
	api.HandleFunc("/public/appointments/{publicCode}", getByCode.Handle).Methods(http.MethodGet)
	api.HandleFunc("/public/appointments/{publicCode}/cancel", cancelByCode.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Записи ---
	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи профессионалом
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Список записей профессионала
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	protected.HandleFunc("/professionals/{professionalId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
