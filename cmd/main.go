package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activityTypesHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/activity_types"
	cancelBookingHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/create_booking"
	createScheduleHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/create_schedule"
	deleteScheduleHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/delete_schedule"
	getAvailableSlotsHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/get_booking"
	getSchedulesHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/get_schedules"
	getUserBookingsHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/get_user_bookings"
	notificationsHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/notifications"
	watchSchedulesHandler "github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers/watch_schedules"
	"github.com/chayanin-p/TBN-AppointmentService/internal/api/middleware"
	"github.com/chayanin-p/TBN-AppointmentService/internal/config"
	activityRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/activity"
	bookingRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/booking"
	notificationRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/notification"
	scheduleRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/schedule"
	userRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/user"
	calendarClient "github.com/chayanin-p/TBN-AppointmentService/internal/integrations/googlecalendar"
	"github.com/chayanin-p/TBN-AppointmentService/internal/notifier"
	activitiesService "github.com/chayanin-p/TBN-AppointmentService/internal/service/activities"
	bookingsService "github.com/chayanin-p/TBN-AppointmentService/internal/service/bookings"
	notificationsService "github.com/chayanin-p/TBN-AppointmentService/internal/service/notifications"
	schedulesService "github.com/chayanin-p/TBN-AppointmentService/internal/service/schedules"
	schedulesModels "github.com/chayanin-p/TBN-AppointmentService/internal/service/schedules/models"
	createBookingUC "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/get_available_slots"
	saveScheduleUC "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/save_schedule"
	"github.com/chayanin-p/TBN-AppointmentService/internal/watch"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/dbmetrics"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/logger"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/metrics"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/simpletxmanager"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/txmanager"
)

// scheduleWatchInterval частота опроса расписания для SSE-подписчиков
const scheduleWatchInterval = 3 * time.Second

// noopMetrics заглушка метрик рассыльщика при выключенном Prometheus
type noopMetrics struct{}

func (noopMetrics) IncNotificationSent()   {}
func (noopMetrics) IncNotificationFailed() {}

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

	log.Info("Starting TBN-AppointmentService...")
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

	// Часовой пояс клиники: в нем интерпретируются даты записей и
	// время срабатывания будильников
	location, err := time.LoadLocation(cfg.Notifier.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Notifier.Timezone, err)
	}

	// Инициализируем клиент моста Google Calendar (Apps Script)
	calClient := calendarClient.NewClient(
		cfg.Calendar.URL,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar bridge client initialized (url=%s, timeout=%ds)",
		cfg.Calendar.URL, cfg.Calendar.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		activityRepository     *activityRepo.Repository
		scheduleRepository     *scheduleRepo.Repository
		bookingRepository      *bookingRepo.Repository
		notificationRepository *notificationRepo.Repository
		userRepository         *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		activityRepository = activityRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		activityRepository = activityRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, calClient, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, log)
	activitySvc := activitiesService.NewService(activityRepository, scheduleRepository, txMgr, log)
	notificationSvc := notificationsService.NewService(notificationRepository, userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		activityRepository,
		calClient,
		txMgr,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		log,
	)
	saveScheduleUseCase := saveScheduleUC.NewUseCase(
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем рассыльщик push-уведомлений
	var notifierMetrics notifier.Metrics = noopMetrics{}
	if cfg.Metrics.Enabled {
		notifierMetrics = metricsCollector
	}

	pushSender := notifier.NewWebPushSender(
		cfg.Notifier.VAPIDPublicKey,
		cfg.Notifier.VAPIDPrivateKey,
		cfg.Notifier.Subscriber,
	)
	pushNotifier := notifier.New(
		notificationRepository,
		userRepository,
		pushSender,
		notifierMetrics,
		location,
		log,
	)

	if cfg.Notifier.Enabled {
		if err := pushNotifier.Start(); err != nil {
			log.Fatal("Failed to start notifier: %v", err)
		}
		log.Info("Push notifier started (timezone=%s)", cfg.Notifier.Timezone)
	}

	// Хаб live-обновлений расписания для SSE-подписчиков
	scheduleHub := watch.NewHub(func(ctx context.Context) ([]byte, error) {
		schedules, err := scheduleSvc.List(ctx, &schedulesModels.ListSchedulesRequest{})
		if err != nil {
			return nil, err
		}
		return json.Marshal(schedules)
	}, scheduleWatchInterval, log)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go scheduleHub.Run(hubCtx)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSchedules := getSchedulesHandler.NewHandler(scheduleSvc, log)
	createSchedule := createScheduleHandler.NewHandler(saveScheduleUseCase, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	watchSchedules := watchSchedulesHandler.NewHandler(scheduleHub, log)
	activityTypes := activityTypesHandler.NewHandler(activitySvc, log)
	notifications := notificationsHandler.NewHandler(notificationSvc, pushNotifier, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Типы активностей
	api.HandleFunc("/activity-types", activityTypes.HandleList).Methods(http.MethodGet)

	// Расписание
	api.HandleFunc("/schedules", getSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules/watch", watchSchedules.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для администратора) ---
	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Типы активностей (для администратора) ---
	protected.HandleFunc("/activity-types", activityTypes.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/activity-types/{activityTypeId}", activityTypes.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/activity-types/{activityTypeId}", activityTypes.HandleDelete).Methods(http.MethodDelete)

	// --- Будильники и push-подписки ---
	protected.HandleFunc("/notifications", notifications.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", notifications.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/run", notifications.HandleRun).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/subscribe", notifications.HandleSubscribe).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/subscribe", notifications.HandleUnsubscribe).Methods(http.MethodDelete)
	protected.HandleFunc("/notifications/{notificationId}", notifications.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/{notificationId}", notifications.HandleDelete).Methods(http.MethodDelete)

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

	// Останавливаем фоновые компоненты
	hubCancel()
	if cfg.Notifier.Enabled {
		pushNotifier.Stop()
	}

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
