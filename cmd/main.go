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

	getBoxesHandler "github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/get_boxes"
	getCourseBoxHandler "github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/get_course_box"
	getGroupBoxesHandler "github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/get_group_boxes"
	getSeatSummaryHandler "github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/get_seat_summary"
	updateCourseScheduleHandler "github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/update_course_schedule"
	updateCourseStateHandler "github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/update_course_state"
	"github.com/m04kA/SMC-CourseBoxService/internal/api/middleware"
	"github.com/m04kA/SMC-CourseBoxService/internal/config"
	courseRepo "github.com/m04kA/SMC-CourseBoxService/internal/infra/storage/course"
	ledgerRepo "github.com/m04kA/SMC-CourseBoxService/internal/infra/storage/ledger"
	commerceClient "github.com/m04kA/SMC-CourseBoxService/internal/integrations/commerce"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/availability"
	coursesService "github.com/m04kA/SMC-CourseBoxService/internal/service/courses"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/offering"
	resolveBoxUC "github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_box"
	resolveGroupUC "github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
	seatSummaryUC "github.com/m04kA/SMC-CourseBoxService/internal/usecase/seat_summary"
	"github.com/m04kA/SMC-CourseBoxService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourseBoxService/pkg/logger"
	"github.com/m04kA/SMC-CourseBoxService/pkg/metrics"
	"github.com/m04kA/SMC-CourseBoxService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-CourseBoxService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (если включены), nil-коллектор безопасен
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Соединение для репозиториев: с обёрткой метрик или без
	var conn dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		conn = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	courseRepository := courseRepo.NewRepository(conn)
	ledgerRepository := ledgerRepo.NewRepository(conn)
	txMgr := txmanager.NewTransactionManager(conn)

	// Каталог товаров
	catalog := commerceClient.NewClient(
		cfg.Commerce.URL,
		time.Duration(cfg.Commerce.Timeout)*time.Second,
		log,
	)
	log.Info("Commerce client initialized (url=%s, timeout=%ds)", cfg.Commerce.URL, cfg.Commerce.Timeout)

	// Сервисы
	calculator := availability.NewCalculator(
		ledgerRepository,
		cfg.Availability.LedgerTimeout(),
		metricsCollector,
		log,
	)
	builder := offering.NewBuilder(
		catalog,
		calculator,
		offering.Options{
			DefaultCapacity: cfg.Availability.DefaultCapacity,
			LowSeatsLimit:   cfg.Availability.LowSeatsThreshold,
		},
		log,
	)
	courseSvc := coursesService.NewService(courseRepository, txMgr, log)

	// Use cases
	resolveBoxUseCase := resolveBoxUC.NewUseCase(courseRepository, builder, metricsCollector, log)
	resolveGroupUseCase := resolveGroupUC.NewUseCase(
		courseRepository,
		resolveBoxUseCase,
		cfg.Availability.GroupConcurrency,
		log,
	)
	seatSummaryUseCase := seatSummaryUC.NewUseCase(courseRepository, builder, log)

	// Handlers
	getCourseBox := getCourseBoxHandler.NewHandler(resolveBoxUseCase, log)
	getBoxes := getBoxesHandler.NewHandler(resolveGroupUseCase, log)
	getGroupBoxes := getGroupBoxesHandler.NewHandler(resolveGroupUseCase, log)
	getSeatSummary := getSeatSummaryHandler.NewHandler(seatSummaryUseCase, log)
	updateCourseState := updateCourseStateHandler.NewHandler(courseSvc, log)
	updateCourseSchedule := updateCourseScheduleHandler.NewHandler(courseSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина)
	// ============================================================

	api.HandleFunc("/courses/{courseId}/box", getCourseBox.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}/seats", getSeatSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupId}/boxes", getGroupBoxes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/boxes", getBoxes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	protected.HandleFunc("/courses/{courseId}/state", updateCourseState.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/courses/{courseId}/schedule", updateCourseSchedule.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
