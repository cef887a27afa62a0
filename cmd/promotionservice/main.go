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

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createPromotionHandler "github.com/m04kA/SMC-ReservationService/internal/promotions/api/handlers/create_promotion"
	deletePromotionHandler "github.com/m04kA/SMC-ReservationService/internal/promotions/api/handlers/delete_promotion"
	getPromotionHandler "github.com/m04kA/SMC-ReservationService/internal/promotions/api/handlers/get_promotion"
	getPromotionByCodeHandler "github.com/m04kA/SMC-ReservationService/internal/promotions/api/handlers/get_promotion_by_code"
	getPromotionsHandler "github.com/m04kA/SMC-ReservationService/internal/promotions/api/handlers/get_promotions"
	updatePromotionHandler "github.com/m04kA/SMC-ReservationService/internal/promotions/api/handlers/update_promotion"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/config"
	promotionRepo "github.com/m04kA/SMC-ReservationService/internal/promotions/infra/storage/promotion"
	promotionsService "github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
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

	log.Info("Starting PromotionService...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var repository *promotionRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		repository = promotionRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		repository = promotionRepo.NewRepository(db)
	}

	// Инициализируем сервис и handlers
	promotionSvc := promotionsService.NewService(repository, log)

	createPromotion := createPromotionHandler.NewHandler(promotionSvc, log)
	getPromotion := getPromotionHandler.NewHandler(promotionSvc, log)
	getPromotionByCode := getPromotionByCodeHandler.NewHandler(promotionSvc, log)
	getPromotions := getPromotionsHandler.NewHandler(promotionSvc, log)
	updatePromotion := updatePromotionHandler.NewHandler(promotionSvc, log)
	deletePromotion := deletePromotionHandler.NewHandler(promotionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/promotions", getPromotions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions", createPromotion.Handle).Methods(http.MethodPost)
	api.HandleFunc("/promotions/code/{code}", getPromotionByCode.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions/{promotionId}", getPromotion.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions/{promotionId}", updatePromotion.Handle).Methods(http.MethodPut)
	api.HandleFunc("/promotions/{promotionId}", deletePromotion.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
