package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vatsav/emergency_dispatch_system/internal/broadcast"
	"github.com/vatsav/emergency_dispatch_system/internal/classifier"
	"github.com/vatsav/emergency_dispatch_system/internal/config"
	v1 "github.com/vatsav/emergency_dispatch_system/internal/handler/http/v1"
	"github.com/vatsav/emergency_dispatch_system/internal/repository"
	"github.com/vatsav/emergency_dispatch_system/internal/service"
	"github.com/vatsav/emergency_dispatch_system/pkg/logger"
	"github.com/vatsav/emergency_dispatch_system/pkg/postgres"
	redisclient "github.com/vatsav/emergency_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/vatsav/emergency_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Dispatch System API
// @version 1.0
// @description Backend for the emergency dispatch dashboard: emergency CRUD with live fan-out and the call triage pipeline.
// @host localhost:8080
// @BasePath /api
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация клиента Gemini
	geminiClient, err := classifier.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()
	triageClassifier := classifier.NewGeminiClassifier(geminiClient, cfg, log)

	// Инициализация хаба live-клиентов и воркера рассылки
	hub := broadcast.NewHub(log)
	broadcastWorker := broadcast.NewWorker(redisClient, hub, log, cfg)
	broadcastWorker.Start(ctx)

	// Инициализация издателя событий изменений
	eventPublisher := broadcast.NewRedisPublisher(redisClient, cfg.BroadcastChannel)

	// Инициализация репозиториев
	emergencyRepo := repository.NewEmergencyRepository(dbpool, redisClient, cfg.EmergencyCacheTTL)
	callLogRepo := repository.NewCallLogRepository(dbpool)

	// Инициализация сервисов
	emergencyService := service.NewEmergencyService(emergencyRepo, eventPublisher, log)
	callLogService := service.NewCallLogService(callLogRepo, triageClassifier, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(emergencyService, callLogService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(corsMiddleware())
	handler.RegisterRoutes(router)

	// Маршруты для метрик и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// corsMiddleware разрешает кросс-доменные запросы дашборда (demo-режим)
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
