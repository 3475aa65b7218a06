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
	"github.com/sirupsen/logrus"

	"github.com/citywatch/alert_dispatch_system/internal/analytics"
	"github.com/citywatch/alert_dispatch_system/internal/config"
	v1 "github.com/citywatch/alert_dispatch_system/internal/handler/http/v1"
	"github.com/citywatch/alert_dispatch_system/internal/notify"
	"github.com/citywatch/alert_dispatch_system/internal/repository"
	"github.com/citywatch/alert_dispatch_system/internal/service"
	"github.com/citywatch/alert_dispatch_system/internal/tenant"
	"github.com/citywatch/alert_dispatch_system/pkg/logger"
	"github.com/citywatch/alert_dispatch_system/pkg/postgres"
	redisclient "github.com/citywatch/alert_dispatch_system/pkg/redis"

	_ "github.com/citywatch/alert_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Alert Dispatch System API
// @version 1.0
// @description Alert-to-dispatch pipeline for a multi-tenant public-safety platform.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tenant partition provisioning is owned by an external system; the
	// baseline migration only covers the demo partition.
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	tenantDirectory, err := tenant.NewStaticDirectory(cfg.TenantPartitions)
	if err != nil {
		log.Fatalf("Failed to load tenant directory: %v", err)
	}

	// Repositories and stores
	incidentRepo := repository.NewIncidentRepository(dbpool)
	cameraRepo := repository.NewCameraRepository(dbpool)
	crowdRepo := repository.NewCrowdRepository(dbpool)
	responderRepo := repository.NewResponderRepository(dbpool)
	locationStore := repository.NewLocationStore(redisClient, cfg.LocationFixTTL)

	// Notification fan-out and surge cooldown share the Redis client
	publisher := notify.NewRedisPublisher(redisClient)
	cooldownStore := analytics.NewRedisCooldownStore(redisClient)

	crowdEngine := analytics.NewEngine(analytics.Config{
		DefaultAreaSqm:        cfg.DefaultAreaSqm,
		DensityCriticalPerSqm: cfg.DensityCriticalPerSqm,
		DensityDensePerSqm:    cfg.DensityDensePerSqm,
		FlowDelta:             cfg.FlowDelta,
		SurgeRatio:            cfg.SurgeRatio,
		SurgeDelta:            cfg.SurgeDelta,
	})

	// Services
	locator := service.NewResponderLocator(responderRepo, locationStore, log)
	alertService := service.NewAlertService(cameraRepo, incidentRepo, crowdRepo, locator, crowdEngine, cooldownStore, publisher, log, cfg)
	lifecycleService := service.NewLifecycleService(incidentRepo, responderRepo, locationStore, publisher, log, cfg)

	// Handlers
	handler := v1.NewHandler(alertService, lifecycleService, tenantDirectory, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

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
