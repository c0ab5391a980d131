// @title           Moderation Service API
// @version         1.0
// @description     커뮤니티 콘텐츠 검수 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    https://community.modhub.io/support
// @contact.email  support@modhub.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/moderation

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "community-moderation-api/docs" // Swagger docs import

	"community-moderation-api/internal/cache"
	"community-moderation-api/internal/client"
	"community-moderation-api/internal/config"
	"community-moderation-api/internal/database"
	"community-moderation-api/internal/job"
	"community-moderation-api/internal/metrics"
	"community-moderation-api/internal/repository"
	"community-moderation-api/internal/router"
	"community-moderation-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Moderation Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Int("flag_threshold", cfg.Moderation.FlagThreshold),
	)

	// Initialize database (실패해도 앱은 시작됨 - pod 생존 보장)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("⚠️  Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		// 백그라운드에서 DB 연결 재시도 (5초 간격)
		database.NewAsync(dbConfig, 5*time.Second, logger)
	} else {
		database.SetDB(db)
		defer database.Close(db)
		logger.Info("Database connected successfully")

		// Run auto migration (DB 연결된 경우만)
		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		dbStatsDone := database.StartDBStatsCollector(db, m)
		defer close(dbStatsDone)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	// Initialize Redis for page revalidation events (optional)
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, page revalidation disabled", zap.Error(err))
	}
	revalidator := cache.NewRedisRevalidator(database.GetRedis(), logger)

	// Initialize AI safety checker. Without an API key guest content is
	// accepted without the external check (local development).
	var safety service.SafetyChecker
	if cfg.Safety.APIKey != "" {
		safety = client.NewSafetyClient(cfg.Safety.APIKey, cfg.Safety.Model, cfg.Safety.Timeout, logger, m)
		logger.Info("Safety client initialized", zap.String("model", cfg.Safety.Model))
	} else {
		safety = client.NewNoOpSafetyClient()
		logger.Warn("Safety API key not configured, guest content checks disabled")
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:            db,
		Logger:        logger,
		JWTSecret:     cfg.JWT.Secret,
		BasePath:      cfg.Server.BasePath,
		Metrics:       m,
		Safety:        safety,
		Revalidator:   revalidator,
		FlagThreshold: cfg.Moderation.FlagThreshold,
		BodyMaxLength: cfg.Moderation.BodyMaxLength,
	})

	// Schedule the flag-count reconciliation job
	scheduler := cron.New()
	if db != nil {
		reconcileJob := job.NewReconcileJob(
			repository.NewFlagRepository(db),
			repository.NewContentRepository(db),
			logger,
		)
		if _, err := scheduler.AddJob(cfg.Moderation.ReconcileSchedule, reconcileJob); err != nil {
			logger.Error("Failed to schedule reconciliation job", zap.Error(err))
		} else {
			scheduler.Start()
			logger.Info("Reconciliation job scheduled",
				zap.String("schedule", cfg.Moderation.ReconcileSchedule))
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Moderation Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
