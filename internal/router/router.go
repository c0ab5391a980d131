package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-moderation-api/internal/database"
	"community-moderation-api/internal/handler"
	"community-moderation-api/internal/metrics"
	"community-moderation-api/internal/middleware"
	"community-moderation-api/internal/repository"
	"community-moderation-api/internal/service"
)

// Config holds router dependencies
type Config struct {
	DB            *gorm.DB
	Logger        *zap.Logger
	JWTSecret     string
	BasePath      string
	Metrics       *metrics.Metrics
	Safety        service.SafetyChecker
	Revalidator   service.Revalidator
	FlagThreshold int
	BodyMaxLength int
}

// Setup creates and configures the gin router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	contentRepo := repository.NewContentRepository(cfg.DB)
	flagRepo := repository.NewFlagRepository(cfg.DB)
	queueRepo := repository.NewQueueRepository(cfg.DB)
	blacklistRepo := repository.NewBlacklistRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)
	auditRepo := repository.NewAdminActionRepository(cfg.DB)

	// Services
	contentService := service.NewContentService(contentRepo, userRepo, blacklistRepo, cfg.Safety, cfg.Revalidator, cfg.BodyMaxLength, cfg.Metrics, cfg.Logger)
	flagService := service.NewFlagService(flagRepo, contentRepo, cfg.Revalidator, cfg.FlagThreshold, cfg.Metrics, cfg.Logger)
	moderationService := service.NewModerationService(queueRepo, auditRepo, cfg.Revalidator, cfg.Metrics, cfg.Logger)
	blacklistService := service.NewBlacklistService(blacklistRepo, auditRepo, cfg.Metrics, cfg.Logger)
	banService := service.NewBanService(userRepo, auditRepo, cfg.Metrics, cfg.Logger)

	// Handlers
	contentHandler := handler.NewContentHandler(contentService)
	flagHandler := handler.NewFlagHandler(flagService)
	moderationHandler := handler.NewModerationHandler(moderationService)
	blacklistHandler := handler.NewBlacklistHandler(blacklistService)
	banHandler := handler.NewBanHandler(banService)

	// Health check and metrics are exposed at the root path and, when a
	// base path is configured, under it as well (ingress rewrites vary)
	registerOps := func(g gin.IRoutes) {
		g.GET("/health", healthCheck)
		g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	registerOps(r)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		registerOps(api)
	}

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes - creation accepts guests, 인증이 있으면 작성자로 기록
	public := api.Group("")
	{
		public.POST("/contents", middleware.OptionalAuth(cfg.JWTSecret), contentHandler.CreateContent)
		public.GET("/contents/:contentType/:contentId", contentHandler.GetContent)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.Auth(cfg.JWTSecret))
	{
		authed.POST("/flags", flagHandler.FlagContent)
		authed.GET("/queue/me", moderationHandler.ListMyQueue)
		authed.POST("/queue/:queueId/dispute", moderationHandler.SubmitDispute)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.Auth(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("/queue", moderationHandler.ListQueue)
		admin.POST("/queue/:queueId/restore", moderationHandler.RestoreContent)
		admin.DELETE("/contents/:contentType/:contentId", moderationHandler.PurgeContent)
		admin.GET("/actions", moderationHandler.ListAdminActions)

		admin.GET("/blacklist", blacklistHandler.ListKeywords)
		admin.POST("/blacklist", blacklistHandler.AddKeyword)
		admin.DELETE("/blacklist/:keywordId", blacklistHandler.RemoveKeyword)

		admin.GET("/users/:userId/ban", banHandler.GetBanState)
		admin.PUT("/users/:userId/ban", banHandler.ToggleBan)
	}

	return r
}

// healthCheck reports service liveness. The database field is
// informational - the pod stays alive while the connection retries.
func healthCheck(c *gin.Context) {
	dbStatus := "down"
	if database.IsConnected() {
		dbStatus = "up"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "moderation-service",
		"database": dbStatus,
	})
}
