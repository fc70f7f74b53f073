package routes

import (
	"context"
	"log"

	"team-schedule-backend/internal/api/handlers"
	"team-schedule-backend/internal/api/middleware"
	"team-schedule-backend/internal/auth"
	"team-schedule-backend/internal/cache"
	"team-schedule-backend/internal/config"
	"team-schedule-backend/internal/notify"
	"team-schedule-backend/internal/repository"
	"team-schedule-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	scheduleRepo := repository.NewScheduleRepository(db)

	// Document mirror is optional; without Redis the single instance
	// still broadcasts its own writes.
	var mirror cache.DocumentCacheInterface
	broadcaster := notify.NewBroadcaster()
	if cfg.RedisURL != "" {
		docCache, err := cache.New(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis mirror unavailable: %v", err)
		} else {
			mirror = docCache
			docCache.SubscribeUpdates(context.Background(), broadcaster.Broadcast)
		}
	}

	// Initialize services
	scheduleService := service.NewScheduleService(scheduleRepo, mirror, broadcaster, validator, cfg.ScheduleDocKey)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Fatalf("Failed to load auth config: %v", err)
	}
	if authConfig.JWTSecret == "" {
		authConfig.JWTSecret = cfg.JWTSecret
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	eventsHandler := handlers.NewEventsHandler(broadcaster)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/session", authHandler.Session)

		v1.GET("/schedule", authMiddleware.RequireViewer(), scheduleHandler.GetSchedule)
		v1.GET("/schedule/events", authMiddleware.RequireViewer(), eventsHandler.Stream)

		v1.POST("/schedule", authMiddleware.RequireAdmin(), scheduleHandler.SaveSchedule)
		v1.POST("/schedule/agents", authMiddleware.RequireAdmin(), scheduleHandler.UpdateAgents)
		v1.POST("/schedule/shifts", authMiddleware.RequireAdmin(), scheduleHandler.BatchShifts)
	}

	return router
}
