package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/khangtran94/parking-alpr-api/docs"
	"github.com/khangtran94/parking-alpr-api/internal/api"
	"github.com/khangtran94/parking-alpr-api/internal/config"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/middleware"
	"github.com/khangtran94/parking-alpr-api/internal/repository/postgres"
	"github.com/khangtran94/parking-alpr-api/internal/service"
	"github.com/khangtran94/parking-alpr-api/internal/service/pubsub"
	"github.com/khangtran94/parking-alpr-api/internal/service/queue"
	"github.com/khangtran94/parking-alpr-api/internal/service/recognizer"
	"github.com/khangtran94/parking-alpr-api/internal/service/snapshot"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
)

// @title           Parking ALPR Swagger API
// @version         1.0
// @description     License plate verification and vehicle access control for residential parking.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	if err := dbConnections.Writer.AutoMigrate(
		&domain.Building{},
		&domain.Vehicle{},
		&domain.AccessLog{},
	); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	gateEvents := queue.NewSQSPublisher(sqsClient, sqsConfig.GateEventsQueueURL, appLogger)

	repo := postgres.NewPostgresRepository(dbConnections)

	// Initialize services
	buildingService := service.NewBuildingService(repo)
	vehicleService := service.NewVehicleService(repo)
	accessLogService := service.NewAccessLogService(repo, gateEvents, appLogger)

	alprClient := recognizer.NewClient(cfg.ALPRServiceURL, cfg.ALPRTimeout)
	verificationService := service.NewVerificationService(repo, accessLogService, alprClient, appLogger)

	// Snapshot archival is optional; skipped entirely without a bucket
	s3Config := config.DefaultS3Config()
	if s3Config.Enabled() {
		s3Client, err := s3Config.GetClient(context.Background())
		if err != nil {
			appLogger.Fatal("Failed to connect to S3", err)
		}
		verificationService.SetSnapshotStore(snapshot.NewStore(s3Client, s3Config.BucketName))
		appLogger.Infof("Snapshot archival enabled, bucket: %s", s3Config.BucketName)
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg, buildingService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		buildingService,
		vehicleService,
		verificationService,
		accessLogService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		redisPubSub,
		cfg.GlobalRateLimit,
	)

	// Wire up WebSocket broadcaster
	accessLogService.SetBroadcaster(server.GetWebSocketHandler())

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Parking ALPR API"
	docs.SwaggerInfo.Description = "License plate verification and vehicle access control"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	adminGroup := router.Group("/admin")
	server.SetupAdminRoutes(adminGroup)

	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
