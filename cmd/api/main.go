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

	"github.com/kingrain94/bhms-api/docs"
	"github.com/kingrain94/bhms-api/internal/api"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/middleware"
	"github.com/kingrain94/bhms-api/internal/repository/composite"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/internal/service/cache"
	"github.com/kingrain94/bhms-api/internal/service/gateway"
	"github.com/kingrain94/bhms-api/internal/service/pubsub"
	"github.com/kingrain94/bhms-api/internal/service/queue"
	"github.com/kingrain94/bhms-api/internal/service/storage"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// @title           BHMS API
// @version         1.0
// @description     Boarding house management: rooms, tenants, contracts, invoices and payments.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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
	if err := middleware.RegisterValidators(cfg.PhoneRegion); err != nil {
		appLogger.Fatal("Failed to register validators", err)
	}

	dbConnections, err := config.NewDatabaseConnections(appLogger.GormLogLevel())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger.Named("pubsub"))

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	stripeConfig := config.DefaultStripeConfig()
	stripeConfig.Apply()
	if !stripeConfig.Enabled() {
		appLogger.Warn("STRIPE_SECRET_KEY is not set, online payments are disabled")
	}

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	tokens := utils.NewTokenManager(cfg.JWTSecretKey, cfg.TokenTTL())
	tokenStore := cache.NewRedisTokenStore(redisClient)

	// Initialize services
	notificationService := service.NewNotificationService(repo, redisPubSub, appLogger)
	subscriptionService := service.NewSubscriptionService(repo, cfg, appLogger)
	authService := service.NewAuthService(repo, tokens, tokenStore, sqsService, cfg, appLogger)
	services := api.Services{
		Auth:          authService,
		BoardingHouse: service.NewBoardingHouseService(repo),
		Room:          service.NewRoomService(repo, storage.NewS3ImageStorage(s3Client, s3Config), appLogger),
		Catalog:       service.NewCatalogService(repo),
		Tenant:        service.NewTenantService(repo, sqsService, sqsService, cfg, appLogger),
		Contract:      service.NewContractService(repo, sqsService, appLogger),
		Invoice:       service.NewInvoiceService(repo, notificationService, cfg, appLogger),
		Payment:       service.NewPaymentService(repo, gateway.NewStripeGateway(stripeConfig), notificationService, sqsService, appLogger),
		Notification:  notificationService,
		Report:        service.NewReportService(repo, notificationService, appLogger),
		Subscription:  subscriptionService,
		Admin:         service.NewAdminService(repo, notificationService, appLogger),
		Sweep:         service.NewSweepService(repo, cache.NewRedisLocker(redisClient), notificationService, sqsService, sqsService, cfg, appLogger.Named("sweep")),
		Dashboard:     service.NewDashboardService(repo, cache.NewRedisCache(redisClient), cfg, appLogger),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokens, authService, subscriptionService, appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		services,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg,
		appLogger,
		redisPubSub,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "BHMS API"
	docs.SwaggerInfo.Description = "Boarding house management API"
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
	appLogger.Infof("Server listening on :%d", cfg.ServerPort)

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
	server.StopWebSocketHub()

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
