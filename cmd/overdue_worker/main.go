package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/repository/composite"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/internal/service/cache"
	"github.com/kingrain94/bhms-api/internal/service/pubsub"
	"github.com/kingrain94/bhms-api/internal/service/queue"
	"github.com/kingrain94/bhms-api/internal/worker"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).Named("overdue_worker")

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections(appLogger.GormLogLevel())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	redisClient, err := config.DefaultRedisConfig().GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)
	notifications := service.NewNotificationService(repo, pubsub.NewRedisPubSub(redisClient, appLogger.Named("pubsub")), appLogger)
	sweep := service.NewSweepService(repo, cache.NewRedisLocker(redisClient), notifications, sqsService, sqsService, cfg, appLogger)

	overdueWorker := worker.NewOverdueWorker(sweep, appLogger, cfg.OverdueSweepInterval)
	overdueWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	overdueWorker.Stop()
	appLogger.Sync()
}
