package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/service/mail"
	"github.com/kingrain94/bhms-api/internal/service/queue"
	"github.com/kingrain94/bhms-api/internal/worker"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).Named("mail_worker")

	smtpConfig := config.DefaultSMTPConfig()
	sender := mail.NewSMTPSender(smtpConfig.GetDialer(), smtpConfig.From)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Infof("Delivering mail through %s:%d", smtpConfig.Host, smtpConfig.Port)

	mailWorker := worker.NewSQSWorker(
		"mail",
		sqsService,
		worker.NewMailHandler(sender),
		sqsService.MailQueueURL(),
		appLogger,
		2,
		5*time.Second,
	)

	mailWorker.Start()
	appLogger.Info("Mail worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	mailWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
