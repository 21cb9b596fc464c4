package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kingrain94/bhms-api/internal/service/queue"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// MessageConsumer is the queue side of an SQSWorker. *queue.SQSService satisfies it.
type MessageConsumer interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// MessageHandler processes one queue message. A returned error leaves the
// message on the queue for another attempt.
type MessageHandler interface {
	Handle(ctx context.Context, msg queue.Message) error
}

type SQSWorker struct {
	name         string
	consumer     MessageConsumer
	handler      MessageHandler
	queueURL     string
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	ctx          context.Context
	cancel       context.CancelFunc
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewSQSWorker(
	name string,
	consumer MessageConsumer,
	handler MessageHandler,
	queueURL string,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *SQSWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &SQSWorker{
		name:         name,
		consumer:     consumer,
		handler:      handler,
		queueURL:     queueURL,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		ctx:          ctx,
		cancel:       cancel,
		shutdownChan: make(chan struct{}),
	}
}

func (w *SQSWorker) Start() {
	w.logger.Infof("Starting %s workers...", w.name)

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

// Stop interrupts long polls in flight and waits for the workers to exit.
func (w *SQSWorker) Stop() {
	w.logger.Infof("Stopping %s workers...", w.name)
	close(w.shutdownChan)
	w.cancel()
	w.waitGroup.Wait()
	w.logger.Infof("All %s workers stopped", w.name)
}

func (w *SQSWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("%s worker %d started", w.name, workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("%s worker %d shutting down", w.name, workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(w.ctx); err != nil && w.ctx.Err() == nil {
				w.logger.Errorf("%s worker %d failed to process messages: %v", w.name, workerID, err)
			}
		}
	}
}

func (w *SQSWorker) processMessages(ctx context.Context) error {
	messages, err := w.consumer.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.DecodeErr != nil {
			w.logger.Warnf("Dropping undecodable message: %v", msg.DecodeErr)
		} else if err := w.handler.Handle(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process %s message: %v", msg.Message.Type, err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.consumer.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}
