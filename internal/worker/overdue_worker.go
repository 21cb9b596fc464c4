package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// Sweeper runs one billing sweep. *service.SweepService satisfies it.
type Sweeper interface {
	Run(ctx context.Context) (*dto.SweepResponse, error)
}

// OverdueWorker runs the billing sweep on a fixed interval. Replicas
// coordinate through the sweep's distributed lock.
type OverdueWorker struct {
	sweeper      Sweeper
	logger       *logger.Logger
	interval     time.Duration
	timeout      time.Duration
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewOverdueWorker(sweeper Sweeper, logger *logger.Logger, interval time.Duration) *OverdueWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OverdueWorker{
		sweeper:      sweeper,
		logger:       logger,
		interval:     interval,
		timeout:      10 * time.Minute,
		shutdownChan: make(chan struct{}),
	}
}

func (w *OverdueWorker) Start() {
	w.logger.Infof("Starting overdue worker, sweeping every %s", w.interval)

	w.waitGroup.Add(1)
	go w.run()
}

func (w *OverdueWorker) Stop() {
	w.logger.Info("Stopping overdue worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Overdue worker stopped")
}

func (w *OverdueWorker) run() {
	defer w.waitGroup.Done()

	// Sweep once on startup so a restart does not delay overdue flags by an interval.
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *OverdueWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	result, err := w.sweeper.Run(ctx)
	switch {
	case errors.Is(err, service.ErrSweepInProgress):
		w.logger.Info("Sweep skipped, another replica holds the lock")
	case err != nil:
		w.logger.Error("Sweep failed", err)
	default:
		w.logger.Infof("Sweep done: %d overdue, %d reminded, %d contracts expired, %d subscriptions expired",
			result.Overdue, result.Reminded, result.ExpiredContracts, result.ExpiredSubscription)
	}
}
