package workers

import (
	"context"
	"sync"

	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/service"
)

// Workers aggregates the server's background workers.
type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

// NewWorkers builds the standard worker set: the expired-service sweeper and
// the pre-key depletion monitor.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewExpirySweeper(services.Discovery, cfg.SweepInterval, log),
			NewPreKeyMonitor(services.Keys, cfg.PreKeyCheckInterval, cfg.PreKeyThreshold, log),
		},
	}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled; Wait blocks until all have returned.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
