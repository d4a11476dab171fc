package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled background workers. A negative cleanup
// interval leaves the reset-token cleaner out.
func NewWorkers(storages *store.Storages, metrics *metrics.Metrics, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ResetTokenCleanupInterval > 0 {
		w.workers = append(w.workers, NewResetTokenCleaner(storages.ResetTokenRepository, metrics, cfg.ResetTokenCleanupInterval, logger))
	} else {
		logger.Info().Msg("reset token cleanup is disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and returns when all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
