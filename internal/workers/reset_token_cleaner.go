package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/store"
)

// ResetTokenCleaner periodically deletes password reset tokens past their
// expiry. Lookup already ignores expired rows, so the cleaner only bounds
// table growth.
type ResetTokenCleaner struct {
	repo     store.ResetTokenRepository
	metrics  *metrics.Metrics
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewResetTokenCleaner(repo store.ResetTokenRepository, metrics *metrics.Metrics, interval time.Duration, logger *logger.Logger) *ResetTokenCleaner {
	return &ResetTokenCleaner{
		repo:     repo,
		metrics:  metrics,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (c *ResetTokenCleaner) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("reset token cleaner started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("reset token cleaner stopped")
			return
		case <-ticker.C:
			c.purge(ctx)
		}
	}
}

func (c *ResetTokenCleaner) purge(ctx context.Context) {
	ctx = c.logger.WithContext(ctx)

	deleted, err := c.repo.DeleteExpired(ctx, c.now().UTC())
	if err != nil {
		c.logger.Err(err).Str("func", "*ResetTokenCleaner.purge").Msg("failed to delete expired reset tokens")
		return
	}

	if c.metrics != nil {
		c.metrics.AddResetTokensPurged(deleted)
	}
	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Msg("expired reset tokens deleted")
	}
}
