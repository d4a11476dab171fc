package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
)

// Storages aggregates every persistence dependency of the service layer.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
	ProductRepository    ProductRepository
	RateLimiter          RateLimiter

	closers []func() error
}

// NewStorages opens the SQL database, applies migrations, and connects the
// optional Redis rate limiter. An empty Redis URL selects a no-op limiter.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("func", "NewStorages").Msg("database migrated")

	storages := &Storages{
		UserRepository:       NewUserRepository(db, log),
		ResetTokenRepository: NewResetTokenRepository(db, log),
		ProductRepository:    NewProductRepository(db, log),
		RateLimiter:          NewNopRateLimiter(),
		closers:              []func() error{db.Close},
	}

	if cfg.Redis.URL != "" {
		limiter, closeRedis, err := NewRedisRateLimiter(ctx, cfg.Redis.URL, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("error creating rate limiter: %w", err)
		}
		storages.RateLimiter = limiter
		storages.closers = append(storages.closers, closeRedis)
	} else {
		log.Warn().Str("func", "NewStorages").Msg("redis url is empty, rate limiting disabled")
	}

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
