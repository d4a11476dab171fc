package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/pinvent/internal/logger"
)

// ErrRateLimitExceeded is returned by [RateLimiter.Allow] when the key has
// spent its budget or is locked out.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// RateLimit defines the policy for a rate-limited action.
type RateLimit struct {
	MaxAttempts int           // attempts allowed per window
	Window      time.Duration // counting window, starts at the first attempt
	LockoutTTL  time.Duration // how long to block after MaxAttempts is hit
}

// Enabled reports whether the policy limits anything at all.
func (p RateLimit) Enabled() bool {
	return p.MaxAttempts > 0 && p.Window > 0
}

const (
	rateLimitKeyPrefix   = "ratelimit:"
	rateLimitLockPrefix  = "ratelimit:lock:"
	rateLimitLockedValue = "1"
)

// redisRateLimiter is a fixed-window counter stored in Redis. Each attempt
// INCRs the counter and sets its expiry on first use; once the counter passes
// the budget a lock key is written for LockoutTTL.
type redisRateLimiter struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewRedisRateLimiter connects to Redis and returns a ready-to-use limiter.
// It pings Redis to verify connectivity before returning.
func NewRedisRateLimiter(ctx context.Context, redisURL string, log *logger.Logger) (RateLimiter, func() error, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisRateLimiter").Msg("connected to redis successfully")

	return newRedisRateLimiter(rdb, log), rdb.Close, nil
}

func newRedisRateLimiter(rdb *redis.Client, log *logger.Logger) *redisRateLimiter {
	return &redisRateLimiter{rdb: rdb, logger: log}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string, policy RateLimit) error {
	if !policy.Enabled() {
		return nil
	}
	log := logger.FromContext(ctx)

	locked, err := l.rdb.Exists(ctx, rateLimitLockPrefix+key).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisRateLimiter.Allow").Msg("error checking lockout")
		return fmt.Errorf("checking lockout: %w", err)
	}
	if locked > 0 {
		return ErrRateLimitExceeded
	}

	// Create pipeline to make sure atomic
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, rateLimitKeyPrefix+key)
	pipe.ExpireNX(ctx, rateLimitKeyPrefix+key, policy.Window)
	if _, err = pipe.Exec(ctx); err != nil {
		log.Err(err).Str("func", "*redisRateLimiter.Allow").Msg("error counting attempt")
		return fmt.Errorf("counting attempt: %w", err)
	}

	if incr.Val() <= int64(policy.MaxAttempts) {
		return nil
	}

	if policy.LockoutTTL > 0 {
		pipe = l.rdb.TxPipeline()
		pipe.Set(ctx, rateLimitLockPrefix+key, rateLimitLockedValue, policy.LockoutTTL)
		pipe.Del(ctx, rateLimitKeyPrefix+key)
		if _, err = pipe.Exec(ctx); err != nil {
			log.Err(err).Str("func", "*redisRateLimiter.Allow").Msg("error writing lockout")
			return fmt.Errorf("writing lockout: %w", err)
		}
	}
	log.Info().Str("func", "*redisRateLimiter.Allow").Str("key", logKey(key)).Msg("rate limit exceeded")

	return ErrRateLimitExceeded
}

// logKey keeps the "<action>:<kind>:" scope of key and replaces the subject,
// usually an email address, with a short digest. Keys without a scope are
// digested whole.
func logKey(key string) string {
	scope, subject := "", key
	if parts := strings.SplitN(key, ":", 3); len(parts) == 3 {
		scope, subject = parts[0]+":"+parts[1]+":", parts[2]
	}
	sum := sha256.Sum256([]byte(subject))

	return scope + hex.EncodeToString(sum[:6])
}

// nopRateLimiter allows everything. Used when no Redis URL is configured.
type nopRateLimiter struct{}

// NewNopRateLimiter returns a [RateLimiter] that never rejects.
func NewNopRateLimiter() RateLimiter {
	return nopRateLimiter{}
}

func (nopRateLimiter) Allow(context.Context, string, RateLimit) error {
	return nil
}
