package cache

import (
	"context"
	"errors"
	"time"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerConfig tunes the circuit breaker guarding a remote store
type BreakerConfig struct {
	Name                string
	MaxRequests         uint32        // trial requests allowed while half-open
	Interval            time.Duration // closed-state count reset, 0 never resets
	Timeout             time.Duration // open duration before probing
	ConsecutiveFailures uint32        // failures that trip the breaker
}

// DefaultBreakerConfig returns the breaker settings used for Redis
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:                "idempotency-redis",
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// BreakerIdempotencyStore guards a primary store with a circuit breaker.
// While the primary fails or the breaker is open, calls are answered by the
// fallback store so requests keep flowing with per-replica protection.
type BreakerIdempotencyStore struct {
	primary  shared.IdempotencyStore
	fallback shared.IdempotencyStore
	cb       *gobreaker.CircuitBreaker
	logger   *zap.Logger
}

// NewBreakerIdempotencyStore wraps primary. fallback may be nil, in which case
// primary failures are returned to the caller.
func NewBreakerIdempotencyStore(primary, fallback shared.IdempotencyStore, cfg BreakerConfig, logger *zap.Logger) *BreakerIdempotencyStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 1
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &BreakerIdempotencyStore{
		primary:  primary,
		fallback: fallback,
		cb:       gobreaker.NewCircuitBreaker(settings),
		logger:   logger,
	}
}

// MarkProcessed implements shared.IdempotencyStore
func (s *BreakerIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.cb.Execute(func() (any, error) {
		return s.primary.MarkProcessed(ctx, key, ttl)
	})
	if err != nil {
		if s.fallback == nil {
			return false, err
		}
		s.logFallback("mark", err)
		return s.fallback.MarkProcessed(ctx, key, ttl)
	}
	return result.(bool), nil
}

// IsProcessed implements shared.IdempotencyStore
func (s *BreakerIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	result, err := s.cb.Execute(func() (any, error) {
		return s.primary.IsProcessed(ctx, key)
	})
	if err != nil {
		if s.fallback == nil {
			return false, err
		}
		s.logFallback("check", err)
		return s.fallback.IsProcessed(ctx, key)
	}
	return result.(bool), nil
}

// Release implements shared.IdempotencyStore. The key is removed from both stores.
func (s *BreakerIdempotencyStore) Release(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (any, error) {
		return nil, s.primary.Release(ctx, key)
	})
	if s.fallback != nil {
		if ferr := s.fallback.Release(ctx, key); ferr != nil {
			return ferr
		}
		if err != nil {
			s.logFallback("release", err)
		}
		return nil
	}
	return err
}

// State returns the breaker state
func (s *BreakerIdempotencyStore) State() gobreaker.State {
	return s.cb.State()
}

// Close closes both stores
func (s *BreakerIdempotencyStore) Close() error {
	err := s.primary.Close()
	if s.fallback != nil {
		err = errors.Join(err, s.fallback.Close())
	}
	return err
}

func (s *BreakerIdempotencyStore) logFallback(op string, err error) {
	level := zap.WarnLevel
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		level = zap.DebugLevel
	}
	s.logger.Check(level, "idempotency store unavailable, using fallback").Write(
		zap.String("op", op),
		zap.Error(err),
	)
}

var _ shared.IdempotencyStore = (*BreakerIdempotencyStore)(nil)
