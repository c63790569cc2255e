package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Idempotency backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// IdempotencyStoreFactory creates idempotency stores based on configuration
type IdempotencyStoreFactory struct {
	idempotency           config.IdempotencyConfig
	redisConfig           config.RedisConfig
	breaker               BreakerConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
	dialRedis             func(ctx context.Context, cfg config.RedisConfig) (shared.IdempotencyStore, error)
}

// IdempotencyStoreFactoryOption is a functional option for configuring the factory
type IdempotencyStoreFactoryOption func(*IdempotencyStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) IdempotencyStoreFactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to the in-memory store.
// Default is true.
func WithInMemoryFallback(allow bool) IdempotencyStoreFactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// WithBreakerConfig overrides the circuit breaker settings around Redis
func WithBreakerConfig(cfg BreakerConfig) IdempotencyStoreFactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.breaker = cfg
	}
}

// NewIdempotencyStoreFactory creates a new factory
func NewIdempotencyStoreFactory(idem config.IdempotencyConfig, redisCfg config.RedisConfig, opts ...IdempotencyStoreFactoryOption) *IdempotencyStoreFactory {
	f := &IdempotencyStoreFactory{
		idempotency:           idem,
		redisConfig:           redisCfg,
		breaker:               DefaultBreakerConfig(),
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		dialRedis: func(ctx context.Context, cfg config.RedisConfig) (shared.IdempotencyStore, error) {
			return NewRedisIdempotencyStore(ctx, cfg)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore builds the configured backend. The redis backend is wrapped in
// a circuit breaker that falls back to an in-memory store.
func (f *IdempotencyStoreFactory) CreateStore(ctx context.Context) (shared.IdempotencyStore, error) {
	backend := strings.ToLower(strings.TrimSpace(f.idempotency.Backend))
	switch backend {
	case "", BackendMemory:
		f.logger.Info("using in-memory idempotency store")
		return NewInMemoryIdempotencyStore(), nil

	case BackendRedis:
		store, err := f.dialRedis(ctx, f.redisConfig)
		if err != nil {
			if !f.allowInMemoryFallback {
				return nil, fmt.Errorf("redis required for idempotency but unavailable: %w", err)
			}
			f.logger.Warn("Redis unavailable, falling back to in-memory idempotency store",
				zap.String("addr", f.redisConfig.Addr()),
				zap.Error(err),
			)
			return NewInMemoryIdempotencyStore(), nil
		}
		f.logger.Info("using Redis idempotency store", zap.String("addr", f.redisConfig.Addr()))
		return NewBreakerIdempotencyStore(store, NewInMemoryIdempotencyStore(), f.breaker, f.logger), nil

	default:
		return nil, fmt.Errorf("unknown idempotency backend %q", f.idempotency.Backend)
	}
}
