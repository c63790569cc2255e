package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "fieldstock:idempotency:"

// RedisIdempotencyStore shares idempotency keys between replicas through Redis
type RedisIdempotencyStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisIdempotencyStore connects to Redis and verifies the connection
func NewRedisIdempotencyStore(ctx context.Context, cfg config.RedisConfig) (*RedisIdempotencyStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisIdempotencyStoreWithClient(client, ""), nil
}

// NewRedisIdempotencyStoreWithClient creates a store over an existing client
func NewRedisIdempotencyStoreWithClient(client redis.UniversalClient, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisIdempotencyStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// MarkProcessed records key with SET NX so exactly one caller wins
func (s *RedisIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record idempotency key: %w", err)
	}
	return ok, nil
}

// IsProcessed checks if key exists
func (s *RedisIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	return n > 0, nil
}

// Release deletes key
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *RedisIdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}

var _ shared.IdempotencyStore = (*RedisIdempotencyStore)(nil)
