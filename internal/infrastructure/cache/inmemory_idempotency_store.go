package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fieldstock/backend/internal/domain/shared"
)

const defaultCleanupInterval = 5 * time.Minute

// InMemoryIdempotencyStore keeps idempotency keys in process memory.
// Keys are not shared between replicas.
type InMemoryIdempotencyStore struct {
	mu        sync.Mutex
	entries   map[string]time.Time // key -> expiry
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryIdempotencyStore creates the store and starts its expiry sweeper
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	return newInMemoryIdempotencyStore(time.Now, defaultCleanupInterval)
}

func newInMemoryIdempotencyStore(now func() time.Time, cleanupInterval time.Duration) *InMemoryIdempotencyStore {
	store := &InMemoryIdempotencyStore{
		entries:  make(map[string]time.Time),
		now:      now,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop(cleanupInterval)

	return store
}

// MarkProcessed records key unless an unexpired entry already exists
func (s *InMemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, exists := s.entries[key]; exists && now.Before(expiresAt) {
		return false, nil
	}
	s.entries[key] = now.Add(ttl)
	return true, nil
}

// IsProcessed checks for an unexpired entry
func (s *InMemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, exists := s.entries[key]
	return exists && s.now().Before(expiresAt), nil
}

// Release removes key
func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Close stops the sweeper. Safe to call multiple times.
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryIdempotencyStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, expiresAt := range s.entries {
		if !now.Before(expiresAt) {
			delete(s.entries, key)
		}
	}
}

// Size returns the number of stored entries, expired or not
func (s *InMemoryIdempotencyStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
