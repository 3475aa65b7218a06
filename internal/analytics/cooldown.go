package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownStore gates repeated surge alerts for the same (tenant, camera)
// key. TryAcquire must be an atomic check-and-set: it returns true at most
// once per window for a given key, no matter how many callers race.
type CooldownStore interface {
	TryAcquire(ctx context.Context, key string, window time.Duration) (bool, error)
}

// MemoryCooldownStore is the single-process implementation. State does not
// survive a restart; re-triggering after restart is acceptable.
type MemoryCooldownStore struct {
	mu        sync.Mutex
	lastFired map[string]time.Time
	now       func() time.Time
}

func NewMemoryCooldownStore() *MemoryCooldownStore {
	return &MemoryCooldownStore{
		lastFired: make(map[string]time.Time),
		now:       time.Now,
	}
}

func (s *MemoryCooldownStore) TryAcquire(_ context.Context, key string, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if last, ok := s.lastFired[key]; ok && now.Sub(last) < window {
		return false, nil
	}
	s.lastFired[key] = now
	return true, nil
}

// RedisCooldownStore shares the cooldown gate across instances via SET NX PX.
type RedisCooldownStore struct {
	client *redis.Client
}

func NewRedisCooldownStore(client *redis.Client) *RedisCooldownStore {
	return &RedisCooldownStore{client: client}
}

func (s *RedisCooldownStore) TryAcquire(ctx context.Context, key string, window time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, "surge_cooldown:"+key, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check surge cooldown: %w", err)
	}
	return ok, nil
}
