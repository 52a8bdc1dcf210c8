// Package cache holds the idempotency key store backing duplicate-submission
// protection on mutating API endpoints.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore remembers client-supplied idempotency keys long enough to
// reject a retried mutation. Claim is atomic: exactly one caller per key wins.
type IdempotencyStore interface {
	// Claim records the key with a TTL. Returns true if the key was newly
	// claimed, false if a request with the same key was already accepted.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// IsClaimed reports whether the key is currently held
	IsClaimed(ctx context.Context, key string) (bool, error)
}

// RedisIdempotencyStore implements IdempotencyStore on Redis so multiple
// instances share the same view of accepted keys
type RedisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisIdempotencyStore creates a Redis-backed store and verifies the
// connection
func NewRedisIdempotencyStore(host string, port int, password string, db int) (*RedisIdempotencyStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for idempotency store: %w", err)
	}

	return &RedisIdempotencyStore{client: client, keyPrefix: "request:idempotency:"}, nil
}

// NewRedisIdempotencyStoreWithClient creates a store with an existing client
func NewRedisIdempotencyStoreWithClient(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, keyPrefix: "request:idempotency:"}
}

// Claim uses SETNX so concurrent retries resolve to a single winner
func (s *RedisIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	return claimed, nil
}

// IsClaimed reports whether the key is currently held
func (s *RedisIdempotencyStore) IsClaimed(ctx context.Context, key string) (bool, error) {
	exists, err := s.client.Exists(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	return exists > 0, nil
}

// Close closes the Redis client
func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}

var _ IdempotencyStore = (*RedisIdempotencyStore)(nil)

type claim struct {
	expiresAt time.Time
}

// InMemoryIdempotencyStore is a single-process store for development and
// tests. Not suitable for multiple instances.
type InMemoryIdempotencyStore struct {
	mu        sync.Mutex
	claims    map[string]claim
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryIdempotencyStore creates the store and starts a goroutine that
// evicts expired keys
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	store := &InMemoryIdempotencyStore{
		claims:   make(map[string]claim),
		stopChan: make(chan struct{}),
	}
	store.wg.Add(1)
	go store.cleanupLoop()
	return store
}

// Claim records the key with a TTL; returns false if it is already held
func (s *InMemoryIdempotencyStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, exists := s.claims[key]; exists && time.Now().Before(c.expiresAt) {
		return false, nil
	}
	s.claims[key] = claim{expiresAt: time.Now().Add(ttl)}
	return true, nil
}

// IsClaimed reports whether the key is held and not yet expired
func (s *InMemoryIdempotencyStore) IsClaimed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.claims[key]
	if !exists || time.Now().After(c.expiresAt) {
		return false, nil
	}
	return true, nil
}

// Close stops the eviction goroutine. Safe to call multiple times.
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryIdempotencyStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *InMemoryIdempotencyStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, c := range s.claims {
		if now.After(c.expiresAt) {
			delete(s.claims, key)
		}
	}
}

var _ IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
