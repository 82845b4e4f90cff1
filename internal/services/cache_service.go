package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"carrent/pkg/cache"

	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Increment(ctx context.Context, key string) (int64, error)
	SetExpire(ctx context.Context, key string, expiration time.Duration) error
	GetTTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCacheService struct {
	redis *cache.RedisCache
}

func NewCacheService(redisCache *cache.RedisCache) CacheService {
	return &redisCacheService{redis: redisCache}
}

func (s *redisCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	err := s.redis.Get(ctx, key, dest)
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	return err
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.redis.Set(ctx, key, value, expiration)
}

func (s *redisCacheService) Delete(ctx context.Context, keys ...string) error {
	return s.redis.Delete(ctx, keys...)
}

func (s *redisCacheService) Increment(ctx context.Context, key string) (int64, error) {
	return s.redis.Increment(ctx, key)
}

func (s *redisCacheService) SetExpire(ctx context.Context, key string, expiration time.Duration) error {
	return s.redis.SetExpire(ctx, key, expiration)
}

func (s *redisCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return s.redis.GetTTL(ctx, key)
}

// memoryCacheService is a map-backed CacheService for tests and environments
// without Redis. Expiration is checked lazily on access.
type memoryCacheService struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheService() CacheService {
	return &memoryCacheService{entries: make(map[string]memoryEntry)}
}

func (s *memoryCacheService) get(key string) (memoryEntry, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}

func (s *memoryCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.get(key)
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(entry.data, dest)
}

func (s *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{data: data}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	s.entries[key] = entry
	return nil
}

func (s *memoryCacheService) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *memoryCacheService) Increment(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current int64
	if entry, ok := s.get(key); ok {
		if err := json.Unmarshal(entry.data, &current); err != nil {
			return 0, err
		}
	}
	current++

	data, err := json.Marshal(current)
	if err != nil {
		return 0, err
	}
	entry := s.entries[key]
	entry.data = data
	s.entries[key] = entry
	return current, nil
}

func (s *memoryCacheService) SetExpire(ctx context.Context, key string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.get(key)
	if !ok {
		return ErrCacheMiss
	}
	entry.expiresAt = time.Now().Add(expiration)
	s.entries[key] = entry
	return nil
}

func (s *memoryCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.get(key)
	if !ok {
		return 0, ErrCacheMiss
	}
	if entry.expiresAt.IsZero() {
		return -1, nil
	}
	return time.Until(entry.expiresAt), nil
}
