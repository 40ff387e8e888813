// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openfab/printhub/internal/cache"
	"github.com/openfab/printhub/internal/domain"
)

// CacheService wraps the in-memory TTL cache with typed access. It backs
// single-use signup nonces and hot lookups like shop memberships.
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service and starts its cleanup loop.
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(context.Background())

	return &CacheService{cache: c}
}

// Set stores a value under key.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Set(ctx, key, value)
	return nil
}

// CheckNonce reports whether a nonce exists and consumes it. A nonce is
// valid at most once; a second check always reports false.
func (s *CacheService) CheckNonce(ctx context.Context, nonce string) (bool, error) {
	if nonce == "" {
		return false, domain.ErrInvalidInput
	}

	if _, found := s.cache.Get(ctx, nonce); !found {
		return false, nil
	}
	s.cache.Delete(ctx, nonce)
	return true, nil
}

// Get retrieves the value under key into result. Returns domain.ErrNotFound
// when the key is absent or expired.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}
	return assignValue(value, result)
}

// GetOrSet retrieves the value under key, calling fetchFunc and caching its
// result on a miss.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetchFunc func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	value, err := fetchFunc()
	if err != nil {
		return fmt.Errorf("fetching value: %w", err)
	}
	if err := s.Set(ctx, key, value); err != nil {
		return err
	}
	return assignValue(value, result)
}

// Delete removes the value under key.
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Delete(ctx, key)
	return nil
}

// Close stops the cleanup loop.
func (s *CacheService) Close() {
	s.cache.StopCleanup()
}

// assignValue copies src into the pointer dst. Values are stored untyped,
// so complex types round-trip through JSON.
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling cached value: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}
