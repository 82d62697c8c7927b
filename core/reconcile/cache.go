package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one built value and when it was built.
type cacheEntry[T any] struct {
	value T
	built time.Time
}

// Cache holds built values per key for a TTL.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry[T]
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache. A zero TTL disables caching: every call rebuilds.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]*cacheEntry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache[T]) expired(e *cacheEntry[T]) bool {
	if c.ttl == 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// GetOrBuild returns the cached value for key, or builds and stores a new one if
// it is missing or expired. Concurrent callers for the same key share one build.
func (c *Cache[T]) GetOrBuild(ctx context.Context, key string, build func(context.Context) (T, error)) (T, error) {
	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && !c.expired(entry) {
		return entry.value, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && !c.expired(entry) {
			return entry.value, nil
		}

		value, err := build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry[T]{value: value, built: c.now()}
		c.mu.Unlock()

		return value, nil
	})

	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Invalidate removes the entry for key.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
