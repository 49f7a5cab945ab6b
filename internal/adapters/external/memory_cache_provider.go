package external

import (
	"context"
	"sync"
	"time"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider. Expired entries are
// dropped lazily on read and swept on write.
type MemoryCacheProvider struct {
	data  map[string]memoryCacheItem
	mutex sync.RWMutex
	stats cacheStats
	now   func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider(metrics ports.MetricsCollector) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data:  make(map[string]memoryCacheItem),
		stats: cacheStats{metrics: metrics},
		now:   time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.now().After(item.expiresAt) {
		c.stats.recordMiss(ctx)
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.stats.recordHit(ctx)
	out := make([]byte, len(item.data))
	copy(out, item.data)
	return out, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	for k, item := range c.data {
		if now.After(item.expiresAt) {
			delete(c.data, k)
		}
	}
	c.data[key] = memoryCacheItem{
		data:      stored,
		expiresAt: now.Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}

	return !c.now().After(item.expiresAt), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.stats.snapshot()
}

func (c *MemoryCacheProvider) RecordHit() {
	c.stats.recordHit(context.Background())
}

func (c *MemoryCacheProvider) RecordMiss() {
	c.stats.recordMiss(context.Background())
}

var (
	_ ports.CacheProvider = (*MemoryCacheProvider)(nil)
	_ ports.CacheMetrics  = (*MemoryCacheProvider)(nil)
)
