package external

import (
	"context"
	"time"

	"citycast.app/internal/config"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/go-redis/redis/v8"
)

const redisScanBatch = 100

// RedisCacheProviderAdapter implements CacheProvider port using Redis.
// All keys live under the configured prefix so Clear never touches data
// owned by other applications sharing the database.
type RedisCacheProviderAdapter struct {
	client    *redis.Client
	keyPrefix string
	stats     cacheStats
}

// NewRedisCacheProviderAdapter creates a new Redis cache provider adapter
func NewRedisCacheProviderAdapter(config *config.RedisConfig, metrics ports.MetricsCollector) (*RedisCacheProviderAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewTransportError("failed to connect to Redis", 0, err)
	}

	return &RedisCacheProviderAdapter{
		client:    client,
		keyPrefix: config.KeyPrefix,
		stats:     cacheStats{metrics: metrics},
	}, nil
}

// Get retrieves a value from Redis cache
func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.stats.recordMiss(ctx)
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewTransportError("redis get operation failed", 0, err)
	}

	r.stats.recordHit(ctx)
	return val, nil
}

// Set stores a value in Redis cache with TTL
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewTransportError("redis set operation failed", 0, err)
	}

	return nil
}

// Delete removes a value from Redis cache
func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewTransportError("redis delete operation failed", 0, err)
	}

	return nil
}

// Exists checks if a key exists in Redis cache
func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewTransportError("redis exists operation failed", 0, err)
	}

	return count > 0, nil
}

// Clear removes every key under the adapter's prefix
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.keyPrefix+"*", redisScanBatch).Result()
		if err != nil {
			return errors.NewTransportError("redis clear operation failed", 0, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return errors.NewTransportError("redis clear operation failed", 0, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// GetStats returns cache statistics
func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return r.stats.snapshot()
}

// RecordHit increments the cache hit counter
func (r *RedisCacheProviderAdapter) RecordHit() {
	r.stats.recordHit(context.Background())
}

// RecordMiss increments the cache miss counter
func (r *RedisCacheProviderAdapter) RecordMiss() {
	r.stats.recordMiss(context.Background())
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewTransportError("failed to close Redis connection", 0, err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewTransportError("Redis ping failed", 0, err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) key(key string) string {
	return r.keyPrefix + key
}

var (
	_ ports.CacheProvider = (*RedisCacheProviderAdapter)(nil)
	_ ports.CacheMetrics  = (*RedisCacheProviderAdapter)(nil)
)
