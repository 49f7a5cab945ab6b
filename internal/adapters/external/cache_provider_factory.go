package external

import (
	"fmt"

	"citycast.app/internal/config"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
)

type CacheProviderFactory struct {
	metrics ports.MetricsCollector
}

func NewCacheProviderFactory(metrics ports.MetricsCollector) *CacheProviderFactory {
	return &CacheProviderFactory{metrics: metrics}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(f.metrics), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis, f.metrics)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
