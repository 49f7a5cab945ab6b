package infrastructure

import (
	"context"
	"time"

	"citycast.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// Pinger is satisfied by cache backends that can verify connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports geocode cache availability
type CacheHealthChecker struct {
	cache   ports.CacheProvider
	stats   ports.CacheMetrics
	timeout time.Duration
}

// NewCacheHealthChecker creates a new cache health checker. Both arguments
// are nil when geocode caching is disabled; stats may be nil on its own.
func NewCacheHealthChecker(cache ports.CacheProvider, stats ports.CacheMetrics) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, stats: stats, timeout: 2 * time.Second}
}

// Check pings the cache when the backend supports it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if c.cache == nil {
		status.Status = statusDisabled
		return status
	}

	if c.stats != nil {
		stats := c.stats.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hitRatio"] = stats.HitRatio
	}

	pinger, ok := c.cache.(Pinger)
	if !ok {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := pinger.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// WeatherProviderHealthChecker reports whether a weather provider is wired
type WeatherProviderHealthChecker struct {
	provider ports.WeatherDataProvider
}

// NewWeatherProviderHealthChecker creates a new weather provider health checker
func NewWeatherProviderHealthChecker(provider ports.WeatherDataProvider) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider}
}

// Check does not call the upstream API; quota is too precious for probes
func (w *WeatherProviderHealthChecker) Check(context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"connected": true,
		},
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		status.Details["connected"] = false
		return status
	}

	if named, ok := w.provider.(interface{ GetProviderName() string }); ok {
		status.Details["provider"] = named.GetProviderName()
	}
	return status
}
