package infrastructure

import (
	"context"

	"citycast.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	cacheChecker    ports.HealthChecker
	providerChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	CacheChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		cacheChecker:    config.CacheChecker,
		providerChecker: config.ProviderChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.providerChecker != nil {
		results["weatherProvider"] = s.providerChecker.Check(ctx)
	}

	if s.configProvider != nil {
		locale := s.configProvider.GetLocaleConfig()
		report := s.configProvider.GetReportConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"defaultLocale": locale.DefaultLocale,
				"defaultCity":   report.DefaultCity,
				"hourlySlice":   report.HourlySlice,
			},
		}
	}

	return results
}

// Healthy reports whether every check is healthy or disabled
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, result := range results {
		if result.Status == statusUnhealthy {
			return false
		}
	}
	return true
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
