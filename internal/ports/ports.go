// Package ports defines the interfaces for external dependencies in our hexagonal architecture.
// These interfaces are implemented by adapters and mocked for testing.
package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Providers
	Geocoder        GeocodingProvider
	Translator      Translator
	WeatherProvider WeatherDataProvider

	// Cache
	GeoCache     CacheProvider
	CacheMetrics CacheMetrics

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
}
