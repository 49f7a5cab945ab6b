package app

import (
	"fmt"
	"io"
	"log/slog"

	"citycast.app/internal/adapters/external"
	"citycast.app/internal/adapters/infrastructure"
	"citycast.app/internal/config"
	"citycast.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type DependencyContainer struct {
	config   *config.Config
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts
	closers  []io.Closer
}

// NewDependencyContainer builds every outbound adapter from configuration.
// baseLogger is the process logger; provider diagnostics may additionally
// go to a file.
func NewDependencyContainer(cfg *config.Config, baseLogger *slog.Logger) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	container.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := container.initializePorts(baseLogger); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(baseLogger *slog.Logger) error {
	slog.Info("Initializing ports...")

	logger := ports.Logger(infrastructure.NewSlogLoggerAdapter(baseLogger))
	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry)

	// Provider diagnostics go to the main log and, when configured, a file
	providerLogger := logger
	if path := c.config.Logging.ProviderLogFilePath; path != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(path)
		if err != nil {
			slog.Warn("Failed to create provider log file, using main log only", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			providerLogger = infrastructure.MultiLogger{logger, fileLogger}
			slog.Info("Provider file logging enabled", "path", path)
		}
	}

	fetcher := external.NewFetcher(external.FetcherParams{
		Timeout:           c.config.Outbound.Timeout(),
		RequestsPerSecond: c.config.Outbound.RequestsPerSecond,
		Burst:             c.config.Outbound.Burst,
		Logger:            providerLogger,
		Metrics:           metrics,
	})

	owm := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:     c.config.Weather.OpenWeatherMapKey,
		BaseURL:    c.config.Weather.OpenWeatherMapBaseURL,
		GeoBaseURL: c.config.Weather.GeoBaseURL,
		Fetcher:    fetcher,
	})

	var translator ports.Translator
	if c.config.Weather.TranslationEnabled() {
		translator = external.NewTranslatorAdapter(external.TranslatorParams{
			URL:     c.config.Weather.TranslatorURL,
			Fetcher: fetcher,
		})
		slog.Info("City name translation enabled")
	}

	var geoCache ports.CacheProvider
	var cacheMetrics ports.CacheMetrics
	if c.config.GeoCache.Enabled {
		cache, err := external.NewCacheProviderFactory(metrics).CreateCacheProvider(&c.config.Cache)
		if err != nil {
			return fmt.Errorf("create cache provider: %w", err)
		}
		if closer, ok := cache.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
		cacheMetrics, _ = cache.(ports.CacheMetrics)
		geoCache = cache

		slog.Info("Geocode cache initialized",
			"type", c.config.Cache.Type.String(),
			"ttl", c.config.GeoCache.TTL().String())
	}

	c.ports = &ports.ApplicationPorts{
		Geocoder:        external.NewGeocodingLoggingDecorator(owm, providerLogger),
		Translator:      translator,
		WeatherProvider: external.NewWeatherProviderLoggingDecorator(owm, providerLogger),

		GeoCache:     geoCache,
		CacheMetrics: cacheMetrics,

		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		Logger:           logger,
		MetricsCollector: metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry is the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup closes the cache connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
