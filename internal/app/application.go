package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"citycast.app/internal/adapters/api"
	"citycast.app/internal/adapters/infrastructure"
	"citycast.app/internal/config"
	"citycast.app/internal/core/daily"
	"citycast.app/internal/core/location"
	"citycast.app/internal/core/report"
	"citycast.app/internal/core/weather"
	"citycast.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherService *weather.Service
	reportPipeline *report.Pipeline
	aggregator     *daily.Aggregator

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication(cfg *config.Config, baseLogger *slog.Logger) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, baseLogger)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	resolver, err := location.NewResolver(location.ResolverDependencies{
		Geocoder:   a.ports.Geocoder,
		Translator: a.ports.Translator,
		Cache:      a.ports.GeoCache,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create city resolver: %w", err)
	}

	weatherService, err := weather.NewService(weather.ServiceDependencies{
		Resolver: resolver,
		Provider: a.ports.WeatherProvider,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather service: %w", err)
	}
	a.weatherService = weatherService

	aggregator, err := daily.NewAggregator(a.config.Pipeline.AggregationTimezone, a.config.Pipeline.DefaultLocale)
	if err != nil {
		return fmt.Errorf("create daily aggregator: %w", err)
	}
	a.aggregator = aggregator

	pipeline, err := report.NewPipeline(report.PipelineDependencies{
		Weather:    weatherService,
		Aggregator: aggregator,
		Config:     a.ports.ConfigProvider,
		Metrics:    a.ports.MetricsCollector,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create report pipeline: %w", err)
	}
	a.reportPipeline = pipeline

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.ports.GeoCache, a.ports.CacheMetrics),
		ProviderChecker: infrastructure.NewWeatherProviderHealthChecker(a.ports.WeatherProvider),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase: a.weatherService,
		ReportUseCase:  a.reportPipeline,
		Aggregator:     a.aggregator,
		HealthChecker:  systemHealthChecker,
		MetricsHandler: promhttp.HandlerFor(a.deps.Registry(), promhttp.HandlerOpts{}),
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetReportPipeline returns the report pipeline for testing
func (a *Application) GetReportPipeline() *report.Pipeline {
	return a.reportPipeline
}
