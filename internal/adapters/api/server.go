// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"citycast.app/internal/core/daily"
	"citycast.app/internal/core/location"
	"citycast.app/internal/core/report"
	"citycast.app/internal/core/weather"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	weatherUseCase WeatherUseCase
	reportUseCase  ReportUseCase
	aggregator     *daily.Aggregator
	healthChecker  ports.SystemHealthChecker
	logger         ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetCurrent(ctx context.Context, target weather.Target, locale string) (*weather.CurrentWeather, error)
	GetForecast(ctx context.Context, target weather.Target, locale string) (*weather.Forecast, error)
	GetSuggestions(ctx context.Context, partialQuery string, limit int) ([]location.Candidate, error)
	ResolveCoordinates(ctx context.Context, cityName, locale string) (*location.Candidate, error)
	ReverseLookup(ctx context.Context, coord location.Coordinate, locale string) (*location.Candidate, error)
	ResolveOrDefault(ctx context.Context, coord location.Coordinate, locale string) (*location.Candidate, error)
}

type ReportUseCase interface {
	GetReport(ctx context.Context, cityName, locale string) (*report.Report, error)
}

// ServerOptions represents options for creating the HTTP server.
// MetricsHandler defaults to the global Prometheus handler.
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	ReportUseCase  ReportUseCase
	Aggregator     *daily.Aggregator
	HealthChecker  ports.SystemHealthChecker
	MetricsHandler http.Handler
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), RequestID())

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		reportUseCase:  opts.ReportUseCase,
		aggregator:     opts.Aggregator,
		healthChecker:  opts.HealthChecker,
		logger:         opts.Logger,
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server.setupRoutes(metricsHandler)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.ReportUseCase == nil {
		return errors.NewValidationError("report use case is required")
	}
	if opts.Aggregator == nil {
		return errors.NewValidationError("aggregator is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(metricsHandler http.Handler) {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/forecast", s.getForecast)
		api.GET("/report", s.getReport)
		api.GET("/suggestions", s.getSuggestions)
		api.GET("/resolve", s.resolveCity)
		api.GET("/reverse", s.reverseLookup)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
