// Package report runs the full city-to-summary pipeline:
// resolve, current weather, forecast, daily aggregation.
package report

import (
	"context"
	"fmt"

	"citycast.app/internal/core/daily"
	"citycast.app/internal/core/location"
	"citycast.app/internal/core/weather"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
)

// Report is the pipeline output for one city
type Report struct {
	Location location.Candidate      `json:"location"`
	Current  weather.CurrentWeather  `json:"current"`
	Hourly   []weather.ForecastPoint `json:"hourly"`
	Daily    []daily.DaySummary      `json:"daily"`
}

// WeatherQueries is the part of the weather service the pipeline uses
type WeatherQueries interface {
	ResolveCoordinates(ctx context.Context, cityName, locale string) (*location.Candidate, error)
	GetCurrent(ctx context.Context, target weather.Target, locale string) (*weather.CurrentWeather, error)
	GetForecast(ctx context.Context, target weather.Target, locale string) (*weather.Forecast, error)
}

type Pipeline struct {
	weather    WeatherQueries
	aggregator *daily.Aggregator
	config     ports.ConfigProvider
	metrics    ports.MetricsCollector
	logger     ports.Logger
}

// PipelineDependencies holds the pipeline collaborators. Metrics is optional.
type PipelineDependencies struct {
	Weather    WeatherQueries
	Aggregator *daily.Aggregator
	Config     ports.ConfigProvider
	Metrics    ports.MetricsCollector
	Logger     ports.Logger
}

func NewPipeline(deps PipelineDependencies) (*Pipeline, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather service is required")
	}
	if deps.Aggregator == nil {
		return nil, errors.NewValidationError("aggregator is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Pipeline{
		weather:    deps.Weather,
		aggregator: deps.Aggregator,
		config:     deps.Config,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}, nil
}

// GetReport resolves the city once and reuses the coordinate for both
// provider calls. Any failure aborts the run; no partial report is returned.
func (p *Pipeline) GetReport(ctx context.Context, cityName, locale string) (report *Report, err error) {
	if locale == "" {
		locale = p.config.GetLocaleConfig().DefaultLocale
	}
	defer func() { p.recordRun(ctx, err) }()

	candidate, err := p.weather.ResolveCoordinates(ctx, cityName, locale)
	if err != nil {
		return nil, err
	}

	coord := candidate.Coordinate()
	target := weather.Target{City: candidate.Name, Coordinate: &coord}

	current, err := p.weather.GetCurrent(ctx, target, locale)
	if err != nil {
		return nil, fmt.Errorf("current weather for %s: %w", candidate.Name, err)
	}
	if name := candidate.LocalizedName(locale); name != "" {
		current.CityName = name
	}
	if current.Country == "" {
		current.Country = candidate.Country
	}

	forecast, err := p.weather.GetForecast(ctx, target, locale)
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", candidate.Name, err)
	}

	report = &Report{
		Location: *candidate,
		Current:  *current,
		Hourly:   p.hourly(forecast.Points),
		Daily:    p.aggregator.ForLocale(locale).Aggregate(forecast.Points),
	}

	p.logger.Info("Weather report built",
		ports.F("city", current.CityName),
		ports.F("days", len(report.Daily)))
	return report, nil
}

func (p *Pipeline) hourly(points []weather.ForecastPoint) []weather.ForecastPoint {
	n := p.config.GetReportConfig().HourlySlice
	if n <= 0 || n > len(points) {
		n = len(points)
	}
	hourly := make([]weather.ForecastPoint, n)
	copy(hourly, points[:n])
	return hourly
}

func (p *Pipeline) recordRun(ctx context.Context, err error) {
	if p.metrics == nil {
		return
	}
	category := "ok"
	if err != nil {
		category = string(errors.UserCategoryOf(err))
	}
	p.metrics.RecordPipelineRun(ctx, category)
}
