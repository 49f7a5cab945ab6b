package external

import (
	"context"
	"time"

	"citycast.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherDataProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherDataProvider, logger ports.Logger) ports.WeatherDataProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, query ports.LocationQuery) (*ports.CurrentWeatherData, error) {
	fields := d.requestFields("current", query)
	d.logger.Info("Weather API request started", append(fields, ports.F("event", "request"))...)

	startTime := time.Now()
	weatherData, err := d.provider.GetCurrentWeather(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed", append(fields,
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))...)
		return nil, err
	}

	d.logger.Info("Weather API request completed", append(fields,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", weatherData.Temperature),
		ports.F("humidity", weatherData.Humidity),
		ports.F("conditions", len(weatherData.Conditions)))...)

	return weatherData, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, query ports.LocationQuery) (*ports.ForecastData, error) {
	fields := d.requestFields("forecast", query)
	d.logger.Info("Weather API request started", append(fields, ports.F("event", "request"))...)

	startTime := time.Now()
	forecast, err := d.provider.GetForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed", append(fields,
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))...)
		return nil, err
	}

	d.logger.Info("Weather API request completed", append(fields,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("points", len(forecast.Points)))...)

	return forecast, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func (d *WeatherProviderLoggingDecorator) requestFields(operation string, query ports.LocationQuery) []ports.Field {
	fields := []ports.Field{
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("operation", operation),
		ports.F("lang", query.Lang),
	}
	if query.Coordinates != nil {
		fields = append(fields, ports.F("lat", query.Coordinates.Lat), ports.F("lon", query.Coordinates.Lon))
	}
	if query.Name != "" {
		fields = append(fields, ports.F("city", query.Name))
	}
	return fields
}

// GeocodingLoggingDecorator decorates the geocoding provider with logging
type GeocodingLoggingDecorator struct {
	provider ports.GeocodingProvider
	logger   ports.Logger
}

// NewGeocodingLoggingDecorator creates a new logging decorator for geocoding
func NewGeocodingLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger) ports.GeocodingProvider {
	return &GeocodingLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Direct wraps forward geocoding with structured logging
func (d *GeocodingLoggingDecorator) Direct(ctx context.Context, query string, limit int, lang string) ([]ports.GeoLocation, error) {
	startTime := time.Now()
	locations, err := d.provider.Direct(ctx, query, limit, lang)
	d.logResult("direct", startTime, len(locations), err,
		ports.F("query", query), ports.F("limit", limit), ports.F("lang", lang))
	return locations, err
}

// Reverse wraps reverse geocoding with structured logging
func (d *GeocodingLoggingDecorator) Reverse(ctx context.Context, coords ports.Coordinates, limit int, lang string) ([]ports.GeoLocation, error) {
	startTime := time.Now()
	locations, err := d.provider.Reverse(ctx, coords, limit, lang)
	d.logResult("reverse", startTime, len(locations), err,
		ports.F("lat", coords.Lat), ports.F("lon", coords.Lon), ports.F("limit", limit), ports.F("lang", lang))
	return locations, err
}

func (d *GeocodingLoggingDecorator) logResult(operation string, startTime time.Time, results int, err error, fields ...ports.Field) {
	fields = append(fields,
		ports.F("operation", operation),
		ports.F("duration_ms", time.Since(startTime).Milliseconds()))

	if err != nil {
		d.logger.Error("Geocoding request failed", append(fields, ports.F("error", err.Error()))...)
		return
	}
	d.logger.Info("Geocoding request completed", append(fields, ports.F("results", results))...)
}
