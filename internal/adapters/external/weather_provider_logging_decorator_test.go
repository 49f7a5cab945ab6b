package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"citycast.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "test-provider",
		current: &ports.CurrentWeatherData{Temperature: 22.0, Humidity: 55.0, Conditions: []ports.ConditionData{{Main: "Clear"}}},
	}
	testLogger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetCurrentWeather(context.Background(), ports.LocationQuery{
		Name:        "TestCity",
		Coordinates: &ports.Coordinates{Lat: 1.5, Lon: 2.5},
		Lang:        "en",
	})

	assert.NoError(t, err)
	assert.Equal(t, 22.0, result.Temperature)
	require.Len(t, testLogger.entries, 2)

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "TestCity", requestLog.fields["city"])
	assert.Equal(t, 1.5, requestLog.fields["lat"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, 55.0, responseLog.fields["humidity"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "error-provider",
		err:  errors.New("API rate limit exceeded"),
	}
	testLogger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetForecast(context.Background(), ports.LocationQuery{Name: "InvalidCity"})

	assert.Nil(t, result)
	assert.Equal(t, "API rate limit exceeded", err.Error())
	require.Len(t, testLogger.entries, 2)

	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "forecast", errorLog.fields["operation"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
}

func TestWeatherProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:     "slow-provider",
		forecast: &ports.ForecastData{Points: make([]ports.ForecastPointData, 3)},
		delay:    10 * time.Millisecond,
	}
	testLogger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	_, err := decorator.GetForecast(context.Background(), ports.LocationQuery{Name: "SlowCity"})
	require.NoError(t, err)

	responseLog := testLogger.entries[1]
	duration, ok := responseLog.fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
	assert.Equal(t, 3, responseLog.fields["points"])
}

func TestGeocodingLoggingDecorator(t *testing.T) {
	testLogger := &testLogger{}
	geocoder := &testGeocoder{locations: []ports.GeoLocation{{Name: "Paris"}}}

	decorator := NewGeocodingLoggingDecorator(geocoder, testLogger)

	locations, err := decorator.Direct(context.Background(), "Paris", 1, "fr")
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	geocoder.err = errors.New("boom")
	_, err = decorator.Reverse(context.Background(), ports.Coordinates{Lat: 48.85, Lon: 2.35}, 1, "fr")
	assert.Error(t, err)

	require.Len(t, testLogger.entries, 2)
	assert.Equal(t, "Geocoding request completed", testLogger.entries[0].message)
	assert.Equal(t, 1, testLogger.entries[0].fields["results"])
	assert.Equal(t, "ERROR", testLogger.entries[1].level)
	assert.Equal(t, "reverse", testLogger.entries[1].fields["operation"])
}

// Test helper structs
type testWeatherProvider struct {
	name     string
	current  *ports.CurrentWeatherData
	forecast *ports.ForecastData
	err      error
	delay    time.Duration
}

func (p *testWeatherProvider) wait(ctx context.Context) error {
	if p.delay == 0 {
		return p.err
	}
	select {
	case <-time.After(p.delay):
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *testWeatherProvider) GetCurrentWeather(ctx context.Context, _ ports.LocationQuery) (*ports.CurrentWeatherData, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.current, nil
}

func (p *testWeatherProvider) GetForecast(ctx context.Context, _ ports.LocationQuery) (*ports.ForecastData, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

type testGeocoder struct {
	locations []ports.GeoLocation
	err       error
}

func (g *testGeocoder) Direct(context.Context, string, int, string) ([]ports.GeoLocation, error) {
	return g.locations, g.err
}

func (g *testGeocoder) Reverse(context.Context, ports.Coordinates, int, string) ([]ports.GeoLocation, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.locations, nil
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

// noopMetrics records nothing
type noopMetrics struct{}

func (noopMetrics) RecordOutboundRequest(context.Context, string, string, time.Duration) {}
func (noopMetrics) RecordCacheHit(context.Context)                                       {}
func (noopMetrics) RecordCacheMiss(context.Context)                                      {}
func (noopMetrics) RecordPipelineRun(context.Context, string)                            {}
