// Package mocks provides testify mocks for the ports package.
package mocks

import (
	"context"
	"testing"
	"time"

	"citycast.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// GeocodingProvider mocks ports.GeocodingProvider
type GeocodingProvider struct {
	mock.Mock
}

func NewGeocodingProvider(t *testing.T) *GeocodingProvider {
	m := &GeocodingProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GeocodingProvider) Direct(ctx context.Context, query string, limit int, lang string) ([]ports.GeoLocation, error) {
	args := m.Called(ctx, query, limit, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.GeoLocation), args.Error(1)
}

func (m *GeocodingProvider) Reverse(ctx context.Context, coords ports.Coordinates, limit int, lang string) ([]ports.GeoLocation, error) {
	args := m.Called(ctx, coords, limit, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.GeoLocation), args.Error(1)
}

// Translator mocks ports.Translator
type Translator struct {
	mock.Mock
}

func NewTranslator(t *testing.T) *Translator {
	m := &Translator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Translator) Translate(ctx context.Context, text, from, to string) (string, error) {
	args := m.Called(ctx, text, from, to)
	return args.String(0), args.Error(1)
}

// WeatherDataProvider mocks ports.WeatherDataProvider
type WeatherDataProvider struct {
	mock.Mock
}

func NewWeatherDataProvider(t *testing.T) *WeatherDataProvider {
	m := &WeatherDataProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherDataProvider) GetCurrentWeather(ctx context.Context, query ports.LocationQuery) (*ports.CurrentWeatherData, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.CurrentWeatherData), args.Error(1)
}

func (m *WeatherDataProvider) GetForecast(ctx context.Context, query ports.LocationQuery) (*ports.ForecastData, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ForecastData), args.Error(1)
}

func (m *WeatherDataProvider) GetProviderName() string {
	return "mock"
}

// CacheProvider mocks ports.CacheProvider
type CacheProvider struct {
	mock.Mock
}

func NewCacheProvider(t *testing.T) *CacheProvider {
	m := &CacheProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *CacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *CacheProvider) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *CacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *CacheProvider) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ConfigProvider is a fixed-value ports.ConfigProvider
type ConfigProvider struct {
	Locale   ports.LocaleConfig
	GeoCache ports.GeoCacheConfig
	Report   ports.ReportConfig
}

// NewConfigProvider returns the defaults used by the application
func NewConfigProvider() *ConfigProvider {
	return &ConfigProvider{
		Locale: ports.LocaleConfig{DefaultLocale: "en"},
		Report: ports.ReportConfig{HourlySlice: 6, SuggestionLimit: 5, DefaultCity: "Beijing"},
	}
}

func (c *ConfigProvider) GetLocaleConfig() ports.LocaleConfig     { return c.Locale }
func (c *ConfigProvider) GetGeoCacheConfig() ports.GeoCacheConfig { return c.GeoCache }
func (c *ConfigProvider) GetReportConfig() ports.ReportConfig     { return c.Report }

// Logger mocks ports.Logger; fields are passed as a single slice argument
type Logger struct {
	mock.Mock
}

// NewLogger returns a logger mock that accepts any call
func NewLogger(t *testing.T) *Logger {
	m := &Logger{}
	m.Test(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(method, mock.Anything, mock.Anything).Maybe()
	}
	return m
}

func (m *Logger) Debug(msg string, fields ...ports.Field) { m.Called(msg, fields) }
func (m *Logger) Info(msg string, fields ...ports.Field)  { m.Called(msg, fields) }
func (m *Logger) Warn(msg string, fields ...ports.Field)  { m.Called(msg, fields) }
func (m *Logger) Error(msg string, fields ...ports.Field) { m.Called(msg, fields) }

// MetricsCollector records nothing
type MetricsCollector struct{}

func (MetricsCollector) RecordOutboundRequest(context.Context, string, string, time.Duration) {}
func (MetricsCollector) RecordCacheHit(context.Context)                                       {}
func (MetricsCollector) RecordCacheMiss(context.Context)                                      {}
func (MetricsCollector) RecordPipelineRun(context.Context, string)                            {}

var (
	_ ports.GeocodingProvider   = (*GeocodingProvider)(nil)
	_ ports.Translator          = (*Translator)(nil)
	_ ports.WeatherDataProvider = (*WeatherDataProvider)(nil)
	_ ports.CacheProvider       = (*CacheProvider)(nil)
	_ ports.ConfigProvider      = (*ConfigProvider)(nil)
	_ ports.Logger              = (*Logger)(nil)
	_ ports.MetricsCollector    = MetricsCollector{}
)
