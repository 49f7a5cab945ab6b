package ports

import (
	"context"
	"time"
)

// LocaleConfig represents locale handling configuration
type LocaleConfig struct {
	DefaultLocale string
}

// GeoCacheConfig represents geocoding cache configuration
type GeoCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// ReportConfig represents pipeline output configuration
type ReportConfig struct {
	HourlySlice     int
	SuggestionLimit int
	DefaultCity     string
}

// ConfigProvider defines the contract for configuration access
type ConfigProvider interface {
	GetLocaleConfig() LocaleConfig
	GetGeoCacheConfig() GeoCacheConfig
	GetReportConfig() ReportConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordOutboundRequest(ctx context.Context, endpoint, outcome string, duration time.Duration)
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordPipelineRun(ctx context.Context, category string)
}
