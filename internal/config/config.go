package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"citycast.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
	maxHTTPTimeout     = 120
	maxSuggestionLimit = 10
	maxHourlySlice     = 40
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Outbound OutboundConfig `split_words:"true"`
	Pipeline PipelineConfig `split_words:"true"`
	GeoCache GeoCacheConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoBaseURL            string `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"https://api.openweathermap.org/geo/1.0"`
	TranslatorURL         string `envconfig:"TRANSLATOR_URL"`
}

// TranslationEnabled reports whether non-Latin city names are translated
func (w WeatherConfig) TranslationEnabled() bool {
	return w.TranslatorURL != ""
}

type OutboundConfig struct {
	TimeoutSeconds    int     `envconfig:"HTTP_TIMEOUT_SECONDS" default:"10"`
	RequestsPerSecond float64 `envconfig:"OUTBOUND_RPS" default:"0"`
	Burst             int     `envconfig:"OUTBOUND_BURST" default:"1"`
}

// Timeout returns the per-request timeout
func (o OutboundConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

type PipelineConfig struct {
	DefaultLocale       string `envconfig:"DEFAULT_LOCALE" default:"en"`
	AggregationTimezone string `envconfig:"AGGREGATION_TIMEZONE" default:"Asia/Shanghai"`
	HourlySlice         int    `envconfig:"HOURLY_SLICE" default:"6"`
	SuggestionLimit     int    `envconfig:"SUGGESTION_LIMIT" default:"5"`
	DefaultCity         string `envconfig:"DEFAULT_CITY" default:"Beijing"`
}

type GeoCacheConfig struct {
	Enabled    bool `envconfig:"GEO_CACHE_ENABLED" default:"false"`
	TTLMinutes int  `envconfig:"GEO_CACHE_TTL_MINUTES" default:"60"`
}

// TTL returns the geocode cache entry lifetime
func (g GeoCacheConfig) TTL() time.Duration {
	return time.Duration(g.TTLMinutes) * time.Minute
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"citycast:"`
}

type LoggingConfig struct {
	Level               string `envconfig:"LOG_LEVEL" default:"info"`
	ProviderLogFilePath string `envconfig:"PROVIDER_LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Outbound.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	if err := c.GeoCache.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if err := validateURL("OPENWEATHERMAP_API_BASE_URL", w.OpenWeatherMapBaseURL); err != nil {
		return err
	}
	if err := validateURL("OPENWEATHERMAP_GEO_BASE_URL", w.GeoBaseURL); err != nil {
		return err
	}
	if w.TranslatorURL != "" {
		return validateURL("TRANSLATOR_URL", w.TranslatorURL)
	}
	return nil
}

func (o *OutboundConfig) Validate() error {
	if o.TimeoutSeconds < 1 || o.TimeoutSeconds > maxHTTPTimeout {
		return errors.NewConfigurationError("HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if o.RequestsPerSecond < 0 {
		return errors.NewConfigurationError("OUTBOUND_RPS cannot be negative", nil)
	}
	if o.Burst < 1 {
		return errors.NewConfigurationError("OUTBOUND_BURST must be at least 1", nil)
	}
	return nil
}

func (p *PipelineConfig) Validate() error {
	if _, err := language.Parse(strings.ReplaceAll(p.DefaultLocale, "_", "-")); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("DEFAULT_LOCALE %q is not a valid locale", p.DefaultLocale), err)
	}
	if _, err := time.LoadLocation(p.AggregationTimezone); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("AGGREGATION_TIMEZONE %q is not a valid time zone", p.AggregationTimezone), err)
	}
	if p.HourlySlice < 1 || p.HourlySlice > maxHourlySlice {
		return errors.NewConfigurationError("HOURLY_SLICE must be between 1 and 40", nil)
	}
	if p.SuggestionLimit < 1 || p.SuggestionLimit > maxSuggestionLimit {
		return errors.NewConfigurationError("SUGGESTION_LIMIT must be between 1 and 10", nil)
	}
	if strings.TrimSpace(p.DefaultCity) == "" {
		return errors.NewConfigurationError("DEFAULT_CITY cannot be empty", nil)
	}
	return nil
}

func (g *GeoCacheConfig) Validate() error {
	if g.TTLMinutes < 1 || g.TTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("GEO_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
