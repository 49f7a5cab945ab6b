package infrastructure

import (
	"citycast.app/internal/config"
	"citycast.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetLocaleConfig returns locale configuration
func (c *ConfigProviderAdapter) GetLocaleConfig() ports.LocaleConfig {
	return ports.LocaleConfig{
		DefaultLocale: c.config.Pipeline.DefaultLocale,
	}
}

// GetGeoCacheConfig returns geocoding cache configuration
func (c *ConfigProviderAdapter) GetGeoCacheConfig() ports.GeoCacheConfig {
	return ports.GeoCacheConfig{
		Enabled: c.config.GeoCache.Enabled,
		TTL:     c.config.GeoCache.TTL(),
	}
}

// GetReportConfig returns pipeline output configuration
func (c *ConfigProviderAdapter) GetReportConfig() ports.ReportConfig {
	return ports.ReportConfig{
		HourlySlice:     c.config.Pipeline.HourlySlice,
		SuggestionLimit: c.config.Pipeline.SuggestionLimit,
		DefaultCity:     c.config.Pipeline.DefaultCity,
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
