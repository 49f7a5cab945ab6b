package ports

import (
	"context"
	"time"
)

// LocationQuery selects a location either by coordinates or by name.
// Coordinates take precedence when both are set.
type LocationQuery struct {
	Name        string
	Coordinates *Coordinates
	Lang        string
}

// ConditionData represents one weather condition entry
type ConditionData struct {
	Main        string
	Description string
	ID          *int
	Icon        *string
}

// CurrentWeatherData represents current conditions returned by a provider
type CurrentWeatherData struct {
	Name        string
	Temperature float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	Conditions  []ConditionData
	Coordinates *Coordinates
	Country     string
}

// ForecastPointData represents one 3-hour forecast point
type ForecastPointData struct {
	Timestamp                time.Time
	Temp                     float64
	FeelsLike                float64
	TempMin                  float64
	TempMax                  float64
	Pressure                 float64
	Humidity                 float64
	SeaLevel                 *float64
	GroundLevel              *float64
	Conditions               []ConditionData
	CloudsPct                *float64
	WindSpeed                float64
	WindDeg                  *float64
	WindGust                 *float64
	Visibility               *float64
	PrecipitationProbability *float64
	Rain3h                   *float64
	PartOfDay                string
	TextTimestamp            string
}

// ForecastCityData is the city block of a forecast response
type ForecastCityData struct {
	ID         int64
	Name       string
	Coordinate Coordinates
	Country    string
	Population int64
	Timezone   int
	Sunrise    time.Time
	Sunset     time.Time
}

// ForecastData is the full forecast window
type ForecastData struct {
	Points []ForecastPointData
	City   ForecastCityData
}

// WeatherDataProvider defines the contract for current and forecast weather providers
type WeatherDataProvider interface {
	GetCurrentWeather(ctx context.Context, query LocationQuery) (*CurrentWeatherData, error)
	GetForecast(ctx context.Context, query LocationQuery) (*ForecastData, error)
	GetProviderName() string
}
