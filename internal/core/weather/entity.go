package weather

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"citycast.app/internal/core/location"
	"citycast.app/internal/ports"
)

// Condition is one weather condition entry; the first entry of a point is
// the one displayed.
type Condition struct {
	Main        string  `json:"main"`
	Description string  `json:"description"`
	ID          *int    `json:"id,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// CurrentWeather represents current conditions for a location
type CurrentWeather struct {
	CityName    string               `json:"cityName"`
	Temperature float64              `json:"temperature"`
	FeelsLike   float64              `json:"feelsLike"`
	Humidity    float64              `json:"humidity"`
	WindSpeed   float64              `json:"windSpeed"`
	Conditions  []Condition          `json:"conditions"`
	Coordinate  *location.Coordinate `json:"coordinate,omitempty"`
	Country     string               `json:"country,omitempty"`
}

// MainDetails holds the temperature block of a forecast point
type MainDetails struct {
	Temp        float64  `json:"temp"`
	FeelsLike   float64  `json:"feelsLike"`
	TempMin     float64  `json:"tempMin"`
	TempMax     float64  `json:"tempMax"`
	Pressure    float64  `json:"pressure"`
	Humidity    float64  `json:"humidity"`
	SeaLevel    *float64 `json:"seaLevel,omitempty"`
	GroundLevel *float64 `json:"groundLevel,omitempty"`
}

// ForecastPoint is one 3-hour step of the forecast window
type ForecastPoint struct {
	Timestamp                time.Time   `json:"timestamp"`
	Main                     MainDetails `json:"main"`
	Conditions               []Condition `json:"conditions"`
	CloudsPct                *float64    `json:"cloudsPct,omitempty"`
	WindSpeed                float64     `json:"windSpeed"`
	WindDeg                  *float64    `json:"windDeg,omitempty"`
	WindGust                 *float64    `json:"windGust,omitempty"`
	Visibility               *float64    `json:"visibility,omitempty"`
	PrecipitationProbability *float64    `json:"precipitationProbability,omitempty"`
	Rain3h                   *float64    `json:"rain3h,omitempty"`
	PartOfDay                string      `json:"partOfDay,omitempty"`
	TextTimestamp            string      `json:"textTimestamp,omitempty"`
}

// PrimaryCondition returns the first condition's category, or "" when none
func (p *ForecastPoint) PrimaryCondition() string {
	if len(p.Conditions) == 0 {
		return ""
	}
	return p.Conditions[0].Main
}

// ForecastCity describes the city block of a forecast response
type ForecastCity struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Coordinate location.Coordinate `json:"coord"`
	Country    string              `json:"country"`
	Population int64               `json:"population"`
	Timezone   int                 `json:"timezone"`
	Sunrise    time.Time           `json:"sunrise"`
	Sunset     time.Time           `json:"sunset"`
}

// Forecast is the ordered forecast window for a location
type Forecast struct {
	Points []ForecastPoint `json:"points"`
	City   ForecastCity    `json:"city"`
}

// Target selects the location of a weather query. A resolved coordinate is
// always preferred; City is resolved to one when Coordinate is nil.
type Target struct {
	City       string
	Coordinate *location.Coordinate
}

// IsValid validates the target
func (t Target) IsValid() error {
	if t.Coordinate != nil {
		return t.Coordinate.IsValid()
	}
	if strings.TrimSpace(t.City) == "" {
		return fmt.Errorf("city or coordinate is required")
	}
	return nil
}

// IsValid validates current weather data; display code indexes Conditions[0]
func (w *CurrentWeather) IsValid() error {
	if len(w.Conditions) == 0 {
		return fmt.Errorf("conditions cannot be empty")
	}
	if w.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if w.Humidity < 0 || w.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}

// String returns a string representation of the weather
func (w *CurrentWeather) String() string {
	description := ""
	if len(w.Conditions) > 0 {
		description = w.Conditions[0].Description
	}
	return fmt.Sprintf("%s: %.1f°C, %.1f%% humidity, %s",
		w.CityName, w.Temperature, w.Humidity, description)
}

func conditionsFromPorts(data []ports.ConditionData) []Condition {
	conditions := make([]Condition, 0, len(data))
	for _, c := range data {
		conditions = append(conditions, Condition{
			Main:        c.Main,
			Description: c.Description,
			ID:          c.ID,
			Icon:        c.Icon,
		})
	}
	return conditions
}

func currentFromPorts(data *ports.CurrentWeatherData) *CurrentWeather {
	current := &CurrentWeather{
		CityName:    data.Name,
		Temperature: data.Temperature,
		FeelsLike:   data.FeelsLike,
		Humidity:    data.Humidity,
		WindSpeed:   data.WindSpeed,
		Conditions:  conditionsFromPorts(data.Conditions),
		Country:     data.Country,
	}
	if data.Coordinates != nil {
		current.Coordinate = &location.Coordinate{Lat: data.Coordinates.Lat, Lon: data.Coordinates.Lon}
	}
	return current
}

// forecastFromPorts converts provider data and orders the points chronologically
func forecastFromPorts(data *ports.ForecastData) *Forecast {
	points := make([]ForecastPoint, 0, len(data.Points))
	for _, p := range data.Points {
		points = append(points, ForecastPoint{
			Timestamp: p.Timestamp.UTC(),
			Main: MainDetails{
				Temp:        p.Temp,
				FeelsLike:   p.FeelsLike,
				TempMin:     p.TempMin,
				TempMax:     p.TempMax,
				Pressure:    p.Pressure,
				Humidity:    p.Humidity,
				SeaLevel:    p.SeaLevel,
				GroundLevel: p.GroundLevel,
			},
			Conditions:               conditionsFromPorts(p.Conditions),
			CloudsPct:                p.CloudsPct,
			WindSpeed:                p.WindSpeed,
			WindDeg:                  p.WindDeg,
			WindGust:                 p.WindGust,
			Visibility:               p.Visibility,
			PrecipitationProbability: p.PrecipitationProbability,
			Rain3h:                   p.Rain3h,
			PartOfDay:                p.PartOfDay,
			TextTimestamp:            p.TextTimestamp,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	return &Forecast{
		Points: points,
		City: ForecastCity{
			ID:         data.City.ID,
			Name:       data.City.Name,
			Coordinate: location.Coordinate{Lat: data.City.Coordinate.Lat, Lon: data.City.Coordinate.Lon},
			Country:    data.City.Country,
			Population: data.City.Population,
			Timezone:   data.City.Timezone,
			Sunrise:    data.City.Sunrise,
			Sunset:     data.City.Sunset,
		},
	}
}
