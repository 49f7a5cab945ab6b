package external

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"citycast.app/pkg/locale"
)

const (
	defaultOWMBaseURL    = "https://api.openweathermap.org/data/2.5"
	defaultOWMGeoBaseURL = "https://api.openweathermap.org/geo/1.0"
	metricUnits          = "metric"
	forecastExclude      = "minutely,hourly,current,alerts"
)

// OpenWeatherMapProviderAdapter implements the weather and geocoding ports
// for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey     string
	baseURL    string
	geoBaseURL string
	fetcher    *Fetcher
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
	Fetcher    *Fetcher
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOWMBaseURL
	}
	geoBaseURL := params.GeoBaseURL
	if geoBaseURL == "" {
		geoBaseURL = defaultOWMGeoBaseURL
	}
	fetcher := params.Fetcher
	if fetcher == nil {
		fetcher = NewFetcher(FetcherParams{})
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:     params.APIKey,
		baseURL:    baseURL,
		geoBaseURL: geoBaseURL,
		fetcher:    fetcher,
	}
}

// Direct geocodes a place name
func (p *OpenWeatherMapProviderAdapter) Direct(ctx context.Context, query string, limit int, lang string) ([]ports.GeoLocation, error) {
	if query == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	resp, err := Fetch[[]owmGeoLocation](ctx, p.fetcher, Request{
		Method:   http.MethodGet,
		URL:      p.geoBaseURL + "/direct",
		Endpoint: "geo_direct",
		Params: map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
			"lang":  locale.Base(lang),
			"appid": p.apiKey,
		},
	})
	if err != nil {
		return nil, err
	}
	return geoLocationsFromResponse(*resp), nil
}

// Reverse finds the places nearest to a coordinate
func (p *OpenWeatherMapProviderAdapter) Reverse(ctx context.Context, coords ports.Coordinates, limit int, lang string) ([]ports.GeoLocation, error) {
	resp, err := Fetch[[]owmGeoLocation](ctx, p.fetcher, Request{
		Method:   http.MethodGet,
		URL:      p.geoBaseURL + "/reverse",
		Endpoint: "geo_reverse",
		Params: map[string]string{
			"lat":   formatCoordinate(coords.Lat),
			"lon":   formatCoordinate(coords.Lon),
			"limit": strconv.Itoa(limit),
			"lang":  locale.Base(lang),
			"appid": p.apiKey,
		},
	})
	if err != nil {
		return nil, err
	}
	return geoLocationsFromResponse(*resp), nil
}

// GetCurrentWeather retrieves current conditions in metric units
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, query ports.LocationQuery) (*ports.CurrentWeatherData, error) {
	params, err := p.locationParams(query)
	if err != nil {
		return nil, err
	}

	resp, err := Fetch[owmCurrentResponse](ctx, p.fetcher, Request{
		Method:   http.MethodGet,
		URL:      p.baseURL + "/weather",
		Endpoint: "weather",
		Params:   params,
	})
	if err != nil {
		return nil, err
	}

	data := &ports.CurrentWeatherData{
		Name:        *resp.Name,
		Temperature: *resp.Main.Temp,
		FeelsLike:   *resp.Main.FeelsLike,
		Humidity:    *resp.Main.Humidity,
		WindSpeed:   *resp.Wind.Speed,
		Conditions:  conditionsFromResponse(resp.Weather),
	}
	if resp.Coord != nil {
		data.Coordinates = &ports.Coordinates{Lat: *resp.Coord.Lat, Lon: *resp.Coord.Lon}
	}
	if resp.Sys != nil {
		data.Country = resp.Sys.Country
	}
	return data, nil
}

// GetForecast retrieves the 5-day/3-hour forecast in metric units
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, query ports.LocationQuery) (*ports.ForecastData, error) {
	params, err := p.locationParams(query)
	if err != nil {
		return nil, err
	}
	params["exclude"] = forecastExclude

	resp, err := Fetch[owmForecastResponse](ctx, p.fetcher, Request{
		Method:   http.MethodGet,
		URL:      p.baseURL + "/forecast",
		Endpoint: "forecast",
		Params:   params,
	})
	if err != nil {
		return nil, err
	}

	points := make([]ports.ForecastPointData, 0, len(resp.List))
	for _, item := range resp.List {
		points = append(points, forecastPointFromResponse(item))
	}

	city := resp.City
	return &ports.ForecastData{
		Points: points,
		City: ports.ForecastCityData{
			ID:         city.ID,
			Name:       *city.Name,
			Coordinate: ports.Coordinates{Lat: *city.Coord.Lat, Lon: *city.Coord.Lon},
			Country:    city.Country,
			Population: city.Population,
			Timezone:   city.Timezone,
			Sunrise:    time.Unix(city.Sunrise, 0).UTC(),
			Sunset:     time.Unix(city.Sunset, 0).UTC(),
		},
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

// locationParams prefers coordinates over the city name
func (p *OpenWeatherMapProviderAdapter) locationParams(query ports.LocationQuery) (map[string]string, error) {
	params := map[string]string{
		"units": metricUnits,
		"lang":  locale.ProviderLang(query.Lang),
		"appid": p.apiKey,
	}

	switch {
	case query.Coordinates != nil:
		params["lat"] = formatCoordinate(query.Coordinates.Lat)
		params["lon"] = formatCoordinate(query.Coordinates.Lon)
	case query.Name != "":
		params["q"] = query.Name
	default:
		return nil, errors.NewValidationError("location query needs coordinates or a name")
	}
	return params, nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func geoLocationsFromResponse(resp []owmGeoLocation) []ports.GeoLocation {
	locations := make([]ports.GeoLocation, 0, len(resp))
	for _, g := range resp {
		locations = append(locations, ports.GeoLocation{
			Name:       *g.Name,
			Lat:        *g.Lat,
			Lon:        *g.Lon,
			Country:    g.Country,
			LocalNames: g.LocalNames,
			State:      g.State,
		})
	}
	return locations
}

func conditionsFromResponse(resp []owmCondition) []ports.ConditionData {
	conditions := make([]ports.ConditionData, 0, len(resp))
	for _, c := range resp {
		conditions = append(conditions, ports.ConditionData{
			Main:        *c.Main,
			Description: *c.Description,
			ID:          c.ID,
			Icon:        c.Icon,
		})
	}
	return conditions
}

func forecastPointFromResponse(item owmForecastPoint) ports.ForecastPointData {
	point := ports.ForecastPointData{
		Timestamp:                time.Unix(*item.Dt, 0).UTC(),
		Temp:                     *item.Main.Temp,
		FeelsLike:                *item.Main.FeelsLike,
		Humidity:                 *item.Main.Humidity,
		TempMin:                  valueOr(item.Main.TempMin, *item.Main.Temp),
		TempMax:                  valueOr(item.Main.TempMax, *item.Main.Temp),
		Pressure:                 valueOr(item.Main.Pressure, 0),
		SeaLevel:                 item.Main.SeaLevel,
		GroundLevel:              item.Main.GroundLevel,
		Conditions:               conditionsFromResponse(item.Weather),
		WindSpeed:                *item.Wind.Speed,
		WindDeg:                  item.Wind.Deg,
		WindGust:                 item.Wind.Gust,
		Visibility:               item.Visibility,
		PrecipitationProbability: item.Pop,
		TextTimestamp:            item.DtTxt,
	}
	if item.Clouds != nil {
		point.CloudsPct = item.Clouds.All
	}
	if item.Rain != nil {
		point.Rain3h = item.Rain.ThreeHours
	}
	if item.Sys != nil {
		point.PartOfDay = item.Sys.Pod
	}
	if point.TextTimestamp == "" {
		point.TextTimestamp = point.Timestamp.Format("2006-01-02 15:04:05")
	}
	return point
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

var (
	_ ports.WeatherDataProvider = (*OpenWeatherMapProviderAdapter)(nil)
	_ ports.GeocodingProvider   = (*OpenWeatherMapProviderAdapter)(nil)
)
