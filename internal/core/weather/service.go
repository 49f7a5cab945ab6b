package weather

import (
	"context"
	"fmt"
	"strings"

	"citycast.app/internal/core/location"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
)

const maxSuggestionLimit = 10

// LocationResolver is the part of the city resolver the weather service uses
type LocationResolver interface {
	Resolve(ctx context.Context, cityName, locale string) (*location.Candidate, error)
	ResolveFromCoordinates(ctx context.Context, coord location.Coordinate, locale string) (*location.Candidate, error)
	Suggest(ctx context.Context, partialQuery string, limit int, locale string) ([]location.Candidate, error)
}

// Service answers current weather, forecast and suggestion queries. It never
// retries; each operation is independently retryable by the caller.
type Service struct {
	resolver LocationResolver
	provider ports.WeatherDataProvider
	config   ports.ConfigProvider
	logger   ports.Logger
}

type ServiceDependencies struct {
	Resolver LocationResolver
	Provider ports.WeatherDataProvider
	Config   ports.ConfigProvider
	Logger   ports.Logger
}

func NewService(deps ServiceDependencies) (*Service, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("location resolver is required")
	}
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Service{
		resolver: deps.Resolver,
		provider: deps.Provider,
		config:   deps.Config,
		logger:   deps.Logger,
	}, nil
}

// GetCurrent returns current conditions. The city name shown is the
// geocoder's localized name when one exists, otherwise the provider's.
func (s *Service) GetCurrent(ctx context.Context, target Target, locale string) (*CurrentWeather, error) {
	locale = s.localeOrDefault(locale)
	query, candidate, err := s.locate(ctx, target, locale)
	if err != nil {
		return nil, err
	}

	data, err := s.provider.GetCurrentWeather(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get current weather: %w", err)
	}

	current := currentFromPorts(data)
	if err := current.IsValid(); err != nil {
		return nil, errors.NewResponseValidationError("weather", "invalid current weather: "+err.Error(), nil)
	}
	if candidate != nil {
		if name := candidate.LocalizedName(locale); name != "" {
			current.CityName = name
		}
		if current.Country == "" {
			current.Country = candidate.Country
		}
	}

	s.logger.Debug("Current weather retrieved",
		ports.F("city", current.CityName),
		ports.F("temperature", current.Temperature))
	return current, nil
}

// GetForecast returns the 5-day/3-hour forecast window in chronological order
func (s *Service) GetForecast(ctx context.Context, target Target, locale string) (*Forecast, error) {
	locale = s.localeOrDefault(locale)
	query, candidate, err := s.locate(ctx, target, locale)
	if err != nil {
		return nil, err
	}

	data, err := s.provider.GetForecast(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}

	forecast := forecastFromPorts(data)
	if candidate != nil {
		if name := candidate.LocalizedName(locale); name != "" {
			forecast.City.Name = name
		}
	}

	s.logger.Debug("Forecast retrieved",
		ports.F("city", forecast.City.Name),
		ports.F("points", len(forecast.Points)))
	return forecast, nil
}

// GetSuggestions returns autocomplete candidates. The minimum query length
// is the caller's concern.
func (s *Service) GetSuggestions(ctx context.Context, partialQuery string, limit int) ([]location.Candidate, error) {
	if limit <= 0 {
		limit = s.config.GetReportConfig().SuggestionLimit
	}
	if limit <= 0 || limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	return s.resolver.Suggest(ctx, partialQuery, limit, s.config.GetLocaleConfig().DefaultLocale)
}

// ResolveCoordinates resolves a free-text city name to a candidate
func (s *Service) ResolveCoordinates(ctx context.Context, cityName, locale string) (*location.Candidate, error) {
	return s.resolver.Resolve(ctx, cityName, s.localeOrDefault(locale))
}

// ReverseLookup resolves a coordinate to the nearest named place
func (s *Service) ReverseLookup(ctx context.Context, coord location.Coordinate, locale string) (*location.Candidate, error) {
	return s.resolver.ResolveFromCoordinates(ctx, coord, s.localeOrDefault(locale))
}

// ResolveOrDefault reverse-geocodes a device position and falls back to the
// configured default city when nothing can be found there.
func (s *Service) ResolveOrDefault(ctx context.Context, coord location.Coordinate, locale string) (*location.Candidate, error) {
	candidate, err := s.ReverseLookup(ctx, coord, locale)
	if err == nil {
		return candidate, nil
	}

	defaultCity := s.config.GetReportConfig().DefaultCity
	s.logger.Warn("Reverse lookup failed, using default city",
		ports.F("coordinate", coord.String()),
		ports.F("default_city", defaultCity),
		ports.F("error", err.Error()))
	return s.ResolveCoordinates(ctx, defaultCity, locale)
}

// locate turns a target into a coordinate-carrying provider query. A geocoding
// NotFound is returned as is and no provider call is made.
func (s *Service) locate(ctx context.Context, target Target, locale string) (ports.LocationQuery, *location.Candidate, error) {
	if err := target.IsValid(); err != nil {
		return ports.LocationQuery{}, nil, errors.NewValidationError("invalid weather target: " + err.Error())
	}

	if target.Coordinate != nil {
		return coordinateQuery(*target.Coordinate, target.City, locale), nil, nil
	}

	candidate, err := s.resolver.Resolve(ctx, target.City, locale)
	if err != nil {
		return ports.LocationQuery{}, nil, err
	}
	return coordinateQuery(candidate.Coordinate(), candidate.Name, locale), candidate, nil
}

func (s *Service) localeOrDefault(locale string) string {
	if strings.TrimSpace(locale) == "" {
		return s.config.GetLocaleConfig().DefaultLocale
	}
	return locale
}

func coordinateQuery(coord location.Coordinate, name, locale string) ports.LocationQuery {
	return ports.LocationQuery{
		Name:        name,
		Coordinates: &ports.Coordinates{Lat: coord.Lat, Lon: coord.Lon},
		Lang:        locale,
	}
}
