package location

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
)

const (
	lookupLimit        = 1
	translateFromAuto  = "auto"
	translateToEnglish = "en"
)

// Resolver turns free-text city names and coordinates into candidates
type Resolver struct {
	geocoder   ports.GeocodingProvider
	translator ports.Translator
	cache      ports.CacheProvider
	config     ports.ConfigProvider
	logger     ports.Logger
}

// ResolverDependencies holds the resolver collaborators.
// Translator and Cache are optional.
type ResolverDependencies struct {
	Geocoder   ports.GeocodingProvider
	Translator ports.Translator
	Cache      ports.CacheProvider
	Config     ports.ConfigProvider
	Logger     ports.Logger
}

func NewResolver(deps ResolverDependencies) (*Resolver, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Resolver{
		geocoder:   deps.Geocoder,
		translator: deps.Translator,
		cache:      deps.Cache,
		config:     deps.Config,
		logger:     deps.Logger,
	}, nil
}

// Resolve sanitizes the city name, translates it to English when it is not
// Latin script, and geocodes it. Input errors are returned before any I/O.
func (r *Resolver) Resolve(ctx context.Context, cityName, locale string) (*Candidate, error) {
	query, err := NewCityQuery(cityName)
	if err != nil {
		return nil, err
	}
	locale = r.localeOrDefault(locale)

	cacheKey := geoCacheKey(locale, query.Sanitized)
	if cached := r.fromCache(ctx, cacheKey); cached != nil {
		r.logger.Debug("Location found in cache", ports.F("city", query.Sanitized))
		return cached, nil
	}

	lookupName := r.translate(ctx, query)

	results, err := r.geocoder.Direct(ctx, lookupName, lookupLimit, locale)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", lookupName, err)
	}
	if len(results) == 0 {
		r.logger.Info("No location found for city", ports.F("city", lookupName))
		return nil, errors.NewNotFoundError(fmt.Sprintf("city %q not found", query.Sanitized))
	}

	candidate := candidateFromPorts(results[0])
	r.logger.Debug("Location resolved",
		ports.F("city", lookupName),
		ports.F("lat", candidate.Lat),
		ports.F("lon", candidate.Lon))

	r.toCache(ctx, cacheKey, candidate)
	return candidate, nil
}

// ResolveFromCoordinates reverse-geocodes a coordinate to its nearest place
func (r *Resolver) ResolveFromCoordinates(ctx context.Context, coord Coordinate, locale string) (*Candidate, error) {
	if err := coord.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid coordinate: " + err.Error())
	}

	results, err := r.geocoder.Reverse(ctx, ports.Coordinates{Lat: coord.Lat, Lon: coord.Lon}, lookupLimit, r.localeOrDefault(locale))
	if err != nil {
		return nil, fmt.Errorf("reverse geocode %s: %w", coord, err)
	}
	if len(results) == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no location found at %s", coord))
	}

	return candidateFromPorts(results[0]), nil
}

// Suggest returns up to limit direct geocoding matches for autocomplete
func (r *Resolver) Suggest(ctx context.Context, partialQuery string, limit int, locale string) ([]Candidate, error) {
	query := strings.TrimSpace(partialQuery)
	if query == "" {
		return []Candidate{}, nil
	}

	results, err := r.geocoder.Direct(ctx, query, limit, r.localeOrDefault(locale))
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", query, err)
	}

	candidates := make([]Candidate, 0, len(results))
	for _, result := range results {
		candidates = append(candidates, *candidateFromPorts(result))
	}
	return candidates, nil
}

// translate never fails the resolution: on any translator problem the
// sanitized text is used as is.
func (r *Resolver) translate(ctx context.Context, query CityQuery) string {
	if !query.NeedsTranslation() || r.translator == nil {
		return query.Sanitized
	}

	translated, err := r.translator.Translate(ctx, query.Sanitized, translateFromAuto, translateToEnglish)
	if err != nil {
		r.logger.Warn("Translation failed, using original city name",
			ports.F("city", query.Sanitized),
			ports.F("error", err.Error()))
		return query.Sanitized
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return query.Sanitized
	}

	r.logger.Debug("City name translated",
		ports.F("from", query.Sanitized),
		ports.F("to", translated))
	return translated
}

func (r *Resolver) localeOrDefault(locale string) string {
	if strings.TrimSpace(locale) == "" {
		return r.config.GetLocaleConfig().DefaultLocale
	}
	return locale
}

func (r *Resolver) fromCache(ctx context.Context, key string) *Candidate {
	if r.cache == nil || !r.config.GetGeoCacheConfig().Enabled {
		return nil
	}

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var candidate Candidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		r.logger.Warn("Failed to decode cached location", ports.F("key", key), ports.F("error", err))
		return nil
	}
	return &candidate
}

func (r *Resolver) toCache(ctx context.Context, key string, candidate *Candidate) {
	cacheConfig := r.config.GetGeoCacheConfig()
	if r.cache == nil || !cacheConfig.Enabled {
		return
	}

	data, err := json.Marshal(candidate)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, cacheConfig.TTL); err != nil {
		r.logger.Warn("Failed to cache location", ports.F("key", key), ports.F("error", err))
	}
}

func geoCacheKey(locale, name string) string {
	return fmt.Sprintf("geo:%s:%s", strings.ToLower(locale), strings.ToLower(name))
}
