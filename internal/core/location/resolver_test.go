package location

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"citycast.app/internal/mocks"
	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, geocoder *mocks.GeocodingProvider, translator ports.Translator, cache ports.CacheProvider, cfg *mocks.ConfigProvider) *Resolver {
	t.Helper()
	if cfg == nil {
		cfg = mocks.NewConfigProvider()
	}
	resolver, err := NewResolver(ResolverDependencies{
		Geocoder:   geocoder,
		Translator: translator,
		Cache:      cache,
		Config:     cfg,
		Logger:     mocks.NewLogger(t),
	})
	require.NoError(t, err)
	return resolver
}

func beijing() ports.GeoLocation {
	return ports.GeoLocation{
		Name:       "Beijing",
		Lat:        39.9,
		Lon:        116.4,
		Country:    "CN",
		LocalNames: map[string]string{"en": "Beijing", "zh": "北京市"},
	}
}

func TestNewResolver_RequiresDependencies(t *testing.T) {
	_, err := NewResolver(ResolverDependencies{})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewResolver(ResolverDependencies{Geocoder: mocks.NewGeocodingProvider(t)})
	assert.True(t, errors.IsValidationError(err))
}

func TestResolver_Resolve_LatinSkipsTranslation(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	translator := mocks.NewTranslator(t)
	geocoder.On("Direct", mock.Anything, "New York", 1, "en").
		Return([]ports.GeoLocation{{Name: "New York", Lat: 40.71, Lon: -74.0, Country: "US"}}, nil)

	resolver := newTestResolver(t, geocoder, translator, nil, nil)

	candidate, err := resolver.Resolve(context.Background(), "  New   York ", "en")

	require.NoError(t, err)
	assert.Equal(t, "New York", candidate.Name)
	assert.Equal(t, Coordinate{Lat: 40.71, Lon: -74.0}, candidate.Coordinate())
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_Resolve_TranslatesCJK(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	translator := mocks.NewTranslator(t)
	translator.On("Translate", mock.Anything, "北京", "auto", "en").Return("Beijing", nil)
	geocoder.On("Direct", mock.Anything, "Beijing", 1, "zh-CN").Return([]ports.GeoLocation{beijing()}, nil)

	resolver := newTestResolver(t, geocoder, translator, nil, nil)

	candidate, err := resolver.Resolve(context.Background(), "北京!!  123", "zh-CN")

	require.NoError(t, err)
	assert.Equal(t, "北京市", candidate.LocalizedName("zh-CN"))
	assert.Equal(t, 39.9, candidate.Lat)
}

func TestResolver_Resolve_TranslationFailureFallsBack(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	translator := mocks.NewTranslator(t)
	translator.On("Translate", mock.Anything, "北京", "auto", "en").
		Return("", errors.NewTranslationError("translator down", nil))
	geocoder.On("Direct", mock.Anything, "北京", 1, "zh").Return([]ports.GeoLocation{beijing()}, nil)

	resolver := newTestResolver(t, geocoder, translator, nil, nil)

	candidate, err := resolver.Resolve(context.Background(), "北京", "zh")

	require.NoError(t, err)
	assert.Equal(t, "Beijing", candidate.Name)
}

func TestResolver_Resolve_NoTranslatorConfigured(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	geocoder.On("Direct", mock.Anything, "上海", 1, "zh").
		Return([]ports.GeoLocation{{Name: "Shanghai", Lat: 31.2, Lon: 121.5}}, nil)

	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	candidate, err := resolver.Resolve(context.Background(), "上海", "zh")

	require.NoError(t, err)
	assert.Equal(t, "Shanghai", candidate.Name)
}

func TestResolver_Resolve_InputErrorsBeforeAnyCall(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected errors.ErrorType
	}{
		{"Empty", "", errors.NoInputError},
		{"Whitespace", "   ", errors.NoInputError},
		{"ShortLatin", "NY", errors.InputTooShortError},
		{"ShortAfterSanitize", "N!Y", errors.InputTooShortError},
		{"SingleCJK", "京", errors.InputTooShortError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := mocks.NewGeocodingProvider(t)
			translator := mocks.NewTranslator(t)
			resolver := newTestResolver(t, geocoder, translator, nil, nil)

			candidate, err := resolver.Resolve(context.Background(), tt.input, "en")

			assert.Nil(t, candidate)
			assert.Equal(t, tt.expected, errors.TypeOf(err))
			geocoder.AssertNotCalled(t, "Direct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	geocoder.On("Direct", mock.Anything, "Atlantis", 1, "en").Return([]ports.GeoLocation{}, nil)

	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	candidate, err := resolver.Resolve(context.Background(), "Atlantis", "en")

	assert.Nil(t, candidate)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolver_Resolve_PropagatesProviderError(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	providerErr := errors.NewTransportError("geocoding returned status 500", 500, nil)
	geocoder.On("Direct", mock.Anything, "London", 1, "en").Return(nil, providerErr)

	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	_, err := resolver.Resolve(context.Background(), "London", "en")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Same(t, providerErr, appErr)
}

func TestResolver_Resolve_DefaultLocale(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	geocoder.On("Direct", mock.Anything, "Paris", 1, "fr").
		Return([]ports.GeoLocation{{Name: "Paris", Lat: 48.85, Lon: 2.35}}, nil)

	cfg := mocks.NewConfigProvider()
	cfg.Locale.DefaultLocale = "fr"
	resolver := newTestResolver(t, geocoder, nil, nil, cfg)

	_, err := resolver.Resolve(context.Background(), "Paris", "")
	assert.NoError(t, err)
}

func TestResolver_Resolve_UsesCache(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	cache := mocks.NewCacheProvider(t)
	cfg := mocks.NewConfigProvider()
	cfg.GeoCache = ports.GeoCacheConfig{Enabled: true, TTL: time.Hour}

	cached, err := json.Marshal(Candidate{Name: "London", Lat: 51.5, Lon: -0.12, Country: "GB"})
	require.NoError(t, err)
	cache.On("Get", mock.Anything, "geo:en:london").Return(cached, nil)

	resolver := newTestResolver(t, geocoder, nil, cache, cfg)

	candidate, err := resolver.Resolve(context.Background(), "London", "en")

	require.NoError(t, err)
	assert.Equal(t, "GB", candidate.Country)
	geocoder.AssertNotCalled(t, "Direct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_Resolve_StoresInCacheOnMiss(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	cache := mocks.NewCacheProvider(t)
	cfg := mocks.NewConfigProvider()
	cfg.GeoCache = ports.GeoCacheConfig{Enabled: true, TTL: time.Hour}

	cache.On("Get", mock.Anything, "geo:en:london").Return(nil, errors.NewNotFoundError("cache miss"))
	geocoder.On("Direct", mock.Anything, "London", 1, "en").
		Return([]ports.GeoLocation{{Name: "London", Lat: 51.5, Lon: -0.12}}, nil)
	cache.On("Set", mock.Anything, "geo:en:london", mock.Anything, time.Hour).
		Return(fmt.Errorf("redis unavailable"))

	resolver := newTestResolver(t, geocoder, nil, cache, cfg)

	candidate, err := resolver.Resolve(context.Background(), "London", "en")

	require.NoError(t, err, "cache failures must not fail the resolution")
	assert.Equal(t, "London", candidate.Name)
}

func TestResolver_ResolveFromCoordinates(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	geocoder.On("Reverse", mock.Anything, ports.Coordinates{Lat: 39.9, Lon: 116.4}, 1, "en").
		Return([]ports.GeoLocation{beijing()}, nil)

	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	candidate, err := resolver.ResolveFromCoordinates(context.Background(), Coordinate{Lat: 39.9, Lon: 116.4}, "en")

	require.NoError(t, err)
	assert.Equal(t, "Beijing", candidate.Name)
}

func TestResolver_ResolveFromCoordinates_NotFound(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	geocoder.On("Reverse", mock.Anything, ports.Coordinates{Lat: 0, Lon: 0}, 1, "en").
		Return([]ports.GeoLocation{}, nil)

	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	_, err := resolver.ResolveFromCoordinates(context.Background(), Coordinate{}, "en")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolver_ResolveFromCoordinates_InvalidCoordinate(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	_, err := resolver.ResolveFromCoordinates(context.Background(), Coordinate{Lat: 91, Lon: 0}, "en")
	assert.True(t, errors.IsValidationError(err))
}

func TestResolver_Suggest(t *testing.T) {
	geocoder := mocks.NewGeocodingProvider(t)
	geocoder.On("Direct", mock.Anything, "Spring", 5, "en").Return([]ports.GeoLocation{
		{Name: "Springfield", State: "Illinois", Country: "US"},
		{Name: "Springfield", State: "Missouri", Country: "US"},
	}, nil)

	resolver := newTestResolver(t, geocoder, nil, nil, nil)

	candidates, err := resolver.Suggest(context.Background(), " Spring ", 5, "en")

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Missouri", candidates[1].State)

	empty, err := resolver.Suggest(context.Background(), "  ", 5, "en")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
