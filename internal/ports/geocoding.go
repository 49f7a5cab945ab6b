package ports

import "context"

// Coordinates is a latitude/longitude pair exchanged with providers
type Coordinates struct {
	Lat float64
	Lon float64
}

// GeoLocation represents one geocoding result
type GeoLocation struct {
	Name       string
	Lat        float64
	Lon        float64
	Country    string
	LocalNames map[string]string
	State      string
}

// GeocodingProvider defines the contract for forward and reverse geocoding
type GeocodingProvider interface {
	Direct(ctx context.Context, query string, limit int, lang string) ([]GeoLocation, error)
	Reverse(ctx context.Context, coords Coordinates, limit int, lang string) ([]GeoLocation, error)
}

// Translator defines the contract for the external text translator
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}
