package location

import (
	"fmt"
	"math"
	"strings"

	"citycast.app/internal/ports"
	"citycast.app/pkg/locale"
	"citycast.app/pkg/validation"
)

// Coordinate is a resolved geographic position
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsValid validates the coordinate ranges
func (c Coordinate) IsValid() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// Candidate is one geocoding match for a city query
type Candidate struct {
	Name       string            `json:"name"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	State      string            `json:"state,omitempty"`
}

// Coordinate returns the candidate position
func (c *Candidate) Coordinate() Coordinate {
	return Coordinate{Lat: c.Lat, Lon: c.Lon}
}

// LocalizedName returns the local name for the locale, or "" when the
// geocoder supplied none.
func (c *Candidate) LocalizedName(loc string) string {
	if len(c.LocalNames) == 0 {
		return ""
	}
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(loc), "-", "_"))
	if name, ok := c.LocalNames[key]; ok && name != "" {
		return name
	}
	return c.LocalNames[locale.Base(loc)]
}

// CityQuery is a sanitized, length-checked city name ready for resolution
type CityQuery struct {
	Raw       string
	Sanitized string
}

// NewCityQuery sanitizes raw input and applies the minimum length rule.
// Failures are input errors and must be reported before any network call.
func NewCityQuery(raw string) (CityQuery, error) {
	if !validation.IsNotEmpty(raw) {
		return CityQuery{}, errNoInput()
	}

	sanitized := validation.SanitizeCityName(raw)
	if !validation.HasMinCityNameLength(sanitized) {
		return CityQuery{}, errTooShort(validation.MinCityNameLength(sanitized))
	}

	return CityQuery{Raw: raw, Sanitized: sanitized}, nil
}

// NeedsTranslation is false for names already written in Latin script or pinyin
func (q CityQuery) NeedsTranslation() bool {
	return !validation.IsLatinScript(q.Sanitized)
}

func candidateFromPorts(g ports.GeoLocation) *Candidate {
	return &Candidate{
		Name:       g.Name,
		Lat:        g.Lat,
		Lon:        g.Lon,
		Country:    g.Country,
		LocalNames: g.LocalNames,
		State:      g.State,
	}
}
