package daily

import "citycast.app/internal/core/weather"

const (
	// DateKeyLayout is the bucket key format
	DateKeyLayout = "2006-01-02"

	UnknownCondition = "Unknown"
	NoDataCondition  = "No data"
)

// DaySummary aggregates the forecast points of one calendar day.
// Numeric fields are nil only for an empty bucket.
type DaySummary struct {
	DateKey          string   `json:"dateKey"`
	Date             string   `json:"date"`
	Weekday          string   `json:"weekday"`
	AverageTemp      *float64 `json:"averageTemp"`
	AverageFeelsLike *float64 `json:"averageFeelsLike"`
	MinTemp          *float64 `json:"minTemp"`
	MaxTemp          *float64 `json:"maxTemp"`
	Condition        string   `json:"condition"`
}

// HasData reports whether the day had any forecast points
func (d DaySummary) HasData() bool {
	return d.AverageTemp != nil
}

// Buckets groups forecast points by date key, preserving input order
type Buckets map[string][]weather.ForecastPoint
