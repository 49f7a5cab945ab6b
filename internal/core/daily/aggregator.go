package daily

import (
	"math"
	"sort"
	"time"
	_ "time/tzdata"

	"citycast.app/internal/core/weather"
	"citycast.app/pkg/locale"
	"golang.org/x/text/language"
)

// DefaultTimezone is the calendar the date keys are computed in
const DefaultTimezone = "Asia/Shanghai"

// Aggregator groups forecast points into calendar days and summarizes them.
// It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	Location *time.Location
	Locale   language.Tag
}

// NewAggregator builds an aggregator for the named IANA zone and locale
func NewAggregator(timezone, loc string) (*Aggregator, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	tz, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Aggregator{Location: tz, Locale: locale.Parse(loc)}, nil
}

// ForLocale returns a copy that labels days for another locale.
// Date keys do not change.
func (a *Aggregator) ForLocale(loc string) *Aggregator {
	return &Aggregator{Location: a.Location, Locale: locale.Parse(loc)}
}

// Aggregate buckets and summarizes in one step
func (a *Aggregator) Aggregate(points []weather.ForecastPoint) []DaySummary {
	return a.Summarize(a.BucketByDay(points))
}

// BucketByDay partitions points by the local date of their timestamp
func (a *Aggregator) BucketByDay(points []weather.ForecastPoint) Buckets {
	buckets := make(Buckets)
	for _, p := range points {
		key := a.DateKey(p.Timestamp)
		buckets[key] = append(buckets[key], p)
	}
	return buckets
}

// DateKey formats t as a YYYY-MM-DD key in the reference zone
func (a *Aggregator) DateKey(t time.Time) string {
	return t.In(a.zone()).Format(DateKeyLayout)
}

// Summarize returns one summary per bucket in ascending date order
func (a *Aggregator) Summarize(buckets Buckets) []DaySummary {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	labels := labelsFor(a.Locale)
	summaries := make([]DaySummary, 0, len(keys))
	for _, key := range keys {
		summaries = append(summaries, a.summarizeDay(key, buckets[key], labels))
	}
	return summaries
}

func (a *Aggregator) summarizeDay(key string, points []weather.ForecastPoint, labels dayLabels) DaySummary {
	summary := DaySummary{DateKey: key, Date: key, Condition: NoDataCondition}
	if day, err := time.ParseInLocation(DateKeyLayout, key, a.zone()); err == nil {
		summary.Date = labels.date(day)
		summary.Weekday = labels.weekday(day)
	}
	if len(points) == 0 {
		return summary
	}

	var sumTemp, sumFeels float64
	minTemp, maxTemp := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		sumTemp += p.Main.Temp
		sumFeels += p.Main.FeelsLike
		minTemp = math.Min(minTemp, p.Main.Temp)
		maxTemp = math.Max(maxTemp, p.Main.Temp)
	}
	n := float64(len(points))

	summary.AverageTemp = roundedPtr(sumTemp / n)
	summary.AverageFeelsLike = roundedPtr(sumFeels / n)
	summary.MinTemp = roundedPtr(minTemp)
	summary.MaxTemp = roundedPtr(maxTemp)
	summary.Condition = DominantCondition(points)
	return summary
}

// DominantCondition returns the most frequent primary condition. On a tie the
// condition seen first wins.
func DominantCondition(points []weather.ForecastPoint) string {
	counts := make(map[string]int)
	var order []string
	for i := range points {
		c := points[i].PrimaryCondition()
		if c == "" {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	dominant, best := UnknownCondition, 0
	for _, c := range order {
		if counts[c] > best {
			dominant, best = c, counts[c]
		}
	}
	return dominant
}

func (a *Aggregator) zone() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

func roundedPtr(v float64) *float64 {
	r := math.Round(v*10) / 10
	return &r
}
