package daily

import (
	"encoding/json"
	"testing"
	"time"

	"citycast.app/internal/core/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator(t *testing.T, loc string) *Aggregator {
	t.Helper()
	aggregator, err := NewAggregator(DefaultTimezone, loc)
	require.NoError(t, err)
	return aggregator
}

func point(ts time.Time, temp, feels float64, conditions ...string) weather.ForecastPoint {
	p := weather.ForecastPoint{
		Timestamp: ts,
		Main:      weather.MainDetails{Temp: temp, FeelsLike: feels},
	}
	for _, c := range conditions {
		p.Conditions = append(p.Conditions, weather.Condition{Main: c})
	}
	return p
}

func utc(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func TestNewAggregator_InvalidTimezone(t *testing.T) {
	_, err := NewAggregator("Mars/Olympus_Mons", "en")
	assert.Error(t, err)
}

func TestAggregator_BucketByDay_UsesReferenceZone(t *testing.T) {
	aggregator := newTestAggregator(t, "en")
	points := []weather.ForecastPoint{
		point(utc(1, 15), 1, 1, "Clear"), // 23:00 local, still March 1
		point(utc(1, 16), 2, 2, "Clear"), // 00:00 local, March 2
		point(utc(2, 3), 3, 3, "Clear"),
	}

	buckets := aggregator.BucketByDay(points)

	require.Len(t, buckets, 2)
	assert.Len(t, buckets["2024-03-01"], 1)
	assert.Len(t, buckets["2024-03-02"], 2)
}

func TestAggregator_BucketByDay_IsPartition(t *testing.T) {
	aggregator := newTestAggregator(t, "en")
	var points []weather.ForecastPoint
	for i := 0; i < 40; i++ {
		points = append(points, point(utc(1, 0).Add(time.Duration(i)*3*time.Hour), float64(i), float64(i), "Clouds"))
	}

	buckets := aggregator.BucketByDay(points)

	total := 0
	for key, bucket := range buckets {
		total += len(bucket)
		for _, p := range bucket {
			assert.Equal(t, key, aggregator.DateKey(p.Timestamp))
		}
	}
	assert.Equal(t, len(points), total)
}

func TestAggregator_Summarize_Statistics(t *testing.T) {
	aggregator := newTestAggregator(t, "en")
	buckets := Buckets{
		"2024-03-01": {
			point(utc(1, 0), 10, 8, "Clear"),
			point(utc(1, 3), 20, 18, "Clear"),
			point(utc(1, 6), 15, 14, "Clouds"),
		},
	}

	summaries := aggregator.Summarize(buckets)

	require.Len(t, summaries, 1)
	day := summaries[0]
	assert.Equal(t, 10.0, *day.MinTemp)
	assert.Equal(t, 20.0, *day.MaxTemp)
	assert.Equal(t, 15.0, *day.AverageTemp)
	assert.Equal(t, 13.3, *day.AverageFeelsLike)
	assert.Equal(t, "Clear", day.Condition)
	assert.True(t, *day.MinTemp <= *day.AverageTemp && *day.AverageTemp <= *day.MaxTemp)
}

func TestAggregator_Summarize_AscendingOrder(t *testing.T) {
	aggregator := newTestAggregator(t, "en")
	buckets := Buckets{
		"2024-03-03": {point(utc(3, 0), 1, 1, "Rain")},
		"2024-03-01": {point(utc(1, 0), 1, 1, "Rain")},
		"2024-03-02": {point(utc(2, 0), 1, 1, "Rain")},
	}

	summaries := aggregator.Summarize(buckets)

	require.Len(t, summaries, 3)
	assert.Equal(t, "2024-03-01", summaries[0].DateKey)
	assert.Equal(t, "2024-03-02", summaries[1].DateKey)
	assert.Equal(t, "2024-03-03", summaries[2].DateKey)
}

func TestAggregator_Summarize_EmptyBucket(t *testing.T) {
	aggregator := newTestAggregator(t, "en")

	summaries := aggregator.Summarize(Buckets{"2024-03-01": {}})

	require.Len(t, summaries, 1)
	day := summaries[0]
	assert.False(t, day.HasData())
	assert.Nil(t, day.AverageTemp)
	assert.Nil(t, day.AverageFeelsLike)
	assert.Nil(t, day.MinTemp)
	assert.Nil(t, day.MaxTemp)
	assert.Equal(t, NoDataCondition, day.Condition)
	assert.Equal(t, "03/01/2024", day.Date)
	assert.Equal(t, "Fri", day.Weekday)
}

func TestAggregator_Summarize_LocaleLabels(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		date    string
		weekday string
	}{
		{name: "english", locale: "en", date: "03/02/2024", weekday: "Sat"},
		{name: "chinese", locale: "zh-CN", date: "2024/03/02", weekday: "周六"},
		{name: "unsupported falls back to english", locale: "fr", date: "03/02/2024", weekday: "Sat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := newTestAggregator(t, tt.locale)

			summaries := aggregator.Aggregate([]weather.ForecastPoint{point(utc(2, 3), 5, 5, "Snow")})

			require.Len(t, summaries, 1)
			assert.Equal(t, "2024-03-02", summaries[0].DateKey)
			assert.Equal(t, tt.date, summaries[0].Date)
			assert.Equal(t, tt.weekday, summaries[0].Weekday)
		})
	}
}

func TestAggregator_ForLocale_KeepsDateKeys(t *testing.T) {
	aggregator := newTestAggregator(t, "en")
	points := []weather.ForecastPoint{point(utc(1, 20), 5, 5, "Snow")}

	en := aggregator.Aggregate(points)
	zh := aggregator.ForLocale("zh").Aggregate(points)

	assert.Equal(t, en[0].DateKey, zh[0].DateKey)
	assert.NotEqual(t, en[0].Weekday, zh[0].Weekday)
}

func TestAggregator_Aggregate_Idempotent(t *testing.T) {
	aggregator := newTestAggregator(t, "en")
	points := []weather.ForecastPoint{
		point(utc(1, 0), 3.14, 2, "Rain"),
		point(utc(1, 21), 7.77, 6, "Clouds"),
		point(utc(2, 9), -1.05, -4, "Snow"),
		point(utc(3, 12), 12.45, 11, "Clear"),
	}

	first, err := json.Marshal(aggregator.Aggregate(points))
	require.NoError(t, err)
	second, err := json.Marshal(aggregator.Aggregate(points))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Len(t, aggregator.Aggregate(points), 3)
}

func TestDominantCondition(t *testing.T) {
	tests := []struct {
		name       string
		conditions [][]string
		expected   string
	}{
		{name: "majority wins", conditions: [][]string{{"Rain"}, {"Clear"}, {"Rain"}}, expected: "Rain"},
		{name: "tie goes to first seen", conditions: [][]string{{"Rain"}, {"Clouds"}, {"Rain"}, {"Clouds"}}, expected: "Rain"},
		{name: "only first condition counts", conditions: [][]string{{"Clouds", "Rain"}, {"Clouds", "Rain"}, {"Rain"}}, expected: "Clouds"},
		{name: "no conditions", conditions: [][]string{{}, {}}, expected: UnknownCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var points []weather.ForecastPoint
			for i, c := range tt.conditions {
				points = append(points, point(utc(1, i), 0, 0, c...))
			}
			assert.Equal(t, tt.expected, DominantCondition(points))
		})
	}
}
