package infrastructure

import (
	"context"
	"time"

	"citycast.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with
// Prometheus counters and histograms
type PrometheusMetricsCollector struct {
	outboundRequests *prometheus.CounterVec
	outboundDuration *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	pipelineRuns     *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the collectors with reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		outboundRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citycast_outbound_requests_total",
				Help: "The total number of outbound provider requests",
			},
			[]string{"endpoint", "outcome"},
		),
		outboundDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "citycast_outbound_request_duration_seconds",
				Help:    "Outbound provider request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "citycast_geo_cache_hits_total",
			Help: "The total number of geocode cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "citycast_geo_cache_misses_total",
			Help: "The total number of geocode cache misses",
		}),
		pipelineRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citycast_pipeline_runs_total",
				Help: "The total number of report pipeline runs by result category",
			},
			[]string{"category"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordOutboundRequest(_ context.Context, endpoint, outcome string, duration time.Duration) {
	m.outboundRequests.WithLabelValues(endpoint, outcome).Inc()
	m.outboundDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordCacheHit(context.Context) {
	m.cacheHits.Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(context.Context) {
	m.cacheMisses.Inc()
}

func (m *PrometheusMetricsCollector) RecordPipelineRun(_ context.Context, category string) {
	m.pipelineRuns.WithLabelValues(category).Inc()
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)
