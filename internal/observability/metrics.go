package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// forecast service.
type Metrics struct {
	// Upstream feed metrics.
	FeedRequests *prometheus.CounterVec   // labels: feed={forecast,tides}, outcome={success,error}
	FeedDuration *prometheus.HistogramVec // labels: feed={forecast,tides}

	// Fallbacks counts synthetic-data substitutions. scope says how much
	// was replaced (both feeds or tides alone), reason says why.
	Fallbacks *prometheus.CounterVec // labels: scope={both,tides}, reason={fetch_error,feed_error}

	// Cache counts condition-bundle cache lookups.
	Cache *prometheus.CounterVec // labels: result={hit,miss}

	RatingsComputed    prometheus.Counter
	SnapshotsPublished prometheus.Counter
	PublishErrors      prometheus.Counter

	// SourceReady is 1 once a condition bundle has been produced.
	SourceReady prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "feed_requests_total",
			Help:      "Upstream feed requests by feed and outcome.",
		}, []string{"feed", "outcome"}),
		FeedDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fishcast",
			Name:      "feed_request_duration_seconds",
			Help:      "Upstream feed request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"feed"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "fallbacks_total",
			Help:      "Synthetic-data substitutions by scope and reason.",
		}, []string{"scope", "reason"}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "condition_cache_total",
			Help:      "Condition bundle cache lookups by result.",
		}, []string{"result"}),
		RatingsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "ratings_computed_total",
			Help:      "Total spot ratings computed.",
		}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "snapshots_published_total",
			Help:      "Total daily snapshots written to Kafka.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "publish_errors_total",
			Help:      "Total snapshot publish failures.",
		}),
		SourceReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fishcast",
			Name:      "source_ready",
			Help:      "1 once a condition bundle has been produced, 0 before.",
		}),
	}

	prometheus.MustRegister(
		m.FeedRequests,
		m.FeedDuration,
		m.Fallbacks,
		m.Cache,
		m.RatingsComputed,
		m.SnapshotsPublished,
		m.PublishErrors,
		m.SourceReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fishcast", Name: "feed_requests_total"}, []string{"feed", "outcome"}),
		FeedDuration:       prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "fishcast", Name: "feed_request_duration_seconds"}, []string{"feed"}),
		Fallbacks:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fishcast", Name: "fallbacks_total"}, []string{"scope", "reason"}),
		Cache:              prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fishcast", Name: "condition_cache_total"}, []string{"result"}),
		RatingsComputed:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fishcast", Name: "ratings_computed_total"}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fishcast", Name: "snapshots_published_total"}),
		PublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fishcast", Name: "publish_errors_total"}),
		SourceReady:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "fishcast", Name: "source_ready"}),
	}
}
