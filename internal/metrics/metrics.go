package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_dashboard"

// Metrics holds the Prometheus collectors shared by the pipelines and the
// upstream client.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: service, outcome={success,error,rejected}
	UpstreamDuration *prometheus.HistogramVec // labels: service

	QuoteCache     *prometheus.CounterVec // labels: result={hit,miss,expired,corrupt}
	QuoteFallbacks prometheus.Counter

	WeatherFailures *prometheus.CounterVec // labels: stage={location,weather}
}

// New creates all collectors and registers them with the default registry.
func New() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.QuoteCache,
		m.QuoteFallbacks,
		m.WeatherFailures,
	)
	return m
}

// NewForTesting creates unregistered collectors so tests can build as many
// as they like without "already registered" panics.
func NewForTesting() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Collaborator requests by service and outcome.",
		}, []string{"service", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Collaborator request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service"}),
		QuoteCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_cache_total",
			Help:      "Quote cache lookups by result.",
		}, []string{"result"}),
		QuoteFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_fallbacks_total",
			Help:      "Quotes served from the built-in fallback set.",
		}),
		WeatherFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_pipeline_failures_total",
			Help:      "Weather pipeline failures by stage.",
		}, []string{"stage"}),
	}
}
