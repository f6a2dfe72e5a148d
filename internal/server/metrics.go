package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the board API.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	FetchErrorsTotal   *prometheus.CounterVec
	FlightsServedTotal *prometheus.CounterVec
	RateLimitedTotal   prometheus.Counter
}

// NewMetrics registers every collector with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "flightboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_cache_hits_total",
				Help: "Flight list responses served from cache, by view",
			},
			[]string{"view"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_cache_misses_total",
				Help: "Flight list requests that required a fetch, by view",
			},
			[]string{"view"},
		),
		FetchErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_fetch_errors_total",
				Help: "Failed source fetches, by view",
			},
			[]string{"view"},
		),
		FlightsServedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_flights_served_total",
				Help: "Flight records written to clients, by view",
			},
			[]string{"view"},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flightboard_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),
	}
}
