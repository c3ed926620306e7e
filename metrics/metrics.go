// Package metrics provides Prometheus metrics collection for the MedFinder
// API. It exports HTTP request metrics plus domain counters:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - extraction_failures_total: prescriptions with no extractable drug name
//   - safety_lookup_fallback_total: lookups answered with the default payload
//   - price_comparisons_total: price comparison queries served
//   - alerts_triggered_total: price alerts flipped to triggered
//
// All metrics are automatically registered with the Prometheus default
// registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	ExtractionFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_failures_total",
			Help: "Prescriptions from which no drug name could be extracted",
		},
	)

	SafetyLookupFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "safety_lookup_fallback_total",
			Help: "Safety lookups answered with the default payload",
		},
	)

	PriceComparisons = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_comparisons_total",
			Help: "Price comparison queries served",
		},
	)

	AlertsTriggered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_triggered_total",
			Help: "Price alerts flipped to triggered",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(ExtractionFailures)
	prometheus.MustRegister(SafetyLookupFallbacks)
	prometheus.MustRegister(PriceComparisons)
	prometheus.MustRegister(AlertsTriggered)
}
