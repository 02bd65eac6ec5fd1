package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tracks the number of outbound API calls to Octopus.
	OctopusRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "octopus_api_requests_total",
			Help: "Total number of Octopus API requests made (by endpoint, method and status).",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Measures duration of API requests to Octopus.
	OctopusRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "octopus_api_request_duration_seconds",
			Help:    "Duration of Octopus API requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"endpoint", "method"},
	)

	// Counts fetch-and-select runs by outcome.
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tariff_selections_total",
			Help: "Total number of product selections by result.",
		},
		[]string{"result"}, // ok | fetch_error | decode_error | not_exactly_one | error
	)

	// Size of the most recently decoded catalog.
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tariff_catalog_products",
			Help: "Number of products in the last decoded catalog.",
		},
	)

	NATSMessageCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_total",
			Help: "Total number of NATS messages published.",
		},
		[]string{"subject", "result"}, // result = "ok" | "error"
	)

	NATSMessageLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nats_message_latency_seconds",
			Help:    "Time taken to publish NATS messages",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"subject"},
	)
)

// ObserveDuration records the time taken for a function and updates the given histogram.
func ObserveDuration(v any, start time.Time, labels ...string) {
	duration := time.Since(start).Seconds()

	switch metric := v.(type) {
	case *prometheus.HistogramVec:
		metric.WithLabelValues(labels...).Observe(duration)
	case *prometheus.SummaryVec:
		metric.WithLabelValues(labels...).Observe(duration)
	default:
		// counters are not meant for duration tracking
	}
}

func IncOctopusRequest(endpoint, method, status string) {
	OctopusRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}

func IncSelection(result string) {
	SelectionsTotal.WithLabelValues(result).Inc()
}

func IncNATSMessage(subject, result string) {
	NATSMessageCount.WithLabelValues(subject, result).Inc()
}
