// Package metrics provides Prometheus metrics for the resale service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resale"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// AICallsTotal counts AI collaborator calls by endpoint and outcome.
	AICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_calls_total",
			Help:      "Total number of AI collaborator calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	// AICostUSDTotal accumulates the recorded AI spend.
	AICostUSDTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_cost_usd_total",
			Help:      "Total recorded AI cost in USD",
		},
		[]string{"endpoint"},
	)

	// AICallDuration tracks AI collaborator latency.
	AICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_call_duration_seconds",
			Help:      "Duration of AI collaborator calls in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"endpoint"},
	)

	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"method", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// BatchItemsTotal counts items processed by batch identification.
	BatchItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_items_total",
			Help:      "Total number of items processed by batch identification",
		},
		[]string{"outcome"},
	)
)

// RecordAICall records one AI collaborator call.
func RecordAICall(endpoint, outcome string, durationSeconds float64) {
	AICallsTotal.WithLabelValues(endpoint, outcome).Inc()
	AICallDuration.WithLabelValues(endpoint).Observe(durationSeconds)
}

// RecordAICost adds a recorded usage cost.
func RecordAICost(endpoint string, usd float64) {
	AICostUSDTotal.WithLabelValues(endpoint).Add(usd)
}

// RecordHTTPRequest records a served HTTP request.
func RecordHTTPRequest(method, status string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, status).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(durationSeconds)
}

// RecordBatchItem records the outcome of one batch item.
func RecordBatchItem(outcome string) {
	BatchItemsTotal.WithLabelValues(outcome).Inc()
}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
