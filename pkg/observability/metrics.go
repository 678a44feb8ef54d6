// Package observability exposes Prometheus metrics for the
// transformation engine and a small HTTP server that serves them.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Transformation metrics
	transformationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_transformations_total",
		Help: "Total connector request builds and response parses",
	}, []string{
		"connector", // braintree, ...
		"flow",      // authorize, capture, void, refund, psync, rsync, tokenize
		"direction", // build, parse
		"result",    // ok, error
	})

	transformationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_transformation_errors_total",
		Help: "Transformation failures by error kind",
	}, []string{
		"connector",
		"flow",
		"kind", // MISSING_REQUIRED_FIELD, RESPONSE_DESERIALIZATION_FAILED, ...
	})

	connectorErrorResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_error_responses_total",
		Help: "Connector-reported failures normalized into error responses",
	}, []string{
		"connector",
		"flow",
		"code", // normalized connector error code
	})

	attemptStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_attempt_status_total",
		Help: "Normalized attempt statuses produced by response parsing",
	}, []string{
		"connector",
		"flow",
		"status", // authorized, charged, failure, pending, ...
	})

	transformationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "connector_transformation_duration_seconds",
		Help: "Time spent building or parsing a connector payload",
		// Transformations are pure CPU work; sub-millisecond is normal.
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
	}, []string{
		"connector",
		"flow",
		"direction",
	})

	credentialValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_credential_validations_total",
		Help: "Connector account credential validation outcomes",
	}, []string{
		"connector",
		"result", // ok, error
	})
)

// RecordTransformation counts one build or parse and its duration.
func RecordTransformation(connector, flow, direction string, err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	transformationsTotal.WithLabelValues(connector, flow, direction, result).Inc()
	transformationDuration.WithLabelValues(connector, flow, direction).Observe(elapsed.Seconds())
}

// RecordTransformationError counts a transformation failure by kind.
func RecordTransformationError(connector, flow, kind string) {
	transformationErrorsTotal.WithLabelValues(connector, flow, kind).Inc()
}

// RecordConnectorError counts a connector-reported failure after
// normalization.
func RecordConnectorError(connector, flow, code string) {
	connectorErrorResponsesTotal.WithLabelValues(connector, flow, code).Inc()
}

// RecordAttemptStatus counts a normalized attempt status.
func RecordAttemptStatus(connector, flow, status string) {
	attemptStatusTotal.WithLabelValues(connector, flow, status).Inc()
}

// RecordCredentialValidation counts a credential validation outcome.
func RecordCredentialValidation(connector string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	credentialValidationsTotal.WithLabelValues(connector, result).Inc()
}
