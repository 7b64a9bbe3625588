package capture

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for message capture
var (
	// captureMessagesTotal tracks handled messages per outcome
	captureMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capture_messages_total",
			Help: "Total number of messages handled by outcome",
		},
		[]string{"outcome"}, // outcome: invalid_format|saved|failed
	)

	// capturePersistFailuresTotal tracks failed writes per failure kind
	capturePersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capture_persist_failures_total",
			Help: "Total number of failed entry writes by failure kind",
		},
		[]string{"kind"}, // kind: auth|network|validation|unknown
	)

	// capturePersistDuration tracks the duration of the remote write
	capturePersistDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "capture_persist_duration_seconds",
			Help:    "Entry write duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// RecordOutcome increments the message counter for an outcome.
func RecordOutcome(outcome Outcome) {
	captureMessagesTotal.WithLabelValues(string(outcome)).Inc()
}

// RecordPersistFailure increments the failure counter for a kind.
func RecordPersistFailure(kind string) {
	capturePersistFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordPersistDuration records how long one write took.
func RecordPersistDuration(d time.Duration) {
	capturePersistDuration.Observe(d.Seconds())
}
