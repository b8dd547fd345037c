package review

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the review submission path.
type Metrics struct {
	// SubmissionsTotal counts submissions by outcome: accepted,
	// rejected (validation) or error (storage).
	SubmissionsTotal *prometheus.CounterVec

	// NotifyFailures counts notification enqueue failures.
	NotifyFailures prometheus.Counter
}

// NewMetrics creates and registers Prometheus metrics for reviews.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SubmissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "review_submissions_total",
				Help:      "Total number of review submissions by outcome",
			},
			[]string{"outcome"},
		),
		NotifyFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "review_notify_failures_total",
				Help:      "Total number of review notification enqueue failures",
			},
		),
	}
}
