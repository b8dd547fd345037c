package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the open/closed evaluator.
type Metrics struct {
	// BusinessOpen is 1 while the business is currently open, 0 otherwise.
	BusinessOpen prometheus.Gauge

	// EvaluationsTotal is the total number of status evaluations.
	EvaluationsTotal prometheus.Counter
}

// NewMetrics creates and registers Prometheus metrics for the status watcher.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BusinessOpen: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "business_open",
				Help:      "Whether the business is currently open (1) or closed (0)",
			},
		),
		EvaluationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_evaluations_total",
				Help:      "Total number of open/closed status evaluations",
			},
		),
	}
}
