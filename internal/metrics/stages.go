package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace prefixes every collector exported by this package.
const namespace = "finagent"

// StageMetrics groups the Prometheus collectors that describe demonstration
// stage outcomes. All methods are safe on a nil receiver so callers can treat
// instrumentation as optional.
type StageMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
	rows     *prometheus.CounterVec
}

// NewStageMetrics registers the stage collectors with reg and returns the
// handle used to record observations.
func NewStageMetrics(reg prometheus.Registerer) *StageMetrics {
	factory := promauto.With(reg)
	return &StageMetrics{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each demonstration stage.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"stage", "status"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_outcomes_total",
			Help:      "Count of stage completions by outcome.",
		}, []string{"stage", "status"}),
		rows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_collected_total",
			Help:      "Data rows produced per stage.",
		}, []string{"stage"}),
	}
}

// ObserveStage records the duration and outcome of a completed stage.
func (m *StageMetrics) ObserveStage(stage, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(stage, status).Observe(d.Seconds())
	m.outcomes.WithLabelValues(stage, status).Inc()
}

// AddRows accumulates the number of data rows a stage produced.
func (m *StageMetrics) AddRows(stage string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.rows.WithLabelValues(stage).Add(float64(n))
}
