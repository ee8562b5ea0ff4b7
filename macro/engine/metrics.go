package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a macro invocation, used as the outcome label.
const (
	OutcomeExecuted          = "executed"
	OutcomeNotFound          = "not_found"
	OutcomeLookupFailed      = "lookup_failed"
	OutcomeNotInline         = "not_inline"
	OutcomeInvalidParameters = "invalid_parameters"
	OutcomeFailed            = "failed"
)

// Metrics counts macro invocations and times macro executions.
type Metrics struct {
	Executions *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the engine metrics and registers them with r, when not nil.
func NewMetrics(r prometheus.Registerer) *Metrics {
	m := &Metrics{
		Executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xdom",
			Subsystem: "macro",
			Name:      "executions_total",
			Help:      "Number of macro invocations processed, by macro and outcome.",
		}, []string{"macro", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "xdom",
			Subsystem: "macro",
			Name:      "execution_seconds",
			Help:      "Time spent executing macros.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"macro"}),
	}
	if r != nil {
		r.MustRegister(m.Executions, m.Duration)
	}
	return m
}

func (m *Metrics) outcome(id, outcome string) {
	if m == nil {
		return
	}
	m.Executions.WithLabelValues(id, outcome).Inc()
}

func (m *Metrics) observe(id string, seconds float64) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(id).Observe(seconds)
}
