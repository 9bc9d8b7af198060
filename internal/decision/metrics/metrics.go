package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Evidence gathering latencies by source
	EvidenceLatency *prometheus.HistogramVec

	// Adapter outcomes by adapter and status (found, no_claims, ok, degraded, ...)
	AdapterOutcome *prometheus.CounterVec

	// Verdicts by label, source and policy
	VerdictOutcome *prometheus.CounterVec

	// Circuit breaker state per adapter (1 = open)
	CircuitOpen *prometheus.GaugeVec

	// Overall evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance registered with the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers decision metrics against reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EvidenceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "veracity_decision_evidence_duration_seconds",
			Help:    "Duration of evidence gathering operations by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"source"}), // source: "fact_check", "classifier", "credibility"

		AdapterOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veracity_decision_adapter_outcomes_total",
			Help: "Evidence adapter outcomes by adapter and status",
		}, []string{"adapter", "status"}),

		VerdictOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veracity_decision_verdicts_total",
			Help: "Total verdicts by label, source and policy",
		}, []string{"label", "source", "policy"}),

		CircuitOpen: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "veracity_decision_circuit_open",
			Help: "Whether the adapter's circuit breaker is open (1) or closed (0)",
		}, []string{"adapter"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "veracity_decision_evaluate_duration_seconds",
			Help:    "Duration of full check evaluation including evidence gathering",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// ObserveEvidenceLatency records the duration of fetching evidence from a source.
func (m *Metrics) ObserveEvidenceLatency(source string, d time.Duration) {
	if m != nil {
		m.EvidenceLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementAdapterOutcome records how an adapter call ended.
func (m *Metrics) IncrementAdapterOutcome(adapter, status string) {
	if m != nil {
		m.AdapterOutcome.WithLabelValues(adapter, status).Inc()
	}
}

// IncrementVerdict records a verdict.
func (m *Metrics) IncrementVerdict(label, source, policy string) {
	if m != nil {
		m.VerdictOutcome.WithLabelValues(label, source, policy).Inc()
	}
}

// SetCircuitOpen records a breaker transition.
func (m *Metrics) SetCircuitOpen(adapter string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.CircuitOpen.WithLabelValues(adapter).Set(v)
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
