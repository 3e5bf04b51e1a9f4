// Copyright 2025 Certen Protocol
//
// Verification metrics: a small set of Prometheus instruments around
// verification calls, mirroring the teacher's reach for
// github.com/prometheus/client_golang elsewhere in the stack. A caller
// that never registers a collector still gets a working, nil-safe
// VerifierMetrics: every method on a nil *VerifierMetrics is a no-op.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// VerifierMetrics groups the counters and histogram the verifier records
// against. A nil *VerifierMetrics is valid and makes every recording
// method a no-op, so metrics remain strictly optional for callers that
// embed this package as a library.
type VerifierMetrics struct {
	Attempts  prometheus.Counter
	Accepted  prometheus.Counter
	Rejected  *prometheus.CounterVec
	Latency   prometheus.Histogram
}

// NewVerifierMetrics constructs a VerifierMetrics with freshly-created
// collectors. It does not register them against any registry; call
// Register to do so.
func NewVerifierMetrics() *VerifierMetrics {
	return &VerifierMetrics{
		Attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sp1groth16",
			Name:      "verify_attempts_total",
			Help:      "Total number of verify_proof/verify_proof_fixture calls.",
		}),
		Accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sp1groth16",
			Name:      "verify_accepted_total",
			Help:      "Total number of proofs that passed the pairing check.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sp1groth16",
			Name:      "verify_rejected_total",
			Help:      "Total number of proofs rejected, labeled by error kind.",
		}, []string{"reason"}),
		Latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sp1groth16",
			Name:      "verify_duration_seconds",
			Help:      "Wall-clock duration of a single verify call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Register registers every collector against reg. Safe to call on a nil
// receiver (no-op).
func (m *VerifierMetrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}
	for _, c := range []prometheus.Collector{m.Attempts, m.Accepted, m.Rejected, m.Latency} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveAttempt records the start of a verification call and returns a
// function that records its outcome and latency; call it exactly once
// with the terminal reason ("" for accepted).
func (m *VerifierMetrics) ObserveAttempt() func(reason string) {
	if m == nil {
		return func(string) {}
	}
	start := time.Now()
	m.Attempts.Inc()
	return func(reason string) {
		m.Latency.Observe(time.Since(start).Seconds())
		if reason == "" {
			m.Accepted.Inc()
			return
		}
		m.Rejected.WithLabelValues(reason).Inc()
	}
}
