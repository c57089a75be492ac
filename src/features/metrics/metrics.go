// Package metrics exposes Prometheus instrumentation for the search
// pipeline: one counter for finished searches, one for individual
// provider attempts, and a latency histogram per provider.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
)

// Recorder records search pipeline metrics. A nil Recorder is valid and
// records nothing, so the pipeline can run without metrics in tests.
type Recorder struct {
	searches *prometheus.CounterVec
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lyricfinder_searches_total",
			Help: "Finished lyrics searches by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lyricfinder_provider_attempts_total",
			Help: "Individual provider attempts by provider, query mode and outcome.",
		}, []string{"provider", "mode", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lyricfinder_provider_request_seconds",
			Help:    "Provider request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}

	reg.MustRegister(r.searches, r.attempts, r.duration)
	return r
}

// SearchFinished counts one finished search.
func (r *Recorder) SearchFinished(outcome string) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(outcome).Inc()
}

// ProviderAttempt counts one provider attempt and observes its latency.
func (r *Recorder) ProviderAttempt(provider, mode, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.attempts.WithLabelValues(provider, mode, outcome).Inc()
	r.duration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
