// Package metrics holds the prometheus collectors of the remote session client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Session struct {
	Outcomes *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// New registers the session collectors on reg. A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Session {
	f := promauto.With(reg)
	return &Session{
		Outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kc_session_outcomes_total",
			Help: "Total number of remote calls by outcome kind and HTTP method",
		}, []string{"kind", "method"}),
		Latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kc_session_request_duration_seconds",
			Help:    "Duration of remote calls, including failed ones",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		}, []string{"method"}),
	}
}

func (m *Session) ObserveOutcome(kind, method string, took time.Duration) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(kind, method).Inc()
	m.Latency.WithLabelValues(method).Observe(took.Seconds())
}
