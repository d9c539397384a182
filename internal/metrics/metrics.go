// Package metrics holds the Prometheus counters of the form core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission results.
const (
	ResultAccepted  = "accepted"
	ResultInvalid   = "invalid"
	ResultDuplicate = "duplicate"
	ResultNoSuch    = "no_such_user"
	ResultWrongPass = "wrong_password"
	ResultError     = "error"
)

// Metrics owns a private registry so several instances (tests, the CLI and
// the daemon) never collide on registration. A nil *Metrics records nothing.
type Metrics struct {
	Registry        *prometheus.Registry
	Submissions     *prometheus.CounterVec
	SessionsStarted prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Submissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formauth_submissions_total",
				Help: "Total number of form submissions by mode and result",
			},
			[]string{"mode", "result"},
		),
		SessionsStarted: f.NewCounter(
			prometheus.CounterOpts{
				Name: "formauth_sessions_started_total",
				Help: "Total number of session markers written",
			},
		),
	}
}

func (m *Metrics) ObserveSubmission(mode, result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(mode, result).Inc()
}

func (m *Metrics) ObserveSession() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
