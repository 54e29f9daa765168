// Package metrics records flow activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/resumescan/internal/flow"
)

// Namespace prefixes every metric name.
const Namespace = "resumescan"

// Recorder receives flow events worth counting.
type Recorder interface {
	// SessionStarted marks a session as active.
	SessionStarted()
	// SessionEnded marks a session as no longer active.
	SessionEnded()
	// StageChanged records a transition and how long the previous stage lasted.
	StageChanged(from, to flow.Stage, dwell time.Duration)
	// UploadAccepted counts a file that passed validation, by kind.
	UploadAccepted(kind string)
	// UploadRejected counts a file that failed validation.
	UploadRejected()
}

// Metrics is a Recorder backed by its own Prometheus registry.
type Metrics struct {
	registry       *prometheus.Registry
	handler        http.Handler
	transitions    *prometheus.CounterVec
	dwell          *prometheus.HistogramVec
	uploads        *prometheus.CounterVec
	activeSessions prometheus.Gauge
	completed      prometheus.Counter
}

// New creates a Metrics with Go runtime and process collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "stage_transitions_total",
			Help:      "Stage transitions by source and destination stage.",
		}, []string{"from", "to"}),
		dwell: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_dwell_seconds",
			Help:      "Time spent in a stage before it was left.",
			Buckets:   []float64{0.5, 1, 2, 3, 5, 8, 13, 30, 60, 120},
		}, []string{"stage"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "uploads_total",
			Help:      "Uploaded files by validation result.",
		}, []string{"result", "kind"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently in progress.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sessions_completed_total",
			Help:      "Sessions that reached the Results stage.",
		}),
	}
	reg.MustRegister(
		m.transitions, m.dwell, m.uploads, m.activeSessions, m.completed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WritePrometheus serves the metrics in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// SessionStarted counts a new active session.
func (m *Metrics) SessionStarted() { m.activeSessions.Inc() }

// SessionEnded releases an active session.
func (m *Metrics) SessionEnded() { m.activeSessions.Dec() }

// StageChanged records a transition and how long the session stayed in from.
func (m *Metrics) StageChanged(from, to flow.Stage, dwell time.Duration) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
	m.dwell.WithLabelValues(from.String()).Observe(dwell.Seconds())
	if to.Terminal() {
		m.completed.Inc()
	}
}

// UploadAccepted counts an accepted résumé of the given kind (pdf or docx).
func (m *Metrics) UploadAccepted(kind string) { m.uploads.WithLabelValues("accepted", kind).Inc() }

// UploadRejected counts a file refused by the upload check.
func (m *Metrics) UploadRejected() { m.uploads.WithLabelValues("rejected", "").Inc() }

// Nop discards everything.
type Nop struct{}

func (Nop) SessionStarted()                               {}
func (Nop) SessionEnded()                                 {}
func (Nop) StageChanged(_, _ flow.Stage, _ time.Duration) {}
func (Nop) UploadAccepted(string)                         {}
func (Nop) UploadRejected()                               {}

// Interface compliance checks.
var (
	_ Recorder = (*Metrics)(nil)
	_ Recorder = Nop{}
)

// Track subscribes rec to c and marks the session active. The returned
// function marks it ended and is safe to call more than once.
func Track(c *flow.Controller, rec Recorder) (done func()) {
	rec.SessionStarted()
	c.Subscribe(flow.ObserverFunc(func(ch flow.StageChange) {
		rec.StageChanged(ch.From, ch.To, ch.Dwell)
	}))
	var once sync.Once
	return func() { once.Do(rec.SessionEnded) }
}
