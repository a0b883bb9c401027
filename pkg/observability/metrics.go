package observability

import (
	"context"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by registry hooks.
type Metrics struct {
	added     prometheus.Counter
	moves     *prometheus.CounterVec
	projects  *prometheus.GaugeVec
	notify    prometheus.Histogram
	listeners prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_projects_added_total",
			Help: "Total number of projects added",
		}),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracker_project_moves_total",
				Help: "Total number of status moves",
			},
			[]string{"from", "to"},
		),
		projects: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tracker_projects",
				Help: "Current number of projects per status",
			},
			[]string{"status"},
		),
		notify: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracker_notify_duration_seconds",
			Help:    "Time spent calling every listener after a mutation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		listeners: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_listeners",
			Help: "Listeners called by the most recent notification",
		}),
	}

	for _, c := range []prometheus.Collector{m.added, m.moves, m.projects, m.notify, m.listeners} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Expose both series from the start so dashboards show zeros rather than gaps.
	for _, s := range domain.Statuses {
		m.projects.WithLabelValues(s.String())
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProjectAdded: func(_ context.Context, e *domain.ProjectEvent) {
			m.added.Inc()
			m.projects.WithLabelValues(e.Project.Status.String()).Inc()
		},
		OnProjectMoved: func(_ context.Context, e *domain.ProjectEvent) {
			m.moves.WithLabelValues(e.From.String(), e.Project.Status.String()).Inc()
			m.projects.WithLabelValues(e.From.String()).Dec()
			m.projects.WithLabelValues(e.Project.Status.String()).Inc()
		},
		OnNotify: func(_ context.Context, e *domain.NotifyEvent) {
			m.notify.Observe(e.Duration.Seconds())
			m.listeners.Set(float64(e.Listeners))
		},
	}
}
