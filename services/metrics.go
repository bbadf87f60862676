package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"mamaeEmFormaAPI/internal/progress"
)

// ProgressMetrics counts what the progress engine does. A nil
// *ProgressMetrics records nothing.
type ProgressMetrics struct {
	operations  *prometheus.CounterVec
	transitions *prometheus.CounterVec
	unlocks     *prometheus.CounterVec
	conflicts   *prometheus.CounterVec
}

func NewProgressMetrics(reg prometheus.Registerer) *ProgressMetrics {
	m := &ProgressMetrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_operations_total",
				Help: "Progress operations by name and result",
			},
			[]string{"operation", "result"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_transitions_total",
				Help: "Day transitions applied to user progress",
			},
			[]string{"transition"},
		),
		unlocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_achievement_unlocks_total",
				Help: "Achievements unlocked",
			},
			[]string{"achievement"},
		),
		conflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_version_conflicts_total",
				Help: "Optimistic write conflicts that forced a retry",
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.operations, m.transitions, m.unlocks, m.conflicts)
	return m
}

func (m *ProgressMetrics) observe(op string, out progress.Outcome, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.operations.WithLabelValues(op, "error").Inc()
		return
	}
	m.operations.WithLabelValues(op, "ok").Inc()
	if out.Transition != "" && out.Transition != progress.TransitionNone {
		m.transitions.WithLabelValues(string(out.Transition)).Inc()
	}
	for _, a := range out.Unlocked {
		m.unlocks.WithLabelValues(string(a.ID)).Inc()
	}
}

func (m *ProgressMetrics) conflict(op string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(op).Inc()
}
