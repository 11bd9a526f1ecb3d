// Package metrics counts reconciliation passes and the writes they apply.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "resourcesync"

// Association write operations.
const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDestroy = "destroy"
)

type Metrics struct {
	passes       *prometheus.CounterVec
	associations *prometheus.CounterVec
	resources    prometheus.Counter
}

// New registers the collectors with reg. A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Reconciliation passes by parent kind and outcome.",
		}, []string{"kind", "outcome"}),
		associations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "association_writes_total",
			Help:      "Association rows written by parent kind and operation.",
		}, []string{"kind", "op"}),
		resources: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resources_created_total",
			Help:      "Catalog entries created.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.passes, m.associations, m.resources)
	}

	return m
}

// ObservePass records a committed pass. A pass with no writes counts as unchanged.
func (m *Metrics) ObservePass(kind string, created, updated, destroyed int) {
	if m == nil {
		return
	}

	outcome := "changed"
	if created+updated+destroyed == 0 {
		outcome = "unchanged"
	}
	m.passes.WithLabelValues(kind, outcome).Inc()
	m.associations.WithLabelValues(kind, OpCreate).Add(float64(created))
	m.associations.WithLabelValues(kind, OpUpdate).Add(float64(updated))
	m.associations.WithLabelValues(kind, OpDestroy).Add(float64(destroyed))
}

// ObserveFailure records a pass that rolled back.
func (m *Metrics) ObserveFailure(kind string) {
	if m == nil {
		return
	}

	m.passes.WithLabelValues(kind, "failed").Inc()
}

// ObserveResourcesCreated adds n new catalog entries.
func (m *Metrics) ObserveResourcesCreated(n int) {
	if m == nil || n == 0 {
		return
	}

	m.resources.Add(float64(n))
}
