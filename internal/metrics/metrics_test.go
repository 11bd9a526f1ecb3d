package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObservePass(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObservePass("objective", 2, 1, 3)
	m.ObservePass("objective", 0, 0, 0)
	m.ObserveFailure("nextStep")
	m.ObserveResourcesCreated(2)
	m.ObserveResourcesCreated(0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues("objective", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues("objective", "unchanged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues("nextStep", "failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.associations.WithLabelValues("objective", OpCreate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.associations.WithLabelValues("objective", OpUpdate)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.associations.WithLabelValues("objective", OpDestroy)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.resources))

	count, err := testutil.GatherAndCount(reg, "resourcesync_passes_total")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObservePass("objective", 1, 0, 0)
		m.ObserveFailure("objective")
		m.ObserveResourcesCreated(1)
	})
}
