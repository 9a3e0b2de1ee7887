package metrics_test

import (
	"testing"

	"fittracker/fitness-app/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRegistersOnItsRegistry(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	m.CounterRequests.WithLabelValues("GET", "200").Inc()
	m.CounterToggles.Inc()
	m.CounterToggles.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterToggles))
	count, err := testutil.GatherAndCount(reg, "fittracker_test_request", "fittracker_test_completion_toggles")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSetupPrometheusHasRuntimeCollectors(t *testing.T) {
	reg := metrics.SetupPrometheus()
	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["go_build_info"])
}
