package telemetry_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sic/coherence"
	"github.com/katalvlaran/sic/contexts"
	"github.com/katalvlaran/sic/events"
	"github.com/katalvlaran/sic/nested"
	"github.com/katalvlaran/sic/telemetry"
)

func newTestCollector(t *testing.T) (*telemetry.Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()

	return telemetry.NewCollector(reg), reg
}

// TestObservePropagation checks that one propagation summary updates every controller metric.
func TestObservePropagation(t *testing.T) {
	c, _ := newTestCollector(t)

	p := nested.Propagation{
		Iterations: 3,
		Dropped:    1,
		Truncated:  true,
		Emitted: []events.Event{
			events.New(events.Movement, 1),
			events.WithExtra(events.ParameterAdjust, -0.15, -1),
		},
	}
	c.ObservePropagation(p, nested.Snapshot{Position: 91.5, Gain: 0.5, Energy: 42})

	require.Equal(t, 1.0, testutil.ToFloat64(c.SensorReadings))
	require.Equal(t, 3.0, testutil.ToFloat64(c.Dispatched)) // one per dequeue
	require.Equal(t, 1.0, testutil.ToFloat64(c.Dropped))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Truncations))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Emitted.WithLabelValues("movement")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Adaptations.WithLabelValues("decrease")))
	require.Equal(t, 91.5, testutil.ToFloat64(c.Position))
	require.Equal(t, 42.0, testutil.ToFloat64(c.Energy))
}

// TestCollectorAsSystemObserver drives a real System and compares the exported text for the drop counter.
func TestCollectorAsSystemObserver(t *testing.T) {
	c, reg := newTestCollector(t)
	sys, err := nested.NewSystem(nested.WithObserver(c))
	require.NoError(t, err)

	sys.ProcessSensor(100)
	sys.ProcessSensor(10)

	require.Equal(t, 2.0, testutil.ToFloat64(c.SensorReadings))
	require.Equal(t, 3.0, testutil.ToFloat64(c.Dispatched))
	require.InDelta(t, 90.9765625, testutil.ToFloat64(c.Position), 1e-12)

	expected := `
# HELP sic_nested_events_dropped_total Events discarded by a full queue
# TYPE sic_nested_events_dropped_total counter
sic_nested_events_dropped_total 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "sic_nested_events_dropped_total"))
}

// TestObserveAnalysis records the cluster and collapse gauges of a two-cluster analysis.
func TestObserveAnalysis(t *testing.T) {
	c, _ := newTestCollector(t)
	cs := []contexts.Context{
		contexts.WithParams(contexts.KindThermal, contexts.Param{Name: "t", Value: 20}),
		contexts.WithParams(contexts.KindThermal, contexts.Param{Name: "t", Value: 21}),
		contexts.WithParams(contexts.KindSocial, contexts.Param{Name: "d", Value: 80}),
	}
	_, err := coherence.Analyze(cs, 0.1, 0.5, coherence.WithObserver(c))
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(c.Analyses))
	require.Equal(t, 2.0, testutil.ToFloat64(c.Clusters))
	require.Equal(t, 2.0, testutil.ToFloat64(c.CollapsedClusters))
	require.Greater(t, testutil.ToFloat64(c.Gamma.WithLabelValues("raw")), 0.0)
}

// TestDroppedEventsAreNotCountedAsEmitted wires the collector to a system with
// a one-slot queue, where the adaptive proposal always finds the queue full.
func TestDroppedEventsAreNotCountedAsEmitted(t *testing.T) {
	c, _ := newTestCollector(t)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := nested.DefaultConfig()
	cfg.QueueCapacity = 1
	cfg.Adaptive.EnergyThreshold = 100
	sys, err := nested.NewSystem(
		nested.WithConfig(cfg),
		nested.WithClock(func() time.Time { return now }),
		nested.WithObserver(c),
	)
	require.NoError(t, err)

	now = now.Add(time.Second) // α = 0.5 so the slow-system rule fires
	sys.ProcessSensor(512)

	require.Equal(t, 1.0, testutil.ToFloat64(c.Dropped))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Emitted.WithLabelValues("movement")))
	require.Zero(t, testutil.ToFloat64(c.Emitted.WithLabelValues("parameter_adjust")))
	require.Zero(t, testutil.ToFloat64(c.Adaptations.WithLabelValues("increase")))
}
