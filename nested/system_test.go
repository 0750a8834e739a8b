package nested_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sic/events"
	"github.com/katalvlaran/sic/nested"
)

var referenceReadings = []float64{100, -50, 200, -150, 80, -30, 10, -5}

type recorder struct {
	props []nested.Propagation
	snaps []nested.Snapshot
}

func (r *recorder) ObservePropagation(p nested.Propagation, s nested.Snapshot) {
	r.props = append(r.props, p)
	r.snaps = append(r.snaps, s)
}

// TestNewSystemValidatesConfig rejects unusable configurations and accepts the defaults.
func TestNewSystemValidatesConfig(t *testing.T) {
	cfg := nested.DefaultConfig()
	cfg.QueueCapacity = 0
	_, err := nested.NewSystem(nested.WithConfig(cfg))
	require.ErrorIs(t, err, nested.ErrBadConfig)

	cfg = nested.DefaultConfig()
	cfg.Adaptive.Tau = 0
	_, err = nested.NewSystem(nested.WithConfig(cfg))
	require.ErrorIs(t, err, nested.ErrBadConfig)

	sys, err := nested.NewSystem()
	require.NoError(t, err)
	require.Equal(t, 32, sys.Config().QueueCapacity)
	require.Equal(t, 90.0, sys.Snapshot().Position)
}

// TestReferenceSequence feeds the reference readings with a frozen clock and follows energy and position.
func TestReferenceSequence(t *testing.T) {
	clk := newFakeClock()
	rec := &recorder{}
	sys, err := nested.NewSystem(nested.WithClock(clk.Now), nested.WithObserver(rec))
	require.NoError(t, err)

	for _, v := range referenceReadings {
		p := sys.ProcessSensor(v)
		require.False(t, p.Truncated)
		require.Zero(t, p.Dropped)
		require.Zero(t, p.Decayed, "frozen clock never decays")

		s := sys.Snapshot()
		require.GreaterOrEqual(t, s.Position, 0.0)
		require.LessOrEqual(t, s.Position, 180.0)
		require.Zero(t, s.QueueLen)
	}
	require.Len(t, rec.props, len(referenceReadings))

	// 100 → one Movement, two dequeues.
	require.Equal(t, 2, rec.props[0].Iterations)
	require.Equal(t, 1, rec.props[0].Count(events.Movement))
	// -30 sits on the dead zone edge: nothing is emitted.
	require.Equal(t, 1, rec.props[5].Iterations)
	require.Empty(t, rec.props[5].Emitted)

	s := sys.Snapshot()
	require.InDelta(t, 91.7578125, s.Position, 1e-12)
	require.Equal(t, 0.5, s.Gain)
	// Energy crossed 500 while handling -150 and was reset there.
	require.GreaterOrEqual(t, s.Evaluations, 1)
	require.InDelta(t, 127.24609375, s.Energy, 1e-9)
	require.Equal(t, 0, rec.snaps[2].Evaluations)
	require.Equal(t, 1, rec.snaps[3].Evaluations)
}

// TestProcessSensorDecay decays only once more than the floor has elapsed since the last decay.
func TestProcessSensorDecay(t *testing.T) {
	clk := newFakeClock()
	sys, err := nested.NewSystem(nested.WithClock(clk.Now))
	require.NoError(t, err)

	p := sys.ProcessSensor(100)
	require.Zero(t, p.Decayed)
	before := sys.Adaptive().Energy()

	// Below the floor: no decay.
	clk.Advance(time.Millisecond)
	p = sys.ProcessSensor(5)
	require.Zero(t, p.Decayed)
	require.InDelta(t, before+5, sys.Adaptive().Energy(), 1e-12)

	clk.Advance(199 * time.Millisecond)
	p = sys.ProcessSensor(5)
	require.Equal(t, 200*time.Millisecond, p.Decayed)
	require.InDelta(t, (before+10)*math.Exp(-1), sys.Adaptive().Energy(), 1e-9)
}

// TestProcessSensorOverflow drops what a full queue refuses, counts it and logs it at debug level.
func TestProcessSensorOverflow(t *testing.T) {
	clk := newFakeClock()
	cfg := nested.DefaultConfig()
	cfg.QueueCapacity = 1
	cfg.Adaptive.EnergyThreshold = 100

	core, logs := observer.New(zap.DebugLevel)
	sys, err := nested.NewSystem(nested.WithConfig(cfg), nested.WithClock(clk.Now), nested.WithLogger(zap.New(core)))
	require.NoError(t, err)

	clk.Advance(time.Second) // α = 0.5 on the first adaptive update
	p := sys.ProcessSensor(512)

	// Reactive queues a Movement; the adaptive ParameterAdjust finds the queue
	// full and is counted as dropped only.
	require.Len(t, p.Emitted, 1)
	require.Equal(t, 1, p.Count(events.Movement))
	require.Zero(t, p.Count(events.ParameterAdjust))
	require.Equal(t, 1, p.Dropped)
	require.Equal(t, 2, p.Iterations)
	require.Equal(t, 0.5, sys.Reactive().Gain(), "gain proposals are advisory")
	require.Equal(t, 1, logs.FilterMessage("event dropped").Len())
}

// TestProcessSensorIterationCap stops at MaxIterations and leaves the remainder queued for the next call.
func TestProcessSensorIterationCap(t *testing.T) {
	cfg := nested.DefaultConfig()
	cfg.MaxIterations = 1
	sys, err := nested.NewSystem(nested.WithConfig(cfg), nested.WithClock(newFakeClock().Now))
	require.NoError(t, err)

	p := sys.ProcessSensor(100)
	require.Equal(t, 1, p.Iterations)
	require.True(t, p.Truncated)
	require.Equal(t, 1, sys.Snapshot().QueueLen)

	// The leftover Movement is handled first on the next call.
	p = sys.ProcessSensor(100)
	require.Equal(t, 1, p.Iterations)
	require.Empty(t, p.Emitted)
	require.Equal(t, 1, sys.Snapshot().QueueLen)
}
