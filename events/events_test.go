package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sic/events"
)

// TestNewQueueRejectsBadCapacity refuses zero and negative capacities.
func TestNewQueueRejectsBadCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		q, err := events.NewQueue(c)
		require.Nil(t, q)
		require.ErrorIs(t, err, events.ErrBadCapacity)
	}
}

// TestQueueFIFOAndOverflow checks FIFO order, refusal when full and wrap-around of the ring.
func TestQueueFIFOAndOverflow(t *testing.T) {
	q, err := events.NewQueue(3)
	require.NoError(t, err)
	require.True(t, q.IsEmpty())

	// Empty queue: no value, no error.
	_, ok := q.Dequeue()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)

	for i := 1; i <= 3; i++ {
		require.True(t, q.Enqueue(events.New(events.SensorChange, float64(i))))
	}
	require.True(t, q.IsFull())
	require.False(t, q.Enqueue(events.New(events.SensorChange, 99)), "full queue must refuse")
	require.Equal(t, 3, q.Len())

	// Peek leaves the head in place.
	head, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1.0, head.Magnitude)

	e, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 1.0, e.Magnitude)
	require.Equal(t, 2, q.Len())

	// Wrap around the ring.
	require.True(t, q.Enqueue(events.New(events.Movement, 4)))
	require.False(t, q.Enqueue(events.New(events.Movement, 5)))

	var got []float64
	for !q.IsEmpty() {
		e, _ = q.Dequeue()
		got = append(got, e.Magnitude)
	}
	require.Equal(t, []float64{2, 3, 4}, got)
	require.Equal(t, 3, q.Cap())
}

// TestEventHelpers covers timestamps, Age, Custom names and String forms.
func TestEventHelpers(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := events.WithExtra(events.Movement, 2.5, 7).At(t0)
	require.Equal(t, 7, e.Extra)
	require.Equal(t, 150*time.Millisecond, e.Age(t0.Add(150*time.Millisecond)))
	require.Equal(t, "movement(2.5, 7)", e.String())

	c := events.NewCustom("calibrate", 1)
	require.True(t, c.Is(events.Custom))
	require.True(t, c.Is(events.Custom, "calibrate"))
	require.False(t, c.Is(events.Custom, "other"))
	require.False(t, c.Is(events.SensorChange))
	require.Equal(t, "custom:calibrate(1, 0)", c.String())

	require.Equal(t, "environment_change", events.EnvironmentChange.String())
	require.Equal(t, "kind(42)", events.Kind(42).String())
}
