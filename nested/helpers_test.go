package nested_test

import (
	"time"

	"github.com/katalvlaran/sic/events"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sensor(m float64) events.Event   { return events.New(events.SensorChange, m) }
func movement(m float64) events.Event { return events.New(events.Movement, m) }
func adjust(dir int) events.Event {
	return events.WithExtra(events.ParameterAdjust, 0.15*float64(dir), dir)
}
