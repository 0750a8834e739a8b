// SPDX-License-Identifier: MIT

package nested

import (
	"math"
	"time"

	"github.com/katalvlaran/sic/events"
)

// sensorScale is the full-scale sensor reading; stepScale converts a
// full-scale error at unit gain into degrees of movement.
const (
	sensorScale = 512.0
	stepScale   = 10.0
)

// ReactiveConfig parametrizes the reactive tier.
type ReactiveConfig struct {
	Gain     float64
	DeadZone float64 // readings with |m| ≤ DeadZone are ignored
	Position float64 // initial actuator position
	Min, Max float64 // position clamp
}

// DefaultReactiveConfig returns gain 0.5, dead zone 30, centred at 90 in [0,180].
func DefaultReactiveConfig() ReactiveConfig {
	return ReactiveConfig{Gain: 0.5, DeadZone: 30, Position: 90, Min: 0, Max: 180}
}

// Reactive maps sensor errors to proportional actuator moves.
type Reactive struct {
	cfg      ReactiveConfig
	position float64
	now      Clock
}

// NewReactive returns a reactive tier at cfg.Position. A nil clock means time.Now.
func NewReactive(cfg ReactiveConfig, clock Clock) *Reactive {
	return &Reactive{cfg: cfg, position: cfg.Position, now: clock.orDefault()}
}

// Tier implements Processor.
func (r *Reactive) Tier() Tier { return TierReactive }

// ShouldActivate accepts SensorChange only.
func (r *Reactive) ShouldActivate(e events.Event) bool { return e.Kind == events.SensorChange }

// Process moves the actuator by Gain·(m/512)·10, clamped to [Min, Max], and
// emits Movement{|delta|, int(|m|)}. Readings inside the dead zone are ignored.
func (r *Reactive) Process(e events.Event) (events.Event, bool) {
	m := e.Magnitude
	if math.Abs(m) <= r.cfg.DeadZone {
		return events.Event{}, false
	}
	delta := r.cfg.Gain * (m / sensorScale) * stepScale
	r.position = clamp(r.position+delta, r.cfg.Min, r.cfg.Max)

	return events.WithExtra(events.Movement, math.Abs(delta), int(math.Abs(m))).At(r.now()), true
}

// Decay is a no-op: the reactive tier keeps no memory.
func (r *Reactive) Decay(time.Duration) {}

// Position is the current actuator position.
func (r *Reactive) Position() float64 { return r.position }

// Gain is the proportional gain in use.
func (r *Reactive) Gain() float64 { return r.cfg.Gain }

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
