// SPDX-License-Identifier: MIT

package nested

import (
	"math"
	"time"

	"github.com/katalvlaran/sic/events"
)

// Adaptation rules. Evaluated in order; a later match overrides an earlier one.
const (
	reduceNervous  = -0.15 // high movement with high error
	increaseSlow   = 0.15  // low movement with high error
	reduceExcess   = -0.10 // high movement with low error
	minGainChange  = 0.01  // smaller proposals are not emitted
	movementScale  = 5.0   // movement magnitude normalizer
	slowDecayRatio = 10.0  // averages decay this many times slower than energy
)

// AdaptiveConfig parametrizes the adaptive tier.
type AdaptiveConfig struct {
	EnergyThreshold float64
	Tau             time.Duration
	AlphaMin        float64
	AlphaMax        float64
}

// DefaultAdaptiveConfig returns threshold 500, τ = 200ms, α ∈ [0.02, 0.5].
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{
		EnergyThreshold: 500,
		Tau:             200 * time.Millisecond,
		AlphaMin:        0.02,
		AlphaMax:        0.5,
	}
}

// Adaptive tracks time-weighted averages of normalized movement and error and
// proposes a gain change each time accumulated energy crosses the threshold.
type Adaptive struct {
	cfg         AdaptiveConfig
	energy      float64
	errorAvg    float64
	movementAvg float64
	evaluations int
	lastUpdate  time.Time
	now         Clock
}

// NewAdaptive returns an adaptive tier whose averaging clock starts now.
func NewAdaptive(cfg AdaptiveConfig, clock Clock) *Adaptive {
	clock = clock.orDefault()

	return &Adaptive{cfg: cfg, now: clock, lastUpdate: clock()}
}

// Tier implements Processor.
func (a *Adaptive) Tier() Tier { return TierAdaptive }

// ShouldActivate accepts SensorChange and Movement.
func (a *Adaptive) ShouldActivate(e events.Event) bool {
	return e.Kind == events.SensorChange || e.Kind == events.Movement
}

// Process folds e into the averages with α = clamp(1 − exp(−Δt/τ)), Δt being
// the time since the previous call. Once energy reaches the threshold the
// rules are evaluated, energy is reset, and a ParameterAdjust{change, sign}
// is emitted when |change| > 0.01.
func (a *Adaptive) Process(e events.Event) (events.Event, bool) {
	a.energy += math.Abs(e.Magnitude)

	now := a.now()
	dt := now.Sub(a.lastUpdate)
	a.lastUpdate = now
	alpha := clamp(1-math.Exp(-seconds(dt)/seconds(a.cfg.Tau)), a.cfg.AlphaMin, a.cfg.AlphaMax)

	switch e.Kind {
	case events.Movement:
		a.movementAvg = ema(a.movementAvg, math.Min(math.Abs(e.Magnitude)/movementScale, 1), alpha)
	case events.SensorChange:
		a.errorAvg = ema(a.errorAvg, math.Min(math.Abs(e.Magnitude)/sensorScale, 1), alpha)
	}

	if a.energy < a.cfg.EnergyThreshold {
		return events.Event{}, false
	}

	change := a.rule()
	a.energy = 0
	a.evaluations++

	if math.Abs(change) <= minGainChange {
		return events.Event{}, false
	}
	sign := 1
	if change < 0 {
		sign = -1
	}

	return events.WithExtra(events.ParameterAdjust, change, sign).At(now), true
}

func (a *Adaptive) rule() float64 {
	var change float64
	if a.movementAvg > 0.6 && a.errorAvg > 0.1 {
		change = reduceNervous
	}
	if a.movementAvg < 0.2 && a.errorAvg > 0.2 {
		change = increaseSlow
	}
	if a.movementAvg > 0.8 && a.errorAvg < 0.06 {
		change = reduceExcess
	}

	return change
}

// Decay multiplies energy by exp(−dt/τ) and both averages by exp(−dt/10τ).
func (a *Adaptive) Decay(dt time.Duration) {
	tau := seconds(a.cfg.Tau)
	a.energy *= math.Exp(-seconds(dt) / tau)
	slow := math.Exp(-seconds(dt) / (tau * slowDecayRatio))
	a.movementAvg *= slow
	a.errorAvg *= slow
}

// Energy is the magnitude accumulated since the last evaluation.
func (a *Adaptive) Energy() float64 { return a.energy }

// ErrorAvg is the smoothed normalized sensor error in [0,1].
func (a *Adaptive) ErrorAvg() float64 { return a.errorAvg }

// MovementAvg is the smoothed normalized movement in [0,1].
func (a *Adaptive) MovementAvg() float64 { return a.movementAvg }

// Evaluations counts how many times the rules ran.
func (a *Adaptive) Evaluations() int { return a.evaluations }

func ema(avg, sample, alpha float64) float64 {
	return avg*(1-alpha) + sample*alpha
}

func seconds(d time.Duration) float64 { return d.Seconds() }
