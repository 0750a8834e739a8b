// SPDX-License-Identifier: MIT

package nested

import (
	"time"

	"github.com/katalvlaran/sic/events"
)

// Environment verdicts carried in EnvironmentChange.Extra.
const (
	Widen  = 1
	Narrow = -1
)

// EnvironmentalConfig parametrizes the environmental tier.
type EnvironmentalConfig struct {
	SampleThreshold int     // evaluate every this many adjustments
	WidenRatio      float64 // oscillation ratio above which limits widen
	NarrowRatio     float64 // oscillation ratio below which limits narrow
	MinAdjustments  int     // narrowing needs strictly more adjustments than this
}

// DefaultEnvironmentalConfig returns 50 samples, widen > 0.5, narrow < 0.2 with > 5 adjustments.
func DefaultEnvironmentalConfig() EnvironmentalConfig {
	return EnvironmentalConfig{SampleThreshold: 50, WidenRatio: 0.5, NarrowRatio: 0.2, MinAdjustments: 5}
}

// Environmental watches the direction of ParameterAdjust proposals and flags
// oscillating or converging behavior.
type Environmental struct {
	cfg          EnvironmentalConfig
	samples      int
	adjustments  int
	oscillations int
	lastDir      int // last nonzero direction seen; survives evaluations
	now          Clock
}

// NewEnvironmental returns an environmental tier with zeroed counters.
func NewEnvironmental(cfg EnvironmentalConfig, clock Clock) *Environmental {
	return &Environmental{cfg: cfg, now: clock.orDefault()}
}

// Tier implements Processor.
func (v *Environmental) Tier() Tier { return TierEnvironmental }

// ShouldActivate accepts ParameterAdjust only.
func (v *Environmental) ShouldActivate(e events.Event) bool { return e.Kind == events.ParameterAdjust }

// Process counts the adjustment and an oscillation when its sign differs from
// the preceding nonzero sign. Every SampleThreshold samples it emits
// EnvironmentChange{ratio, Widen|Narrow} or nothing, then resets its counters.
func (v *Environmental) Process(e events.Event) (events.Event, bool) {
	v.adjustments++
	v.samples++

	if dir := e.Extra; dir != 0 {
		if v.lastDir != 0 && dir != v.lastDir {
			v.oscillations++
		}
		v.lastDir = dir
	}

	if v.samples < v.cfg.SampleThreshold {
		return events.Event{}, false
	}

	ratio := float64(v.oscillations) / float64(max(v.adjustments, 1))
	verdict := 0
	switch {
	case ratio > v.cfg.WidenRatio:
		verdict = Widen
	case ratio < v.cfg.NarrowRatio && v.adjustments > v.cfg.MinAdjustments:
		verdict = Narrow
	}
	v.samples, v.adjustments, v.oscillations = 0, 0, 0

	if verdict == 0 {
		return events.Event{}, false
	}

	return events.WithExtra(events.EnvironmentChange, ratio, verdict).At(v.now()), true
}

// Decay is a no-op: the environmental tier is long-term memory.
func (v *Environmental) Decay(time.Duration) {}

// Samples is the number of adjustments since the last evaluation.
func (v *Environmental) Samples() int { return v.samples }

// Adjustments mirrors Samples; both reset together.
func (v *Environmental) Adjustments() int { return v.adjustments }

// Oscillations is the number of sign flips since the last evaluation.
func (v *Environmental) Oscillations() int { return v.oscillations }
