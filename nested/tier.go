// SPDX-License-Identifier: MIT

package nested

import (
	"time"

	"github.com/katalvlaran/sic/events"
)

// Tier identifies one of the three processing levels.
type Tier int

const (
	TierReactive Tier = iota
	TierAdaptive
	TierEnvironmental
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierReactive:
		return "reactive"
	case TierAdaptive:
		return "adaptive"
	case TierEnvironmental:
		return "environmental"
	default:
		return "unknown"
	}
}

// Processor is the capability set shared by the tiers.
type Processor interface {
	// Tier names the level this processor runs at.
	Tier() Tier
	// ShouldActivate is the resonance condition for e.
	ShouldActivate(e events.Event) bool
	// Process consumes e and optionally emits a follow-up event.
	Process(e events.Event) (events.Event, bool)
	// Decay ages the processor's memory by dt.
	Decay(dt time.Duration)
}

// Clock returns the current time.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}

	return c
}
