// SPDX-License-Identifier: MIT

package events

import (
	"fmt"
	"time"
)

// Kind classifies an Event. The set is closed except for Custom, whose
// meaning is carried by Event.Name.
type Kind int

const (
	// SensorChange: a sensor reading changed; Magnitude is the reading.
	SensorChange Kind = iota
	// Movement: an actuator moved; Magnitude is |Δposition|.
	Movement
	// ParameterAdjust: a tier parameter should change; Extra is the sign.
	ParameterAdjust
	// PatternDetected: reserved for pattern detectors.
	PatternDetected
	// EnvironmentChange: the environment assessment changed; Extra is ±1.
	EnvironmentChange
	// Custom: user-defined; see Event.Name.
	Custom
)

var kindNames = [...]string{
	SensorChange:      "sensor_change",
	Movement:          "movement",
	ParameterAdjust:   "parameter_adjust",
	PatternDetected:   "pattern_detected",
	EnvironmentChange: "environment_change",
	Custom:            "custom",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Event is an immutable value passed between tiers.
type Event struct {
	Kind      Kind
	Name      string // only meaningful for Custom
	Magnitude float64
	Timestamp time.Time
	Extra     int
}

// New returns an event of kind k stamped with the current time.
func New(k Kind, magnitude float64) Event {
	return Event{Kind: k, Magnitude: magnitude, Timestamp: time.Now()}
}

// WithExtra is New with the auxiliary integer set.
func WithExtra(k Kind, magnitude float64, extra int) Event {
	e := New(k, magnitude)
	e.Extra = extra

	return e
}

// NewCustom returns a Custom event carrying name.
func NewCustom(name string, magnitude float64) Event {
	e := New(Custom, magnitude)
	e.Name = name

	return e
}

// At returns a copy of e stamped with ts.
func (e Event) At(ts time.Time) Event {
	e.Timestamp = ts
	return e
}

// Is reports whether e has kind k. For Custom it also requires a matching name.
func (e Event) Is(k Kind, name ...string) bool {
	if e.Kind != k {
		return false
	}
	if k == Custom && len(name) > 0 {
		return e.Name == name[0]
	}

	return true
}

// Age is the time elapsed between the event's timestamp and now.
func (e Event) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// String renders kind, magnitude and extra for logs.
func (e Event) String() string {
	kind := e.Kind.String()
	if e.Kind == Custom && e.Name != "" {
		kind += ":" + e.Name
	}

	return fmt.Sprintf("%s(%g, %d)", kind, e.Magnitude, e.Extra)
}
