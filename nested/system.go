// SPDX-License-Identifier: MIT

package nested

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/sic/events"
)

// ErrBadConfig is returned by NewSystem for an unusable Config.
var ErrBadConfig = errors.New("nested: invalid configuration")

// Config gathers every tunable of a System.
type Config struct {
	QueueCapacity int
	MaxIterations int
	DecayFloor    time.Duration // decay runs only when more time than this has passed
	Reactive      ReactiveConfig
	Adaptive      AdaptiveConfig
	Environmental EnvironmentalConfig
}

// DefaultConfig returns capacity 32, 100 iterations, a 1ms decay floor and
// the default tier configurations.
func DefaultConfig() Config {
	return Config{
		QueueCapacity: 32,
		MaxIterations: 100,
		DecayFloor:    time.Millisecond,
		Reactive:      DefaultReactiveConfig(),
		Adaptive:      DefaultAdaptiveConfig(),
		Environmental: DefaultEnvironmentalConfig(),
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.QueueCapacity <= 0:
		return fmt.Errorf("%w: queue capacity %d", ErrBadConfig, c.QueueCapacity)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d", ErrBadConfig, c.MaxIterations)
	case c.DecayFloor < 0:
		return fmt.Errorf("%w: decay floor %s", ErrBadConfig, c.DecayFloor)
	case c.Reactive.Min > c.Reactive.Max:
		return fmt.Errorf("%w: reactive range [%g,%g]", ErrBadConfig, c.Reactive.Min, c.Reactive.Max)
	case c.Adaptive.Tau <= 0:
		return fmt.Errorf("%w: adaptive tau %s", ErrBadConfig, c.Adaptive.Tau)
	case c.Adaptive.AlphaMin > c.Adaptive.AlphaMax:
		return fmt.Errorf("%w: alpha range [%g,%g]", ErrBadConfig, c.Adaptive.AlphaMin, c.Adaptive.AlphaMax)
	case c.Environmental.SampleThreshold <= 0:
		return fmt.Errorf("%w: sample threshold %d", ErrBadConfig, c.Environmental.SampleThreshold)
	}

	return nil
}

// Propagation summarizes one ProcessSensor call.
type Propagation struct {
	Iterations int            // dequeues performed
	Emitted    []events.Event // events produced by tiers and queued, in emission order
	Dropped    int            // events refused by a full queue; never listed in Emitted
	Truncated  bool           // the iteration cap stopped a non-empty queue
	Decayed    time.Duration  // Δt applied by decay, 0 when skipped
}

// Count returns how many emitted events have kind k.
func (p Propagation) Count(k events.Kind) int {
	n := 0
	for _, e := range p.Emitted {
		if e.Kind == k {
			n++
		}
	}

	return n
}

// Snapshot is a read-only view of tier state.
type Snapshot struct {
	Position     float64
	Gain         float64
	Energy       float64
	MovementAvg  float64
	ErrorAvg     float64
	Evaluations  int
	Samples      int
	Oscillations int
	QueueLen     int
}

// Observer is notified after every ProcessSensor call.
type Observer interface {
	ObservePropagation(p Propagation, s Snapshot)
}

// Option customizes a System.
type Option func(*System)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(s *System) { s.cfg = cfg }
}

// WithLogger routes debug output to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers obs.
func WithObserver(obs Observer) Option {
	return func(s *System) { s.obs = obs }
}

// WithClock injects the time source shared by the system and its tiers.
func WithClock(c Clock) Option {
	return func(s *System) { s.now = c }
}

// System is the nested learning controller: three tiers, one queue and a
// decay clock. It is the only code that calls into the tiers.
type System struct {
	cfg Config
	log *zap.Logger
	obs Observer
	now Clock

	reactive      *Reactive
	adaptive      *Adaptive
	environmental *Environmental
	tiers         [3]Processor // fixed dispatch order
	queue         *events.Queue
	lastDecay     time.Time
}

// NewSystem builds a System from DefaultConfig and opts.
//
// Errors:
//   - ErrBadConfig when the resulting Config fails Validate.
func NewSystem(opts ...Option) (*System, error) {
	s := &System{cfg: DefaultConfig(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	s.now = s.now.orDefault()

	q, err := events.NewQueue(s.cfg.QueueCapacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	s.queue = q
	s.reactive = NewReactive(s.cfg.Reactive, s.now)
	s.adaptive = NewAdaptive(s.cfg.Adaptive, s.now)
	s.environmental = NewEnvironmental(s.cfg.Environmental, s.now)
	s.tiers = [3]Processor{s.reactive, s.adaptive, s.environmental}
	s.lastDecay = s.now()

	return s, nil
}

// ProcessSensor injects a SensorChange and propagates it, and everything it
// triggers, through the tiers until the queue drains or MaxIterations
// dequeues have happened. Events refused by a full queue are dropped and
// counted. Afterwards, if more than DecayFloor has passed since the last
// decay, every tier is decayed by that interval.
func (s *System) ProcessSensor(value float64) Propagation {
	var p Propagation
	now := s.now()
	if !s.queue.Enqueue(events.New(events.SensorChange, value).At(now)) {
		p.Dropped++
		s.log.Debug("sensor event dropped", zap.Float64("value", value))
	}

	for !s.queue.IsEmpty() && p.Iterations < s.cfg.MaxIterations {
		e, _ := s.queue.Dequeue()
		p.Iterations++
		for _, t := range s.tiers {
			if !t.ShouldActivate(e) {
				continue
			}
			out, ok := t.Process(e)
			if !ok {
				continue
			}
			if !s.queue.Enqueue(out) {
				p.Dropped++
				s.log.Debug("event dropped", zap.Stringer("tier", t.Tier()), zap.Stringer("event", out))
				continue
			}
			p.Emitted = append(p.Emitted, out)
			s.log.Debug("event emitted", zap.Stringer("tier", t.Tier()), zap.Stringer("event", out))
		}
	}
	p.Truncated = !s.queue.IsEmpty()

	if dt := s.now().Sub(s.lastDecay); dt > s.cfg.DecayFloor {
		for _, t := range s.tiers {
			t.Decay(dt)
		}
		s.lastDecay = s.lastDecay.Add(dt)
		p.Decayed = dt
	}

	if s.obs != nil {
		s.obs.ObservePropagation(p, s.Snapshot())
	}

	return p
}

// Snapshot returns the current tier telemetry.
func (s *System) Snapshot() Snapshot {
	return Snapshot{
		Position:     s.reactive.Position(),
		Gain:         s.reactive.Gain(),
		Energy:       s.adaptive.Energy(),
		MovementAvg:  s.adaptive.MovementAvg(),
		ErrorAvg:     s.adaptive.ErrorAvg(),
		Evaluations:  s.adaptive.Evaluations(),
		Samples:      s.environmental.Samples(),
		Oscillations: s.environmental.Oscillations(),
		QueueLen:     s.queue.Len(),
	}
}

// Reactive exposes the reactive tier.
func (s *System) Reactive() *Reactive { return s.reactive }

// Adaptive exposes the adaptive tier.
func (s *System) Adaptive() *Adaptive { return s.adaptive }

// Environmental exposes the environmental tier.
func (s *System) Environmental() *Environmental { return s.environmental }

// Config returns the configuration in use.
func (s *System) Config() Config { return s.cfg }
