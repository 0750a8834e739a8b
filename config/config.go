// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sic/nested"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes environment overrides, e.g. SIC_COHERENCE_EPSILON.
const EnvPrefix = "SIC"

// Config holds the complete runtime configuration.
type Config struct {
	Coherence CoherenceConfig `mapstructure:"coherence" yaml:"coherence"`
	Nested    NestedConfig    `mapstructure:"nested" yaml:"nested"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
}

// CoherenceConfig holds analysis thresholds.
type CoherenceConfig struct {
	Epsilon    float64 `mapstructure:"epsilon" yaml:"epsilon"`
	Theta      float64 `mapstructure:"theta" yaml:"theta"`
	SweepSteps int     `mapstructure:"sweep_steps" yaml:"sweep_steps"`
	Workers    int     `mapstructure:"workers" yaml:"workers"` // 0 = GOMAXPROCS
}

// NestedConfig mirrors nested.Config with file-friendly names.
type NestedConfig struct {
	QueueCapacity int           `mapstructure:"queue_capacity" yaml:"queue_capacity"`
	MaxIterations int           `mapstructure:"max_iterations" yaml:"max_iterations"`
	DecayFloor    time.Duration `mapstructure:"decay_floor" yaml:"decay_floor"`

	Reactive      ReactiveConfig      `mapstructure:"reactive" yaml:"reactive"`
	Adaptive      AdaptiveConfig      `mapstructure:"adaptive" yaml:"adaptive"`
	Environmental EnvironmentalConfig `mapstructure:"environmental" yaml:"environmental"`
}

// ReactiveConfig configures the reactive tier.
type ReactiveConfig struct {
	Gain     float64 `mapstructure:"gain" yaml:"gain"`
	DeadZone float64 `mapstructure:"dead_zone" yaml:"dead_zone"`
	Position float64 `mapstructure:"position" yaml:"position"`
	Min      float64 `mapstructure:"min" yaml:"min"`
	Max      float64 `mapstructure:"max" yaml:"max"`
}

// AdaptiveConfig configures the adaptive tier.
type AdaptiveConfig struct {
	EnergyThreshold float64       `mapstructure:"energy_threshold" yaml:"energy_threshold"`
	Tau             time.Duration `mapstructure:"tau" yaml:"tau"`
	AlphaMin        float64       `mapstructure:"alpha_min" yaml:"alpha_min"`
	AlphaMax        float64       `mapstructure:"alpha_max" yaml:"alpha_max"`
}

// EnvironmentalConfig configures the environmental tier.
type EnvironmentalConfig struct {
	SampleThreshold int     `mapstructure:"sample_threshold" yaml:"sample_threshold"`
	WidenRatio      float64 `mapstructure:"widen_ratio" yaml:"widen_ratio"`
	NarrowRatio     float64 `mapstructure:"narrow_ratio" yaml:"narrow_ratio"`
	MinAdjustments  int     `mapstructure:"min_adjustments" yaml:"min_adjustments"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // json or console
}

// MetricsConfig toggles the Prometheus collector.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns the reference settings: ε = 0.1, θ = 0.5 and the default
// controller.
func Default() *Config {
	n := nested.DefaultConfig()

	return &Config{
		Coherence: CoherenceConfig{Epsilon: 0.1, Theta: 0.5, SweepSteps: 50},
		Nested: NestedConfig{
			QueueCapacity: n.QueueCapacity,
			MaxIterations: n.MaxIterations,
			DecayFloor:    n.DecayFloor,
			Reactive: ReactiveConfig{
				Gain: n.Reactive.Gain, DeadZone: n.Reactive.DeadZone, Position: n.Reactive.Position,
				Min: n.Reactive.Min, Max: n.Reactive.Max,
			},
			Adaptive: AdaptiveConfig{
				EnergyThreshold: n.Adaptive.EnergyThreshold, Tau: n.Adaptive.Tau,
				AlphaMin: n.Adaptive.AlphaMin, AlphaMax: n.Adaptive.AlphaMax,
			},
			Environmental: EnvironmentalConfig{
				SampleThreshold: n.Environmental.SampleThreshold,
				WidenRatio:      n.Environmental.WidenRatio,
				NarrowRatio:     n.Environmental.NarrowRatio,
				MinAdjustments:  n.Environmental.MinAdjustments,
			},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path (YAML) over the defaults and applies SIC_* environment
// overrides. An empty path uses defaults and the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("coherence.epsilon", d.Coherence.Epsilon)
	v.SetDefault("coherence.theta", d.Coherence.Theta)
	v.SetDefault("coherence.sweep_steps", d.Coherence.SweepSteps)
	v.SetDefault("coherence.workers", d.Coherence.Workers)

	v.SetDefault("nested.queue_capacity", d.Nested.QueueCapacity)
	v.SetDefault("nested.max_iterations", d.Nested.MaxIterations)
	v.SetDefault("nested.decay_floor", d.Nested.DecayFloor)
	v.SetDefault("nested.reactive.gain", d.Nested.Reactive.Gain)
	v.SetDefault("nested.reactive.dead_zone", d.Nested.Reactive.DeadZone)
	v.SetDefault("nested.reactive.position", d.Nested.Reactive.Position)
	v.SetDefault("nested.reactive.min", d.Nested.Reactive.Min)
	v.SetDefault("nested.reactive.max", d.Nested.Reactive.Max)
	v.SetDefault("nested.adaptive.energy_threshold", d.Nested.Adaptive.EnergyThreshold)
	v.SetDefault("nested.adaptive.tau", d.Nested.Adaptive.Tau)
	v.SetDefault("nested.adaptive.alpha_min", d.Nested.Adaptive.AlphaMin)
	v.SetDefault("nested.adaptive.alpha_max", d.Nested.Adaptive.AlphaMax)
	v.SetDefault("nested.environmental.sample_threshold", d.Nested.Environmental.SampleThreshold)
	v.SetDefault("nested.environmental.widen_ratio", d.Nested.Environmental.WidenRatio)
	v.SetDefault("nested.environmental.narrow_ratio", d.Nested.Environmental.NarrowRatio)
	v.SetDefault("nested.environmental.min_adjustments", d.Nested.Environmental.MinAdjustments)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Coherence.Epsilon < 0 || c.Coherence.Epsilon > 1:
		return fmt.Errorf("%w: coherence.epsilon %g not in [0,1]", ErrInvalid, c.Coherence.Epsilon)
	case c.Coherence.Theta < 0 || c.Coherence.Theta > 1:
		return fmt.Errorf("%w: coherence.theta %g not in [0,1]", ErrInvalid, c.Coherence.Theta)
	case c.Coherence.SweepSteps <= 0:
		return fmt.Errorf("%w: coherence.sweep_steps %d", ErrInvalid, c.Coherence.SweepSteps)
	case c.Coherence.Workers < 0:
		return fmt.Errorf("%w: coherence.workers %d", ErrInvalid, c.Coherence.Workers)
	case c.Logging.Format != "json" && c.Logging.Format != "console":
		return fmt.Errorf("%w: logging.format %q (must be json or console)", ErrInvalid, c.Logging.Format)
	}
	if err := c.NestedConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// NestedConfig converts the controller section for nested.WithConfig.
func (c *Config) NestedConfig() nested.Config {
	n := c.Nested

	return nested.Config{
		QueueCapacity: n.QueueCapacity,
		MaxIterations: n.MaxIterations,
		DecayFloor:    n.DecayFloor,
		Reactive: nested.ReactiveConfig{
			Gain: n.Reactive.Gain, DeadZone: n.Reactive.DeadZone, Position: n.Reactive.Position,
			Min: n.Reactive.Min, Max: n.Reactive.Max,
		},
		Adaptive: nested.AdaptiveConfig{
			EnergyThreshold: n.Adaptive.EnergyThreshold, Tau: n.Adaptive.Tau,
			AlphaMin: n.Adaptive.AlphaMin, AlphaMax: n.Adaptive.AlphaMax,
		},
		Environmental: nested.EnvironmentalConfig{
			SampleThreshold: n.Environmental.SampleThreshold,
			WidenRatio:      n.Environmental.WidenRatio,
			NarrowRatio:     n.Environmental.NarrowRatio,
			MinAdjustments:  n.Environmental.MinAdjustments,
		},
	}
}
