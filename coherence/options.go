// SPDX-License-Identifier: MIT

package coherence

import (
	"runtime"

	"go.uber.org/zap"
)

// Observer receives every finished analysis. Implementations must be cheap;
// they run synchronously on the caller's goroutine.
type Observer interface {
	ObserveAnalysis(r Report)
}

// Option configures Analyze and Sweep.
type Option func(*Options)

// Options holds the knobs shared by the analysis entry points.
type Options struct {
	Logger   *zap.Logger
	Observer Observer
	// Workers bounds the goroutines Sweep runs at once; ≤ 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns a silent logger, no observer and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger routes diagnostics to l. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers obs to receive every Report produced by Analyze.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithWorkers bounds Sweep concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	return o
}
