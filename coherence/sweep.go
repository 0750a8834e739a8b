// SPDX-License-Identifier: MIT

package coherence

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sweep range used by DefaultEpsilons.
const (
	SweepMin = 0.01
	SweepMax = 0.99
)

// SweepPoint is one sample of the percolation curve.
type SweepPoint struct {
	Epsilon float64
	// Clusters is the component count after friction at Epsilon.
	Clusters int
	// GiantFraction is the size of the largest component divided by N.
	GiantFraction float64
}

// DefaultEpsilons returns steps evenly spaced thresholds over
// [SweepMin, SweepMax]. steps ≤ 0 yields nil; steps == 1 yields {SweepMin}.
func DefaultEpsilons(steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	out := make([]float64, steps)
	if steps == 1 {
		out[0] = SweepMin
		return out
	}
	step := (SweepMax - SweepMin) / float64(steps-1)
	for i := range out {
		out[i] = SweepMin + float64(i)*step
	}

	return out
}

// Sweep evaluates friction at every ε in epsilons and reports the resulting
// cluster structure. m itself is never mutated: each evaluation runs on a
// private clone, at most Options.Workers at a time.
//
// Points are returned in the order of epsilons.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrBadThreshold if any ε is NaN or ±Inf.
//   - ctx.Err() if ctx is cancelled before all points are evaluated.
func Sweep(ctx context.Context, m *Matrix, epsilons []float64, opts ...Option) ([]SweepPoint, error) {
	if m == nil {
		return nil, coherenceErrorf(opSweep, ErrNilMatrix)
	}
	for _, eps := range epsilons {
		if !validThreshold(eps) {
			return nil, coherenceErrorf(opSweep, fmt.Errorf("%w: epsilon=%v", ErrBadThreshold, eps))
		}
	}
	o := buildOptions(opts)

	points := make([]SweepPoint, len(epsilons))
	n := m.Len()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, eps := range epsilons {
		i, eps := i, eps
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			work := m.Clone()
			work.ApplyFriction(eps)
			labels := work.FindClusters()

			p := SweepPoint{Epsilon: eps, Clusters: labels.Count()}
			if n > 0 {
				giant := 0
				for _, s := range labels.Sizes() {
					giant = max(giant, s)
				}
				p.GiantFraction = float64(giant) / float64(n)
			}
			points[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, coherenceErrorf(opSweep, err)
	}

	o.Logger.Debug("sweep complete", zap.Int("n", n), zap.Int("points", len(points)))

	return points, nil
}

// CriticalEpsilon returns the threshold just past the largest increase in
// cluster count between consecutive points: the percolation transition.
// ok is false when fewer than two points are given or the count never rises.
func CriticalEpsilon(points []SweepPoint) (eps float64, ok bool) {
	best := 0
	for i := 1; i < len(points); i++ {
		if jump := points[i].Clusters - points[i-1].Clusters; jump > best {
			best = jump
			eps = points[i].Epsilon
			ok = true
		}
	}

	return eps, ok
}
