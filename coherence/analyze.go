// SPDX-License-Identifier: MIT

package coherence

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/sic/contexts"
)

// ClusterReport is the local collapse verdict of one cluster.
type ClusterReport struct {
	ID       int
	Indices  []int
	Collapse Collapse
}

// Report is the result of one full analysis pass over a context set.
type Report struct {
	ID          uuid.UUID
	Size        int
	Epsilon     float64
	Theta       float64
	GammaBefore float64 // Γ of the raw matrix
	GammaAfter  float64 // Γ after friction
	Sparsity    float64 // fraction of zeroed off-diagonal cells after friction
	Labels      Labeling
	Clusters    []ClusterReport
	Matrix      *Matrix // the matrix after friction
}

// Collapsed returns the ids of clusters whose Γ_k exceeded θ.
func (r Report) Collapsed() []int {
	var ids []int
	for _, c := range r.Clusters {
		if c.Collapse.Collapsed {
			ids = append(ids, c.ID)
		}
	}

	return ids
}

// Analyze runs the whole pipeline on cs: build 𝕄, measure Γ, apply friction ε,
// measure Γ again, label clusters and run LocalCollapse(θ) on each of them.
//
// The contexts are only read during construction; the returned Report owns
// the post-friction matrix.
//
// Errors:
//   - ErrBadThreshold if ε or θ is NaN or ±Inf.
func Analyze(cs []contexts.Context, epsilon, theta float64, opts ...Option) (Report, error) {
	if !validThreshold(epsilon) || !validThreshold(theta) {
		return Report{}, coherenceErrorf(opAnalyze,
			fmt.Errorf("%w: epsilon=%v theta=%v", ErrBadThreshold, epsilon, theta))
	}
	o := buildOptions(opts)

	m := FromContexts(cs)
	rep := Report{
		ID:          uuid.New(),
		Size:        m.Len(),
		Epsilon:     epsilon,
		Theta:       theta,
		GammaBefore: m.GlobalCoherence(),
	}
	log := o.Logger.With(zap.Stringer("analysis", rep.ID))
	log.Debug("coherence matrix built", zap.Int("n", rep.Size), zap.Float64("gamma", rep.GammaBefore))

	m.ApplyFriction(epsilon)
	rep.GammaAfter = m.GlobalCoherence()
	rep.Sparsity = m.Sparsity()
	rep.Labels = m.FindClusters()
	rep.Matrix = m

	for id, members := range rep.Labels.Groups() {
		c, err := m.LocalCollapse(members, theta)
		if err != nil {
			return Report{}, coherenceErrorf(opAnalyze, err) // unreachable: members are in range
		}
		rep.Clusters = append(rep.Clusters, ClusterReport{ID: id, Indices: members, Collapse: c})
		log.Debug("cluster",
			zap.Int("id", id),
			zap.Ints("indices", members),
			zap.Float64("gamma_k", c.Gamma),
			zap.Bool("collapsed", c.Collapsed))
	}

	log.Info("analysis complete",
		zap.Int("n", rep.Size),
		zap.Float64("epsilon", epsilon),
		zap.Float64("gamma_before", rep.GammaBefore),
		zap.Float64("gamma_after", rep.GammaAfter),
		zap.Int("clusters", len(rep.Clusters)),
		zap.Int("collapsed", len(rep.Collapsed())))

	if o.Observer != nil {
		o.Observer.ObserveAnalysis(rep)
	}

	return rep, nil
}
