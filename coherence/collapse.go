// SPDX-License-Identifier: MIT

package coherence

import (
	"fmt"

	"github.com/katalvlaran/sic/matrix"
)

// Collapse is the outcome of LocalCollapse for one index subset.
type Collapse struct {
	// Gamma is Γ_k = λ_max / trace of the principal submatrix.
	Gamma float64
	// Collapsed reports Gamma > θ.
	Collapsed bool
	// Lambda is the estimated dominant eigenvalue (0 for |indices| ≤ 1).
	Lambda float64
	// Trace of the principal submatrix (equals its size for an intact diagonal).
	Trace float64
	// Size is |indices|.
	Size int
}

// GlobalCoherence returns Γ = λ_max / N, where λ_max is estimated by
// matrix.PowerIteration with matrix.DefaultPowerSteps steps.
// An empty matrix yields 0 without iterating.
//
// For a unit-diagonal matrix Γ ∈ [1/N, 1]: 1/N when all contexts are mutually
// incoherent, 1 when every cell is 1.
func (m *Matrix) GlobalCoherence() float64 {
	n := m.Len()
	if n == 0 {
		return 0
	}
	ep, err := matrix.PowerIteration(m.data, matrix.DefaultPowerSteps)
	if err != nil {
		return 0 // unreachable: m.data is square and non-nil
	}

	return ep.Value / float64(n)
}

// LocalCollapse measures how internally consistent the subset of contexts at
// indices is: Γ_k = λ_max(𝕄_k) / trace(𝕄_k), collapsed when Γ_k > theta.
//
// Behavior highlights:
//   - |indices| ≤ 1: a singleton is trivially collapsed, (Γ_k = 1, true) is
//     returned without iterating or validating the index or theta.
//   - trace ≤ 0: Γ_k = 0.
//   - Indices need not be sorted; duplicates select the same row twice.
//
// Errors:
//   - ErrBadThreshold if theta is NaN or ±Inf and |indices| ≥ 2.
//   - an error wrapping matrix.ErrOutOfRange for an index outside [0, N).
func (m *Matrix) LocalCollapse(indices []int, theta float64) (Collapse, error) {
	if len(indices) <= 1 {
		return Collapse{Gamma: 1, Collapsed: true, Trace: float64(len(indices)), Size: len(indices)}, nil
	}
	if !validThreshold(theta) {
		return Collapse{}, coherenceErrorf(opLocal, fmt.Errorf("%w: theta=%v", ErrBadThreshold, theta))
	}

	sub, err := m.data.Principal(indices)
	if err != nil {
		return Collapse{}, coherenceErrorf(opLocal, err)
	}
	ep, err := matrix.PowerIteration(sub, matrix.DefaultPowerSteps)
	if err != nil {
		return Collapse{}, coherenceErrorf(opLocal, err)
	}

	res := Collapse{Lambda: ep.Value, Trace: sub.Trace(), Size: len(indices)}
	if res.Trace > 0 {
		res.Gamma = res.Lambda / res.Trace
	}
	res.Collapsed = res.Gamma > theta

	return res, nil
}
