// SPDX-License-Identifier: MIT

package coherence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sic/contexts"
	"github.com/katalvlaran/sic/matrix"
)

const (
	opFromValues = "FromValues"
	opLocal      = "LocalCollapse"
	opAnalyze    = "Analyze"
	opSweep      = "Sweep"
)

// symmetryTol is the tolerance FromValues accepts for |m[i,j]-m[j,i]|.
const symmetryTol = 1e-12

// Matrix is the Universal Coherence Matrix 𝕄: symmetric, N×N, unit diagonal,
// 𝕄ᵢⱼ = Coh(Cᵢ, Cⱼ). It keeps only the scalars, never the contexts.
//
// The only mutation is ApplyFriction; every other method is a pure function
// of the current contents.
type Matrix struct {
	data *matrix.Dense
}

// FromContexts builds 𝕄 from an ordered context list. All N(N-1)/2 pairwise
// coherences are computed once and mirrored; the diagonal is fixed to 1.
// An empty list yields a 0×0 matrix.
//
// Complexity: O(N²) kernel evaluations, O(N²) memory.
func FromContexts(cs []contexts.Context) *Matrix {
	n := len(cs)
	d, _ := matrix.NewSquare(n) // n >= 0 always

	var i, j int
	var coh float64
	for i = 0; i < n; i++ {
		_ = d.Set(i, i, 1.0) // reflexivity
		for j = i + 1; j < n; j++ {
			coh = Coherence(cs[i], cs[j])
			_ = d.Set(i, j, coh)
			_ = d.Set(j, i, coh) // symmetry
		}
	}

	return &Matrix{data: d}
}

// FromValues wraps an explicit matrix (e.g. a synthetic or previously
// exported one) after checking it is a valid coherence matrix.
//
// Errors:
//   - ErrNotCoherence (wrapping the matrix sentinel where one applies) for
//     ragged or non-finite rows, asymmetry, a diagonal ≠ 1, or a cell outside [0,1].
func FromValues(rows [][]float64) (*Matrix, error) {
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, coherenceErrorf(opFromValues, fmt.Errorf("%w: %w", ErrNotCoherence, err))
	}
	if err = matrix.ValidateSymmetric(d, symmetryTol); err != nil {
		return nil, coherenceErrorf(opFromValues, fmt.Errorf("%w: %w", ErrNotCoherence, err))
	}

	n := d.Rows()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = d.At(i, j)
			if i == j && v != 1 {
				return nil, coherenceErrorf(opFromValues, fmt.Errorf("%w: diagonal (%d,%d) = %g", ErrNotCoherence, i, j, v))
			}
			if v < 0 || v > 1 {
				return nil, coherenceErrorf(opFromValues, fmt.Errorf("%w: cell (%d,%d) = %g outside [0,1]", ErrNotCoherence, i, j, v))
			}
		}
	}

	return &Matrix{data: d}, nil
}

// Len returns N, the number of contexts the matrix was built from.
func (m *Matrix) Len() int { return m.data.Rows() }

// At returns 𝕄ᵢⱼ, or an error wrapping matrix.ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) { return m.data.At(i, j) }

// Values returns a copy of the matrix as rows.
func (m *Matrix) Values() [][]float64 {
	n := m.Len()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j], _ = m.data.At(i, j)
		}
	}

	return out
}

// Clone returns an independent copy; friction on the copy never reaches m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{data: m.data.CloneDense()}
}

// String renders the rows for diagnostics.
func (m *Matrix) String() string { return m.data.String() }

// ApplyFriction sets every off-diagonal cell strictly below epsilon to 0.
//
// Behavior highlights:
//   - Idempotent: a second call with the same ε changes nothing.
//   - Monotone: sparsity never decreases; the diagonal is never touched.
//   - A NaN epsilon compares false everywhere and leaves the matrix unchanged.
//
// Complexity: O(N²).
func (m *Matrix) ApplyFriction(epsilon float64) {
	n := m.Len()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.data.At(i, j)
			if v < epsilon {
				_ = m.data.Set(i, j, 0)
			}
		}
	}
}

// Sparsity returns the fraction of off-diagonal cells that are exactly 0.
// Matrices with N < 2 have no off-diagonal cells and report 0.
func (m *Matrix) Sparsity() float64 {
	n := m.Len()
	if n < 2 {
		return 0
	}
	zeros := 0
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, _ = m.data.At(i, j); v == 0 {
				zeros++
			}
		}
	}

	return float64(zeros) / float64(n*(n-1))
}

// WeightedDegree returns, for every index, the sum of its off-diagonal
// coherences: the weighted degree of the node in the similarity graph.
func (m *Matrix) WeightedDegree() []float64 {
	n := m.Len()
	deg := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.data.At(i, j)
			deg[i] += v
		}
	}

	return deg
}

// validThreshold reports whether x can be used as ε or θ.
func validThreshold(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
