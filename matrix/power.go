// SPDX-License-Identifier: MIT

package matrix

import "math"

// DefaultPowerSteps is the fixed iteration budget used by the coherence engine.
const DefaultPowerSteps = 100

// Eigenpair is the dominant (eigenvalue, unit eigenvector) estimate.
type Eigenpair struct {
	Value  float64   // Rayleigh quotient wᵀv of the last step
	Vector []float64 // last iterate; unit length unless the product collapsed to zero
}

// PowerIteration approximates the dominant eigenpair of a square matrix.
// MAIN DESCRIPTION:
//   - Start from the uniform unit vector v = (1/√n, …, 1/√n).
//   - Repeat exactly `steps` times: w = m·v; λ = w·v; v = w/‖w‖.
//   - No convergence test: the step count is the whole contract.
//
// Behavior highlights:
//   - n == 0 returns a zero Eigenpair without iterating.
//   - When ‖w‖ == 0 the normalization is skipped for that step and v becomes
//     the zero vector, so every later λ is 0.
//   - steps == 0 returns λ = 0 with the uniform start vector.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare from ValidateSquare.
//   - ErrBadSteps when steps < 0.
//
// Complexity:
//   - Time O(steps·n²), Space O(n) (two ping-pong buffers on the *Dense path).
//
// AI-Hints:
//   - This is an estimator, not an eigensolver; expect approximation error on
//     matrices whose two largest eigenvalues are close.
func PowerIteration(m Matrix, steps int) (Eigenpair, error) {
	if err := ValidateSquare(m); err != nil {
		return Eigenpair{}, matrixErrorf(opPower, err)
	}
	if steps < 0 {
		return Eigenpair{}, matrixErrorf(opPower, ErrBadSteps)
	}
	n := m.Rows()
	if n == 0 {
		return Eigenpair{}, nil
	}

	v := make([]float64, n)
	start := 1.0 / math.Sqrt(float64(n))
	for i := range v {
		v[i] = start
	}

	d, fast := m.(*Dense)
	w := make([]float64, n)
	var (
		lambda float64
		norm   float64
		err    error
	)
	for step := 0; step < steps; step++ {
		// w = m·v
		if fast {
			matVecDense(d, v, w)
		} else if w, err = MatVec(m, v); err != nil {
			return Eigenpair{}, matrixErrorf(opPower, err)
		}

		// Rayleigh quotient against the current (unit) iterate.
		lambda = dot(w, v)

		norm = Norm2(w)
		if norm > 0 {
			for i := range w {
				w[i] /= norm
			}
		}
		// Ping-pong the buffers: w becomes the next iterate.
		v, w = w, v
	}

	return Eigenpair{Value: lambda, Vector: v}, nil
}
