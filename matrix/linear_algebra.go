// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// with a fast path for *Dense operands.
//
// Notes:
//   - Inputs are never mutated; results are freshly allocated.
//   - Loop orders are fixed (i→j) so results are reproducible bit-for-bit.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opDot    = "Dot"
	opPower  = "PowerIteration"
)

// matrixErrorf wraps err with an operation tag; use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(x) != Cols().
//
// Complexity: O(r*c).
//
// AI-Hints:
//   - Pass a concrete *Dense to take the flat-slice fast path.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())

	// Fast path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		matVecDense(d, x, y)

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		y[i] = ZeroSum
		for j = 0; j < m.Cols(); j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// matVecDense writes d·x into y; lengths are the caller's responsibility.
func matVecDense(d *Dense, x, y []float64) {
	var i, j, base int
	var acc, xv float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications (sparse rows after friction)
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}
}

// Dot returns Σ a[i]*b[i].
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(a, b), nil
}

func dot(a, b []float64) float64 {
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// Norm2 returns the Euclidean norm of x; an empty vector has norm 0.
func Norm2(x []float64) float64 {
	return math.Sqrt(dot(x, x))
}
