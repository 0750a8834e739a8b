// SPDX-License-Identifier: MIT

package coherence

import (
	"errors"
	"fmt"
)

// Sentinel errors for the coherence package. Numeric degenerate cases (empty
// sets, zero norms, singleton clusters) are never errors; these cover
// structurally invalid input only.
var (
	// ErrNotCoherence is returned by FromValues when the values cannot be a
	// coherence matrix: non-square, asymmetric, diagonal ≠ 1 or a cell outside [0,1].
	ErrNotCoherence = errors.New("coherence: values are not a coherence matrix")

	// ErrBadThreshold is returned when ε or θ is NaN or infinite.
	ErrBadThreshold = errors.New("coherence: threshold must be finite")

	// ErrNilMatrix is returned when a nil *Matrix is passed to an analysis entry point.
	ErrNilMatrix = errors.New("coherence: matrix is nil")
)

// coherenceErrorf wraps err with an operation tag.
func coherenceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
