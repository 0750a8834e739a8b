// SPDX-License-Identifier: MIT

package coherence

import (
	"math"

	"github.com/katalvlaran/sic/contexts"
)

// Sigma is the characteristic coherence length σ of the Gaussian kernel.
const Sigma = 5.0

// Kernel maps a distance to a coherence in [0,1]: exp(-d²/σ²).
// Kernel(0) == 1 exactly; the map is monotonically decreasing in |d|.
// Complexity: O(1).
func Kernel(d float64) float64 {
	return math.Exp(-d * d / (Sigma * Sigma))
}

// Coherence returns Coh(a, b) = Kernel(a.Distance(b)).
//
// Guarantees:
//   - Coherence(c, c) == 1 exactly (reflexivity).
//   - Coherence(a, b) == Coherence(b, a) (Distance is symmetric).
//   - Result ∈ [0,1] for every real-valued input; no error conditions.
func Coherence(a, b contexts.Context) float64 {
	return Kernel(a.Distance(b))
}
