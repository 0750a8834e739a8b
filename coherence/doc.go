// SPDX-License-Identifier: MIT

// Package coherence computes pairwise compatibility between parametrized
// contexts and analyses the resulting similarity graph.
//
// 🚀 What is inside?
//
//   - Coherence / Kernel: Coh(C₁, C₂) = exp(-d²/σ²) with σ = Sigma = 5.0.
//   - Matrix: the symmetric N×N coherence matrix with a unit diagonal.
//   - ApplyFriction(ε): truncate weak off-diagonal coherences to zero.
//   - FindClusters: connected components over positive-weight edges.
//   - GlobalCoherence: Γ = λ_max/N by fixed 100-step power iteration.
//   - LocalCollapse: Γ_k = λ_max/trace over a principal submatrix, collapsed
//     when Γ_k exceeds a caller-supplied θ.
//   - Analyze: the whole pipeline as one call, returning a Report.
//   - Sweep: the percolation curve (cluster count vs ε) over many thresholds.
//
// Determinism:
//
//	Construction, friction, clustering and power iteration walk indices in a
//	fixed order; cluster ids are assigned in increasing order of the first
//	index visited, so identical inputs give identical labelings.
//
// Concurrency:
//
//	A Matrix carries no locks and must be confined to one owner. Sweep is the
//	only concurrent entry point and gives each worker its own clone.
//
// Quick ASCII example (ε = 0.1 on the reference set):
//
//	thermal ●━●━●━●     quantum ●━●━●     social ●━●
//
//	three mutually disconnected, internally complete clusters.
package coherence
