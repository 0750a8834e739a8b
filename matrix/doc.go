// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage and the small set of
// linear-algebra kernels the coherence engine is built on.
//
// The package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set that return
//     sentinel errors instead of panicking, deep Clone and copy-based Induced
//     (principal submatrix extraction).
//   - Validators: ValidateNotNil, ValidateSquare, ValidateVecLen and
//     ValidateSymmetric, shared by every kernel as a single source of truth.
//   - Kernels: MatVec, Dot, Norm2, Trace and PowerIteration, the fixed-step
//     dominant-eigenvalue estimator.
//
// Determinism:
//
//	Every kernel walks its data in a fixed i→j order and never iterates maps,
//	so identical inputs always yield bit-identical outputs.
//
// Complexity quicksheet:
//
//	NewDense/NewSquare O(r*c); At/Set O(1); Clone O(r*c); Induced O(k²);
//	MatVec O(r*c); PowerIteration O(steps·n²).
package matrix
