// SPDX-License-Identifier: MIT

package coherence

import (
	"github.com/katalvlaran/sic/contexts"
)

// Compose is contextual composition E₁ ⊕ E₂ = E{C₁∪C₂, S₁∩S₂, P₁⊕P₂} with
// intensities added. The merged context is stored in arena and the new
// entity refers to it.
func Compose(arena *contexts.Arena, e1, e2 contexts.Entity) (contexts.Entity, error) {
	c1, err := arena.Get(e1.Context)
	if err != nil {
		return contexts.Entity{}, err
	}
	c2, err := arena.Get(e2.Context)
	if err != nil {
		return contexts.Entity{}, err
	}
	h, err := arena.Add(c1.Union(c2))
	if err != nil {
		return contexts.Entity{}, err
	}

	return contexts.Entity{
		Context:     h,
		Scale:       e1.Scale.Intersect(e2.Scale),
		Perspective: e1.Perspective.Compose(e2.Perspective, Coherence(c1, c2)),
		Intensity:   e1.Intensity + e2.Intensity,
	}, nil
}

// Modulate is scalar modulation α × E: same context, intensity scaled by alpha.
func Modulate(alpha float64, e contexts.Entity) contexts.Entity {
	e.Intensity *= alpha
	return e
}

// Transform moves e into the context at target. The intensity is attenuated
// by the coherence between the source and target contexts.
func Transform(arena *contexts.Arena, e contexts.Entity, target contexts.Handle) (contexts.Entity, error) {
	src, err := arena.Get(e.Context)
	if err != nil {
		return contexts.Entity{}, err
	}
	dst, err := arena.Get(target)
	if err != nil {
		return contexts.Entity{}, err
	}
	e.Context = target
	e.Intensity *= Coherence(src, dst)

	return e, nil
}

// Equivalent reports contextual equivalence: same kind and parameter
// distance strictly below threshold.
func Equivalent(arena *contexts.Arena, e1, e2 contexts.Entity, threshold float64) (bool, error) {
	c1, err := arena.Get(e1.Context)
	if err != nil {
		return false, err
	}
	c2, err := arena.Get(e2.Context)
	if err != nil {
		return false, err
	}

	return c1.Kind == c2.Kind && c1.Distance(c2) < threshold, nil
}
