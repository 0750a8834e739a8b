// SPDX-License-Identifier: MIT

package contexts

// Scale is the observation level of an entity, ordered from finest to coarsest.
type Scale int

const (
	ScaleQuantum Scale = iota
	ScaleMicroscopic
	ScaleMesoscopic
	ScaleHuman
	ScaleCosmic
)

// String implements fmt.Stringer.
func (s Scale) String() string {
	switch s {
	case ScaleQuantum:
		return "quantum"
	case ScaleMicroscopic:
		return "microscopic"
	case ScaleMesoscopic:
		return "mesoscopic"
	case ScaleHuman:
		return "human"
	case ScaleCosmic:
		return "cosmic"
	default:
		return "unknown"
	}
}

// Intersect returns the more restrictive (finer) of the two scales.
func (s Scale) Intersect(other Scale) Scale {
	if s <= other {
		return s
	}

	return other
}

// PerspectiveKind names the observer's viewpoint.
type PerspectiveKind string

const (
	PerspectiveObjective       PerspectiveKind = "objective"
	PerspectiveSubjective      PerspectiveKind = "subjective"
	PerspectiveIntersubjective PerspectiveKind = "intersubjective"
	PerspectiveDeterministic   PerspectiveKind = "deterministic"
	PerspectiveStatistical     PerspectiveKind = "statistical"
)

// FusionThreshold is the coherence above which two perspectives fuse.
const FusionThreshold = 0.5

// Perspective is a viewpoint with a composition weight.
type Perspective struct {
	Kind   PerspectiveKind
	Weight float64
}

// NewPerspective returns a perspective of kind k with unit weight.
func NewPerspective(k PerspectiveKind) Perspective {
	return Perspective{Kind: k, Weight: 1}
}

// Compose combines two perspectives given the coherence of their contexts.
// Above FusionThreshold they fuse (kind of p, weight (wp+wo)·coherence);
// otherwise the heavier one is kept unchanged, p winning ties.
func (p Perspective) Compose(other Perspective, coherence float64) Perspective {
	if coherence > FusionThreshold {
		return Perspective{Kind: p.Kind, Weight: (p.Weight + other.Weight) * coherence}
	}
	if p.Weight >= other.Weight {
		return p
	}

	return other
}

// Entity is E{C, S, P}: a context handle, a scale, a perspective and an
// intensity. It does not own its context.
type Entity struct {
	Context     Handle
	Scale       Scale
	Perspective Perspective
	Intensity   float64
}

// NewEntity returns an entity of unit intensity.
func NewEntity(h Handle, s Scale, p Perspective) Entity {
	return Entity{Context: h, Scale: s, Perspective: p, Intensity: 1}
}
