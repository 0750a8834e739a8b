// SPDX-License-Identifier: MIT

package contexts

import (
	"math"
	"sort"
	"strings"
)

// Kind classifies a Context. The named kinds are a closed set; any other
// string is a custom kind and compares by value.
type Kind string

const (
	KindPhysical    Kind = "physical"
	KindSocial      Kind = "social"
	KindConceptual  Kind = "conceptual"
	KindQuantum     Kind = "quantum"
	KindThermal     Kind = "thermal"
	KindInertial    Kind = "inertial"
	KindAccelerated Kind = "accelerated"
)

// IsBuiltin reports whether k is one of the named kinds.
func (k Kind) IsBuiltin() bool {
	switch k {
	case KindPhysical, KindSocial, KindConceptual, KindQuantum,
		KindThermal, KindInertial, KindAccelerated:
		return true
	default:
		return false
	}
}

// ParseKind normalizes s (trimmed, lower-cased). Unknown names become custom kinds.
func ParseKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}

// Param is one named parameter, used to build contexts in a fixed order.
type Param struct {
	Name  string
	Value float64
}

// Context is a kind plus continuous parameters θᵢ ∈ ℝ.
// The zero value is a context of empty kind with no parameters.
type Context struct {
	Kind   Kind
	Params map[string]float64
}

// New returns a context of kind k with a private copy of params.
func New(k Kind, params map[string]float64) Context {
	cp := make(map[string]float64, len(params))
	for name, v := range params {
		cp[name] = v
	}

	return Context{Kind: k, Params: cp}
}

// WithParams builds a context from an ordered parameter list.
// A repeated name keeps its last value.
func WithParams(k Kind, params ...Param) Context {
	m := make(map[string]float64, len(params))
	for _, p := range params {
		m[p.Name] = p.Value
	}

	return Context{Kind: k, Params: m}
}

// Param returns the named parameter, or 0 if it is not set.
func (c Context) Param(name string) float64 {
	return c.Params[name]
}

// Keys returns the parameter names in ascending order.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Distance is the Euclidean norm over the union of parameter keys:
// shared keys contribute their squared difference, a key present on one
// side only contributes its value squared.
//
// Keys are visited in sorted order so the floating-point sum is identical
// for every call with the same inputs; Distance(c, c) is exactly 0.
func (c Context) Distance(other Context) float64 {
	var sumSq float64
	for _, key := range unionKeys(c.Params, other.Params) {
		d := c.Params[key] - other.Params[key]
		sumSq += d * d
	}

	return math.Sqrt(sumSq)
}

// Union merges two contexts for the composition operator: keys from both
// sides, shared keys averaged. The kind is inherited from c.
func (c Context) Union(other Context) Context {
	out := make(map[string]float64, len(c.Params)+len(other.Params))
	for k, v := range c.Params {
		out[k] = v
	}
	for k, v := range other.Params {
		if mine, ok := out[k]; ok {
			out[k] = (mine + v) / 2
			continue
		}
		out[k] = v
	}

	return Context{Kind: c.Kind, Params: out}
}

func unionKeys(a, b map[string]float64) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}
