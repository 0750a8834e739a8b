// SPDX-License-Identifier: MIT

// Package contexts defines the parametrized Context primitive the coherence
// engine measures, plus the thin entity layer built on top of it.
//
// A Context is a kind tag and a mapping from parameter name to real value.
// Two contexts are compared over the union of their keys; a key missing on
// one side counts as 0 there.
//
// Ownership:
//
//	Contexts are immutable values once built. An Arena scopes a set of contexts
//	to one analysis pass; an Entity refers to its context by Handle (an index
//	into the arena) and never owns it. Resolving a handle after the arena is
//	released returns ErrReleased.
//
// Operators (Compose, Modulate, Transform, Equivalent) are small conveniences
// over Context.Union, Scale.Intersect and Perspective.Compose; they carry no
// algorithmic weight of their own.
package contexts
