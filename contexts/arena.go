// SPDX-License-Identifier: MIT

package contexts

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when a handle is resolved after its arena was released.
	ErrReleased = errors.New("contexts: arena released")

	// ErrBadHandle is returned for a handle that does not belong to the arena.
	ErrBadHandle = errors.New("contexts: handle out of range")
)

// Handle is a non-owning reference to a Context inside an Arena.
type Handle int

// Arena owns the contexts of one analysis pass. Entities refer to them by
// Handle; after Release every resolution fails with ErrReleased.
type Arena struct {
	items    []Context
	released bool
}

// NewArena returns an arena pre-populated with cs (in order, handles 0..len-1).
func NewArena(cs ...Context) *Arena {
	a := &Arena{items: make([]Context, 0, len(cs))}
	for _, c := range cs {
		a.items = append(a.items, c)
	}

	return a
}

// Add stores c and returns its handle.
func (a *Arena) Add(c Context) (Handle, error) {
	if a.released {
		return 0, ErrReleased
	}
	a.items = append(a.items, c)

	return Handle(len(a.items) - 1), nil
}

// Get resolves h.
func (a *Arena) Get(h Handle) (Context, error) {
	if a.released {
		return Context{}, ErrReleased
	}
	if h < 0 || int(h) >= len(a.items) {
		return Context{}, fmt.Errorf("handle %d: %w", h, ErrBadHandle)
	}

	return a.items[h], nil
}

// Len is the number of contexts held.
func (a *Arena) Len() int { return len(a.items) }

// Contexts returns a copy of the held contexts in handle order, ready for
// coherence.FromContexts. It returns nil after Release.
func (a *Arena) Contexts() []Context {
	if a.released {
		return nil
	}
	out := make([]Context, len(a.items))
	copy(out, a.items)

	return out
}

// Release ends the arena's lifetime. It is idempotent.
func (a *Arena) Release() {
	a.released = true
	a.items = nil
}
