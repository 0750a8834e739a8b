// SPDX-License-Identifier: MIT

// Package events defines the value-typed Event that propagates between
// processing tiers and the fixed-capacity FIFO Queue that carries it.
//
// Queue is a ring buffer: after NewQueue it never allocates. Enqueue on a
// full queue discards the event and returns false; Dequeue on an empty
// queue returns (Event{}, false). Neither condition is an error.
//
// Nothing here is safe for concurrent use; a Queue belongs to one owner.
package events
