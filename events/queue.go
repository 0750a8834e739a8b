// SPDX-License-Identifier: MIT

package events

import (
	"errors"
	"fmt"
)

// ErrBadCapacity is returned by NewQueue for a capacity ≤ 0.
var ErrBadCapacity = errors.New("events: queue capacity must be > 0")

// Queue is a bounded FIFO ring buffer of events.
// Invariant: 0 ≤ count ≤ len(buf); head and tail are always < len(buf).
type Queue struct {
	buf   []Event
	head  int
	tail  int
	count int
}

// NewQueue allocates a queue holding at most capacity events.
func NewQueue(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("NewQueue(%d): %w", capacity, ErrBadCapacity)
	}

	return &Queue{buf: make([]Event, capacity)}, nil
}

// Enqueue appends e. On a full queue e is discarded and false is returned.
func (q *Queue) Enqueue(e Event) bool {
	if q.count == len(q.buf) {
		return false
	}
	q.buf[q.tail] = e
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++

	return true
}

// Dequeue removes and returns the oldest event; ok is false when empty.
func (q *Queue) Dequeue() (e Event, ok bool) {
	if q.count == 0 {
		return Event{}, false
	}
	e = q.buf[q.head]
	q.buf[q.head] = Event{}
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return e, true
}

// Peek returns the oldest event without removing it.
func (q *Queue) Peek() (Event, bool) {
	if q.count == 0 {
		return Event{}, false
	}

	return q.buf[q.head], true
}

// Len is the number of queued events.
func (q *Queue) Len() int { return q.count }

// Cap is the fixed capacity.
func (q *Queue) Cap() int { return len(q.buf) }

// IsEmpty reports Len() == 0.
func (q *Queue) IsEmpty() bool { return q.count == 0 }

// IsFull reports Len() == Cap().
func (q *Queue) IsFull() bool { return q.count == len(q.buf) }
