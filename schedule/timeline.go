// SPDX-License-Identifier: EPL-2.0

// Package schedule keeps events ordered by the time they are due.
//
// Timeline is the building block for anything that schedules work against
// the render clock: parameter automation events, source start/stop times.
// Events with equal times keep the order in which they were inserted.
package schedule

import "sort"

// Timed is anything with a scheduled time, in seconds of context time.
type Timed interface {
	At() float64
}

// Timeline is a sequence of events kept sorted ascending by At().
// The zero value is an empty timeline ready to use.
type Timeline[E Timed] struct {
	events []E
}

// Len returns the number of scheduled events.
func (tl *Timeline[E]) Len() int {
	return len(tl.events)
}

// Get returns the i-th event in time order.
func (tl *Timeline[E]) Get(i int) E {
	return tl.events[i]
}

// Set replaces the i-th event. e must be due at the same time as the event
// it replaces.
func (tl *Timeline[E]) Set(i int, e E) {
	tl.events[i] = e
}

// Events returns a copy of the events in time order.
func (tl *Timeline[E]) Events() []E {
	out := make([]E, len(tl.events))
	copy(out, tl.events)

	return out
}

// Insert adds e after every event with a time less than or equal to its own
// and returns its index.
func (tl *Timeline[E]) Insert(e E) int {
	t := e.At()
	i := sort.Search(len(tl.events), func(i int) bool {
		return tl.events[i].At() > t
	})

	var zero E
	tl.events = append(tl.events, zero)
	copy(tl.events[i+1:], tl.events[i:])
	tl.events[i] = e

	return i
}

// LastAtOrBefore returns the index of the last event due at or before t, or
// -1 when every event is later than t.
func (tl *Timeline[E]) LastAtOrBefore(t float64) int {
	i := sort.Search(len(tl.events), func(i int) bool {
		return tl.events[i].At() > t
	})

	return i - 1
}

// CancelFrom removes every event due at or after t and returns how many
// were removed.
func (tl *Timeline[E]) CancelFrom(t float64) int {
	i := sort.Search(len(tl.events), func(i int) bool {
		return tl.events[i].At() >= t
	})

	n := len(tl.events) - i
	clear(tl.events[i:])
	tl.events = tl.events[:i]

	return n
}

// DropBefore removes the first n events.
func (tl *Timeline[E]) DropBefore(n int) {
	if n <= 0 {
		return
	}

	n = min(n, len(tl.events))
	rest := copy(tl.events, tl.events[n:])
	clear(tl.events[rest:])
	tl.events = tl.events[:rest]
}

// Clear removes all events.
func (tl *Timeline[E]) Clear() {
	clear(tl.events)
	tl.events = tl.events[:0]
}
