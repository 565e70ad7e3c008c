// Package event provides a small typed publish/subscribe primitive used
// throughout the server: subscribers are added at plugin registration
// time, fire in registration order, and run to completion one at a time
// (spec §4.3).
package event

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle identifies one subscription. Calling Disconnect marks it for lazy
// removal on the event's next Fire; it is never removed mid-iteration.
// The backing id has no wire representation — it exists purely so a
// subscriber can hold a comparable, opaque token for its own subscription,
// the same role github.com/google/uuid plays for the teacher's per-
// connection identity.
type Handle struct {
	id           uuid.UUID
	disconnected atomic.Bool
}

// Disconnect marks h for removal from its Event.
func (h *Handle) Disconnect() { h.disconnected.Store(true) }

// Disconnected reports whether Disconnect has been called.
func (h *Handle) Disconnected() bool { return h.disconnected.Load() }

type subscription[T any] struct {
	handle *Handle
	fn     func(T)
}

// Event is an ordered list of subscriber callbacks over argument type T.
// A single Fire call runs every live subscriber sequentially, in the
// order they were Connect-ed; no subscriber is invoked concurrently with
// another for the same Event.
type Event[T any] struct {
	mu   sync.Mutex
	subs []*subscription[T]
}

// Connect appends fn to the subscriber list and returns a Handle the
// caller can later Disconnect.
func (e *Event[T]) Connect(fn func(T)) *Handle {
	h := &Handle{id: uuid.New()}
	e.mu.Lock()
	e.subs = append(e.subs, &subscription[T]{handle: h, fn: fn})
	e.mu.Unlock()
	return h
}

// Fire invokes every live subscriber, in registration order, with arg.
// Subscribers marked disconnected are pruned lazily rather than removed
// mid-iteration.
func (e *Event[T]) Fire(arg T) {
	e.mu.Lock()
	live := e.subs[:0:0]
	fns := make([]func(T), 0, len(e.subs))
	for _, s := range e.subs {
		if s.handle.Disconnected() {
			continue
		}
		live = append(live, s)
		fns = append(fns, s.fn)
	}
	e.subs = live
	e.mu.Unlock()

	for _, fn := range fns {
		fn(arg)
	}
}
