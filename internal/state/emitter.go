// Package state holds the two observable state machines consumed by the UI
// layer: the authentication machine (Auth) and the product collection store
// (Catalog). Consumers read immutable snapshots and subscribe for changes;
// errors never leave this layer as Go errors.
package state

import "sync"

// emitter owns a snapshot of type T and a subscriber list. Every update
// publishes a copy of the new snapshot to all subscribers. Callbacks run on
// the mutating goroutine, outside the lock.
type emitter[T any] struct {
	mu   sync.Mutex
	snap T
	subs map[int]func(T)
	next int
}

func newEmitter[T any](initial T) *emitter[T] {
	return &emitter[T]{snap: initial, subs: make(map[int]func(T))}
}

func (e *emitter[T]) get() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

func (e *emitter[T]) update(mutate func(*T)) {
	e.mu.Lock()
	mutate(&e.snap)
	snap := e.snap
	fns := make([]func(T), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// subscribe registers fn and returns its unsubscribe function.
func (e *emitter[T]) subscribe(fn func(T)) func() {
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}
