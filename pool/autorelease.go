// File: pool/autorelease.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Autorelease pool entry storage. Entries are kept in a growable FIFO ring
// (github.com/eapache/queue) that starts at 16 slots and doubles when full,
// and are consumed strictly in insertion order on drain. Duplicates are
// allowed: every registration produces exactly one release at drain time.

package pool

import "github.com/eapache/queue"

// InitialCapacity is the number of entry slots a fresh pool starts with.
// The backing queue doubles its storage whenever this is exceeded.
const InitialCapacity = 16

// Pool defers work on registered values until Drain is called.
// A pool is single-use from the caller's perspective: it is populated,
// drained once in full, and then recycled or discarded. It is not safe for
// concurrent use.
type Pool[T any] struct {
	entries *queue.Queue
}

// New creates an empty pool with InitialCapacity entry slots.
func New[T any]() *Pool[T] {
	return &Pool[T]{entries: queue.New()}
}

// Register appends v to the pool. The same value may be registered any
// number of times; each registration is drained separately.
func (p *Pool[T]) Register(v T) {
	p.entries.Add(v)
}

// Len returns the number of registrations waiting for a drain.
func (p *Pool[T]) Len() int {
	return p.entries.Length()
}

// Drain consumes every entry in insertion order, invoking release once per
// registration, and leaves the pool empty. Entries registered by release
// callbacks while draining are drained too. Returns the number of entries
// released.
func (p *Pool[T]) Drain(release func(T)) int {
	n := 0
	for p.entries.Length() > 0 {
		v := p.entries.Remove().(T)
		release(v)
		n++
	}
	return n
}
