// File: arc/runtime.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool context: a true LIFO stack of autorelease pools plus the counters the
// control plane scrapes. A single current-pool slot would lose the outer
// pool whenever pushes nest; the stack makes correct nesting structural.

package arc

import (
	"log"

	"github.com/momentics/trove-arc/api"
	"github.com/momentics/trove-arc/pool"
)

// MetricsSink receives counter increments from a runtime. Implemented by
// control.MetricsRegistry; a nil sink disables counting.
type MetricsSink interface {
	Add(key string, delta int64)
}

// Runtime owns a stack of autorelease pools and routes deferred releases to
// the innermost one. Not safe for concurrent use; one runtime serves one
// logical thread of control.
type Runtime struct {
	stack    []*pool.Pool[*Object]
	recycler *pool.SyncPool[*pool.Pool[*Object]]
	metrics  MetricsSink

	warnMissing bool
	maxDepth    int
}

// Option customizes runtime construction.
type Option func(*Runtime)

// WithMetricsSink directs the runtime's counters to m.
func WithMetricsSink(m MetricsSink) Option {
	return func(r *Runtime) { r.metrics = m }
}

// WithMissingPoolWarnings controls logging when an autorelease arrives with
// no pool on the stack. Enabled by default.
func WithMissingPoolWarnings(on bool) Option {
	return func(r *Runtime) { r.warnMissing = on }
}

// SetMissingPoolWarnings changes the missing-pool logging flag after
// construction; the control plane applies config reloads through it.
func (r *Runtime) SetMissingPoolWarnings(on bool) { r.warnMissing = on }

// MissingPoolWarnings reports whether dropped registrations are logged.
func (r *Runtime) MissingPoolWarnings() bool { return r.warnMissing }

// WithPoolRecycling controls whether drained pools are kept for reuse
// instead of allocating a fresh pool per push. Enabled by default.
func WithPoolRecycling(on bool) Option {
	return func(r *Runtime) {
		if on {
			r.recycler = pool.NewSyncPool(pool.New[*Object])
		} else {
			r.recycler = nil
		}
	}
}

// NewRuntime constructs an empty runtime.
func NewRuntime(opts ...Option) *Runtime {
	r := &Runtime{
		recycler:    pool.NewSyncPool(pool.New[*Object]),
		warnMissing: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runtime) count(key string, delta int64) {
	if r.metrics != nil {
		r.metrics.Add(key, delta)
	}
}

// Retain declares a new owner of the object. No-op on nil.
func (r *Runtime) Retain(h *Object) {
	if retain(h) {
		r.count("arc.retains", 1)
	}
}

// Release drops one ownership reference, finalizing the object when the
// count reaches zero. No-op on nil. Releasing an already finalized object
// never re-fires the finalizer; it is surfaced as arc.over_releases.
func (r *Runtime) Release(h *Object) {
	if h == nil {
		return
	}
	r.count("arc.releases", 1)
	finalized, over := release(h)
	if finalized {
		r.count("arc.finalizations", 1)
	}
	if over {
		r.count("arc.over_releases", 1)
	}
}

// TryAutorelease registers h with the current pool and returns h. With no
// pool on the stack it returns api.ErrNoActivePool and the object is NOT
// released: it leaks unless the caller releases it, a deliberate
// leak-over-crash policy.
func (r *Runtime) TryAutorelease(h *Object) (*Object, error) {
	if h == nil {
		return nil, nil
	}
	if len(r.stack) == 0 {
		r.count("arc.dropped_registrations", 1)
		return h, api.ErrNoActivePool
	}
	r.stack[len(r.stack)-1].Register(h)
	r.count("arc.autoreleases", 1)
	return h, nil
}

// Autorelease is TryAutorelease with the missing-pool case reported through
// the log instead of an error return, matching the chaining call style.
func (r *Runtime) Autorelease(h *Object) *Object {
	obj, err := r.TryAutorelease(h)
	if err != nil && r.warnMissing {
		log.Printf("[arc] autorelease with no active pool; object leaked")
	}
	return obj
}

// PoolPush installs a fresh pool as the innermost one. The previously
// current pool stays on the stack and becomes current again on the matching
// PoolPop.
func (r *Runtime) PoolPush() {
	var p *pool.Pool[*Object]
	if r.recycler != nil {
		p = r.recycler.Get()
	} else {
		p = pool.New[*Object]()
	}
	r.stack = append(r.stack, p)
	if len(r.stack) > r.maxDepth {
		r.maxDepth = len(r.stack)
	}
	r.count("arc.pool_pushes", 1)
}

// PoolPop drains the innermost pool in insertion order, one release per
// registration, then discards it and restores the previous pool. No-op when
// the stack is empty. The pool leaves the stack before draining, so
// autoreleases performed by finalizers land in the enclosing pool.
func (r *Runtime) PoolPop() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	top := r.stack[n-1]
	r.stack[n-1] = nil
	r.stack = r.stack[:n-1]

	drained := top.Drain(func(h *Object) { r.Release(h) })
	r.count("arc.drained", int64(drained))
	r.count("arc.pool_pops", 1)

	if r.recycler != nil {
		r.recycler.Put(top)
	}
}

// Depth returns the number of pools currently on the stack.
func (r *Runtime) Depth() int { return len(r.stack) }

// MaxDepth returns the deepest nesting observed since construction.
func (r *Runtime) MaxDepth() int { return r.maxDepth }

// Pending returns the total number of registrations across all pools on the
// stack still waiting for a drain.
func (r *Runtime) Pending() int {
	total := 0
	for _, p := range r.stack {
		total += p.Len()
	}
	return total
}

// Stats returns a point-in-time snapshot for the control plane.
func (r *Runtime) Stats() api.RuntimeStats {
	return api.RuntimeStats{
		PoolDepth:           r.Depth(),
		MaxPoolDepth:        r.maxDepth,
		PendingAutoreleases: r.Pending(),
		LiveObjects:         LiveObjects(),
	}
}
