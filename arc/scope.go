// File: arc/scope.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scoped pool construct. The pop is deferred, so the drain is unconditional
// on every exit path, including panic unwinding.

package arc

// WithPool runs body exactly once between a pool push and the matching pop.
// The pop is deferred, so the pool drains on every exit path: normal
// fall-through, early return inside body, and panic propagation.
func (r *Runtime) WithPool(body func()) {
	r.PoolPush()
	defer r.PoolPop()
	body()
}

// WithPool is the scoped construct on the Default runtime:
//
//	arc.WithPool(func() {
//		s := arc.Autorelease(managed.NewString("scoped"))
//		// use s; it is released when the block exits
//	})
func WithPool(body func()) {
	Default().WithPool(body)
}
