// File: arc/arc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reference-count engine primitives. The exported package-level API operates
// on the Default runtime; Runtime methods carry the same semantics for
// explicitly constructed runtimes.

package arc

import "reflect"

// retain increments the count. Nil headers are tolerated as a no-op.
func retain(h *Object) bool {
	if h == nil {
		return false
	}
	h.refs++
	return true
}

// release decrements the count and fires the finalizer on the first
// transition to zero or below. Returns (finalized, overReleased):
// overReleased is set when the object had already been finalized, in which
// case the finalizer does not run again.
func release(h *Object) (finalized, overReleased bool) {
	if h == nil {
		return false, false
	}
	h.refs--
	if h.refs > 0 {
		return false, false
	}
	if h.finalized {
		return false, true
	}
	h.finalized = true
	liveObjects--
	if h.finalizer != nil {
		h.finalizer()
	}
	return true, false
}

// Retain declares a new owner of the object. No-op on nil.
func Retain(h *Object) { Default().Retain(h) }

// Release drops one ownership reference; the object is finalized and must
// not be touched again once the count reaches zero. No-op on nil.
func Release(h *Object) { Default().Release(h) }

// Autorelease registers v with the Default runtime's current pool and
// returns v for chaining. Typed so the concrete managed type survives the
// call:
//
//	s := arc.Autorelease(managed.NewString("hi"))
//
// A nil pointer is tolerated as a no-op, matching Retain and Release.
func Autorelease[T Managed](v T) T {
	return AutoreleaseIn(Default(), v)
}

// AutoreleaseIn is Autorelease against an explicit runtime.
func AutoreleaseIn[T Managed](r *Runtime, v T) T {
	if h := headerOf(v); h != nil {
		r.Autorelease(h)
	}
	return v
}

// headerOf extracts the header from a managed value, tolerating both nil
// interfaces and typed-nil pointers (whose promoted Header would fault).
func headerOf(v Managed) *Object {
	if v == nil {
		return nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return v.Header()
}

// PoolPush installs a fresh autorelease pool on the Default runtime.
func PoolPush() { Default().PoolPush() }

// PoolPop drains and discards the Default runtime's current pool.
func PoolPop() { Default().PoolPop() }
