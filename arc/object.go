// File: arc/object.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Managed object header: reference count plus finalizer. Concrete managed
// types embed Object and initialize it from their constructor, which gives
// them the Managed contract for free.

package arc

// Finalizer releases every resource a managed object owns, including
// releasing any nested managed objects it retains. It runs exactly once,
// when the object's reference count first reaches zero.
type Finalizer func()

// Object is the common header of every reference-counted value. The zero
// value is inert; Init must run before the object enters the runtime.
type Object struct {
	refs      int64
	finalizer Finalizer
	finalized bool
}

// Managed is satisfied by any type that embeds Object.
type Managed interface {
	Header() *Object
}

// liveObjects counts initialized headers that have not been finalized yet.
// Exposed through LiveObjects for leak probes.
var liveObjects int64

// Init sets the reference count to 1 and installs the finalizer. Called by
// the constructor of a concrete managed type, after which the caller owns
// exactly one reference.
func (o *Object) Init(fin Finalizer) {
	o.refs = 1
	o.finalizer = fin
	o.finalized = false
	liveObjects++
}

// Header returns the object's own header, satisfying Managed via embedding.
func (o *Object) Header() *Object { return o }

// RefCount returns the current reference count.
func (o *Object) RefCount() int64 { return o.refs }

// Finalized reports whether the finalizer has already run. A finalized
// object is gone; no further use of it is valid.
func (o *Object) Finalized() bool { return o.finalized }

// LiveObjects returns the number of initialized, not-yet-finalized managed
// objects in the process.
func LiveObjects() int64 { return liveObjects }
