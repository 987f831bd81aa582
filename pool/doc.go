// Package pool
// Author: momentics <momentics@gmail.com>
//
// Deferred-release pool storage for the trove-arc runtime.
// Implements the autorelease pool (growable FIFO entry storage, drained in
// insertion order), a generic recycler for drained pool objects, and the
// byte pool backing managed buffer storage.
// See autorelease.go, objpool.go, bytepool.go for implementation details.
package pool
