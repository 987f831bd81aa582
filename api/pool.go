// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling APIs: reusable object and byte-buffer allocation backing
// the runtime's pool recycling and managed buffer storage.

package api

// BytePool provides reusable []byte storage for managed buffer types.
type BytePool interface {
	// Acquire returns a slice of exactly n bytes.
	Acquire(n int) []byte

	// Release returns a buffer to the pool for reuse.
	Release(buf []byte)
}

// ObjectPool provides generic pooling of transiently allocated objects.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}
