// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
//
// Reusable []byte storage for managed buffer types. Buffers are bucketed by
// a single class size; requests larger than the class fall through to plain
// allocation and are dropped on release.

package pool

import (
	"sync"

	"github.com/momentics/trove-arc/api"
)

// BytePool hands out byte slices backed by a sync.Pool of fixed-class
// storage.
type BytePool struct {
	class int
	pool  *sync.Pool
}

// NewBytePool creates a pool whose reusable buffers hold up to class bytes.
func NewBytePool(class int) *BytePool {
	return &BytePool{
		class: class,
		pool: &sync.Pool{
			New: func() any { return make([]byte, 0, class) },
		},
	}
}

// Acquire returns a slice of exactly n bytes. Storage is reused when n fits
// the pool's class size.
func (b *BytePool) Acquire(n int) []byte {
	if n > b.class {
		return make([]byte, n)
	}
	buf := b.pool.Get().([]byte)
	return buf[:n]
}

// Release returns a buffer to the pool. Oversized buffers are left to the GC.
func (b *BytePool) Release(buf []byte) {
	if cap(buf) != b.class {
		return
	}
	b.pool.Put(buf[:0])
}

var _ api.BytePool = (*BytePool)(nil)
