// File: managed/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reference-counted byte buffer whose backing storage comes from a shared
// byte pool and returns to it on finalization.

package managed

import (
	"github.com/momentics/trove-arc/arc"
	"github.com/momentics/trove-arc/pool"
)

// bufferClass is the reusable storage size handed out by the shared pool.
const bufferClass = 4096

var bufferStorage = pool.NewBytePool(bufferClass)

// Buffer is a managed, growable byte buffer.
type Buffer struct {
	arc.Object
	data []byte
}

// NewBuffer allocates a managed buffer with n zero-valued bytes.
func NewBuffer(n int) *Buffer {
	b := &Buffer{data: bufferStorage.Acquire(n)}
	for i := range b.data {
		b.data[i] = 0
	}
	b.Init(func() {
		bufferStorage.Release(b.data)
		b.data = nil
	})
	return b
}

// Bytes exposes the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Append adds p to the buffer, returning the buffer for chaining.
func (b *Buffer) Append(p []byte) *Buffer {
	b.data = append(b.data, p...)
	return b
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int { return len(b.data) }

var _ arc.Managed = (*Buffer)(nil)
