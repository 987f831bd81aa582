// Package arc
// Author: momentics <momentics@gmail.com>
//
// Manual reference counting with deferred-release (autorelease) pools.
//
// Every managed value embeds an Object header carrying its reference count
// and finalizer. Retain declares a new owner, Release drops one and runs the
// finalizer exactly once when the count reaches zero, and Autorelease defers
// the release until the innermost pool drains. Pools nest as a true LIFO
// stack: popping a pool restores the one pushed before it.
//
// All ARC operations assume a single logical thread of control. They take no
// locks and use no atomics; multi-threaded use requires external ownership
// transfer, one runtime per thread, or both.
package arc
