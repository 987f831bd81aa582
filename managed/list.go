// File: managed/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ordered collection of managed objects. The list retains elements on append
// and its finalizer releases them, so elements stay alive at least as long
// as the list does.

package managed

import "github.com/momentics/trove-arc/arc"

// List is a managed, ordered collection of managed objects.
type List struct {
	arc.Object
	items []arc.Managed
}

// NewList allocates an empty managed list owning one reference.
func NewList() *List {
	l := &List{}
	l.Init(func() {
		for _, it := range l.items {
			arc.Release(it.Header())
		}
		l.items = nil
	})
	return l
}

// Append retains v and adds it to the list.
func (l *List) Append(v arc.Managed) {
	arc.Retain(v.Header())
	l.items = append(l.items, v)
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the i-th element.
func (l *List) At(i int) arc.Managed { return l.items[i] }

var _ arc.Managed = (*List)(nil)
