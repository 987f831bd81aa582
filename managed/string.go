// File: managed/string.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package managed

import "github.com/momentics/trove-arc/arc"

// String is an immutable reference-counted text value.
type String struct {
	arc.Object
	text string
}

// NewString allocates a managed string holding text. The caller owns one
// reference; a matching release (direct or via pool drain) ends the
// object's lifetime.
func NewString(text string) *String {
	s := &String{text: text}
	s.Init(func() {
		s.text = ""
	})
	return s
}

// Value returns the string's text. Invalid after finalization.
func (s *String) Value() string { return s.text }

var _ arc.Managed = (*String)(nil)
