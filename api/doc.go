// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the trove-arc library: pooling interfaces, debug
// introspection, error values, and stats DTOs. This package carries no
// implementation and is imported by every other layer.
package api
