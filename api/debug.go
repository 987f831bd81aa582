// Package api
// Author: momentics
//
// Live debug and introspection support for long-running processes that embed
// the ARC runtime.

package api

// Debug exposes runtime introspection probes.
type Debug interface {
	// DumpState emits a snapshot of all registered probes for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a new named debug probe.
	RegisterProbe(name string, fn func() any)
}
