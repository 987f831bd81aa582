// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and DTOs.

package api

// RuntimeStats is a point-in-time snapshot of an ARC runtime's state, as
// reported by the facade for health and leak inspection.
type RuntimeStats struct {
	PoolDepth           int   // number of pools currently on the stack
	MaxPoolDepth        int   // deepest nesting observed since start
	PendingAutoreleases int   // registrations waiting for a drain
	LiveObjects         int64 // initialized managed objects not yet finalized
}
