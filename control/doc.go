// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, hot-reload, and debug
// introspection layer for the trove-arc runtime.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads and atomic updates with reload listeners
//   - Counter and gauge telemetry for ARC operations
//   - Debug hooks and probe registration, with platform-specific probes
//     split by build tag
//
// The control plane may be scraped from a monitoring goroutine; its own
// state is therefore mutex-guarded. This extends no thread-safety guarantee
// to the ARC operations it observes.
package control
