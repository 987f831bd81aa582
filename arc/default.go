// File: arc/default.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide default runtime so short programs and the package-level API
// share one pool stack instead of each constructing their own.

package arc

import "sync"

var (
	defaultOnce    sync.Once
	defaultRuntime *Runtime
)

// Default returns the process-wide runtime, constructing it on first use.
func Default() *Runtime {
	defaultOnce.Do(func() {
		defaultRuntime = NewRuntime()
	})
	return defaultRuntime
}
