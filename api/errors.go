// Package api
// Author: momentics <momentics@gmail.com>
//
// Error values surfaced by the trove-arc library. The error surface is
// deliberately narrow: allocation failure of pool machinery is fatal and
// aborts the process, over-release and nil arguments are tolerated no-ops,
// leaving a single reportable condition.

package api

import "fmt"

// ErrNoActivePool is returned when a deferred release is requested with no
// autorelease pool on the stack. The registration is dropped and the object
// stays the caller's responsibility.
var ErrNoActivePool = fmt.Errorf("no autorelease pool is active")
