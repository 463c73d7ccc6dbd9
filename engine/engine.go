// Package engine defines the boundary to the package-resolution/build
// engine. The lifecycle core treats the engine as opaque: a callable
// returning an integer status or failing with one of the recognized
// domain error kinds (or anything else, which the top level reports as an
// unclassified failure).
package engine

import (
	"context"
)

// Operation is the main operation contract. The returned status becomes
// the process exit code on success; it is not forced to zero.
//
// The context is the lifecycle's interrupt context: implementations must
// let its cancellation unwind them (typically by suspending on the event
// loop's Wait) and must never swallow the resulting InterruptSignal.
type Operation func(ctx context.Context) (int, error)
