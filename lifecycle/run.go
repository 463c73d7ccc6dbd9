package lifecycle

import (
	"context"
	"fmt"
	"runtime/debug"

	"pkgup/core"
)

// Run executes the main operation under the lifecycle's classification
// boundary and returns its Outcome. This is the only catch-all in the
// repository, and it follows the propagation policy exactly:
//
//   - An interrupt (signal-driven cancellation) is never treated as a
//     failure: whether it comes back as an error or escapes via panic,
//     it becomes an Interrupted outcome.
//   - Classified domain errors pass through untouched so their code and
//     message stay authoritative at the boundary.
//   - Everything else, including panics, becomes an unclassified Failure
//     carrying its trace text.
//
// The operation receives the interrupt context; it is expected to reach
// a suspension point (the event loop's Wait) where an arriving
// termination signal unwinds it.
func (s *State) Run(op func(ctx context.Context) (int, error)) (outcome core.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				if intr, isIntr := core.IsInterrupt(err); isIntr {
					outcome = core.InterruptedOutcome(intr.Signum)
					return
				}
			}
			outcome = core.FailureOutcome(
				fmt.Sprintf("panic: %v\n\n%s", rec, debug.Stack()),
			)
		}
	}()

	status, err := op(s.interrupt)
	return core.Classify(status, err)
}
