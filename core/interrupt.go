package core

import (
	"errors"
	"fmt"
	"syscall"
)

// InterruptSignal is the atom that carries a termination signal from the
// asynchronous signal listener into normal synchronous control flow.
//
// It is created by the signal bridge at the instant a convert-to-interrupt
// signal is delivered and consumed by the exit resolver (or by outer control
// flow that re-propagates it). It carries nothing but the signal number:
// that is all that is needed to restore the default disposition and
// re-deliver the signal at exit.
//
// InterruptSignal implements error so it can unwind call stacks, but it is
// NOT a failure. Any catch-all error handling MUST detect it (see
// IsInterrupt) and re-propagate it unchanged rather than report it.
type InterruptSignal struct {
	// Signum is the number of the OS signal that triggered the interrupt.
	Signum syscall.Signal
}

// Error implements the error interface.
func (e *InterruptSignal) Error() string {
	return fmt.Sprintf("interrupted by signal %d", int(e.Signum))
}

// IsInterrupt reports whether err is (or wraps) an InterruptSignal and
// returns it if so.
//
// Every catch-all site in the codebase uses this to exclude cancellation
// from failure handling:
//
//	if intr, ok := core.IsInterrupt(err); ok {
//	    return 0, intr // user-intentional exit, pass it through
//	}
func IsInterrupt(err error) (*InterruptSignal, bool) {
	var intr *InterruptSignal
	if errors.As(err, &intr) {
		return intr, true
	}
	return nil, false
}
