// Package lifecycle implements the process-lifecycle core of the
// front-end: the signal bridge (asynchronous OS signals converted into
// synchronous control-flow events), the resource guard (exactly-once
// teardown of the lazily-created event loop on every exit path), and the
// exit resolver (outcome classification into exit codes and ordered
// diagnostics).
package lifecycle

import (
	"context"

	"go.uber.org/zap"

	"pkgup/core"
	"pkgup/echolog"
	"pkgup/eventloop"
)

// State is the explicit process-lifetime state of the lifecycle core.
// It replaces ambient global signal/loop state: one State is constructed
// at process start and threaded into the bridge, the guard, and the
// resolver.
//
// The interrupt context is the single cancellation source. The bridge
// cancels it with an InterruptSignal cause when a termination signal
// arrives; the event loop's suspension points observe it and unwind.
type State struct {
	Logger *zap.Logger
	Echo   *echolog.Collector
	Bridge *Bridge
	Guard  *Guard

	interrupt context.Context
	cancel    context.CancelCauseFunc
}

// NewState wires up a complete lifecycle: interrupt context, event loop
// provider, guard, and bridge. The bridge is returned uninstalled; call
// State.Bridge.Install before running any domain logic.
func NewState(logger *zap.Logger, echo *echolog.Collector) *State {
	ctx, cancel := context.WithCancelCause(context.Background())

	s := &State{
		Logger:    logger,
		Echo:      echo,
		interrupt: ctx,
		cancel:    cancel,
	}
	s.Guard = NewGuard(eventloop.NewProvider(ctx, logger), logger)
	s.Bridge = NewBridge(cancel, logger)
	return s
}

// Interrupt returns the interrupt context. Its cause, once cancelled by
// the bridge, is the *core.InterruptSignal carrying the signal number.
func (s *State) Interrupt() context.Context {
	return s.interrupt
}

// InterruptCause returns the InterruptSignal that cancelled the interrupt
// context, or nil if no termination signal has arrived.
func (s *State) InterruptCause() *core.InterruptSignal {
	if intr, ok := core.IsInterrupt(context.Cause(s.interrupt)); ok {
		return intr
	}
	return nil
}
