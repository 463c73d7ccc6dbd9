package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"pkgup/core"
)

// Finalizer flushes the diagnostics subsystem. Must be idempotent and
// safe to call when nothing was buffered.
type Finalizer interface {
	Finalize() error
}

// Resolution is the resolver's verdict on an outcome: the exit code, the
// exact stderr text (empty for none), and the side-effect flags Apply
// acts on.
type Resolution struct {
	Code int

	// Stderr is written byte-exactly; the templates here are a drop-in
	// compatibility contract.
	Stderr string

	// FlushFirst forces the echo log to be finalized before Stderr is
	// written, so buffered lines do not bury an unexpected-failure trace.
	FlushFirst bool

	// Reraise selects true signal death: restore the default disposition
	// for Signum and re-deliver it after teardown.
	Reraise bool
	Signum  syscall.Signal
}

// Resolver turns an Outcome into a Resolution (pure) and applies it
// (side effects through injected seams, so tests can record ordering).
type Resolver struct {
	Logger *zap.Logger

	// Out is the stderr sink. Defaults to os.Stderr.
	Out io.Writer

	// Echo is the diagnostics subsystem finalized before traces and at
	// every exit.
	Echo Finalizer

	// Restore restores the platform-default disposition for a signal.
	Restore func(os.Signal)

	// Raise re-delivers a signal to this process.
	Raise func(syscall.Signal) error
}

// NewResolver creates a Resolver wired to the real process: stderr, the
// bridge's disposition restore, and self re-delivery.
func NewResolver(logger *zap.Logger, echo Finalizer, bridge *Bridge) *Resolver {
	return &Resolver{
		Logger:  logger,
		Out:     os.Stderr,
		Echo:    echo,
		Restore: bridge.RestoreDefault,
		Raise:   reraiseSelf,
	}
}

// Resolve maps an outcome to its resolution. Pure: no side effects, so
// resolving the same outcome twice yields the same resolution.
//
// Policy precedence: interrupted, then classified domain errors, then
// unclassified failures, then success pass-through.
func (r *Resolver) Resolve(outcome core.Outcome) Resolution {
	switch outcome.Kind {
	case core.OutcomeInterrupted:
		return Resolution{
			Code:    core.SignalExitCode(outcome.Signum),
			Stderr:  fmt.Sprintf("\n\nExiting on signal %d\n", int(outcome.Signum)),
			Reraise: true,
			Signum:  outcome.Signum,
		}

	case core.OutcomeDomainError:
		return Resolution{
			Code:   outcome.Err.Code,
			Stderr: domainErrorText(outcome.Err),
		}

	case core.OutcomeFailure:
		trace := outcome.Trace
		if !strings.HasSuffix(trace, "\n") {
			trace += "\n"
		}
		return Resolution{
			Code:       core.ExitCodeError,
			Stderr:     trace,
			FlushFirst: true,
		}

	default:
		// Success: the main operation's status is the exit status, not
		// forced to zero.
		return Resolution{Code: outcome.Code}
	}
}

// domainErrorText renders the kind-specific one-line message. No stack
// trace on this path: these failures are expected and actionable.
func domainErrorText(err *core.DomainError) string {
	switch err.Kind {
	case core.KindPermissionDenied:
		return fmt.Sprintf("Permission denied: '%s'\n", err.Detail)
	case core.KindIsADirectory:
		return fmt.Sprintf("'%s' is a directory, but should be a file!\n", err.Detail) +
			"See the pkgup(1) manual page for profile file requirements.\n"
	case core.KindParse:
		return err.Detail + "\n"
	default:
		return err.Error() + "\n"
	}
}

// Apply performs the resolution's side effects in contract order and
// returns the exit code:
//
//  1. Echo finalize, before stderr when FlushFirst is set, after it
//     otherwise.
//  2. Stderr text, written byte-exactly and unbuffered.
//  3. Disposition restore for the re-raise signal.
//  4. The release hook (the guard's teardown) - on every path.
//  5. Signal re-delivery, after which the process is dead on platforms
//     that support it; the returned code is the 128+signum fallback.
//
// Apply is safe to call repeatedly with a Success resolution: finalize is
// idempotent and the release hook guards its own exactly-once rule.
func (r *Resolver) Apply(ctx context.Context, res Resolution, release core.ReleaseFunc) int {
	if res.FlushFirst {
		r.finalize()
		r.write(res.Stderr)
	} else {
		r.write(res.Stderr)
		r.finalize()
	}

	if res.Reraise && r.Restore != nil {
		r.Restore(res.Signum)
	}

	if release != nil {
		if err := release(ctx); err != nil {
			r.Logger.Error("teardown failed", zap.Error(err))
		}
	}

	if res.Reraise && r.Raise != nil {
		if err := r.Raise(res.Signum); err != nil {
			r.Logger.Warn("signal re-delivery unavailable, exiting with fallback code",
				zap.Int("code", res.Code),
				zap.Error(err),
			)
		}
	}

	return res.Code
}

func (r *Resolver) write(text string) {
	if text == "" {
		return
	}
	io.WriteString(r.Out, text)
}

func (r *Resolver) finalize() {
	if r.Echo == nil {
		return
	}
	if err := r.Echo.Finalize(); err != nil {
		// Sync failures on tty sinks are routine; record and move on.
		r.Logger.Debug("echo finalize", zap.Error(err))
	}
}
