package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"pkgup/core"
)

// Disposition is the handling policy bound to a recognized signal.
type Disposition int

const (
	// DispositionIgnore silences the signal at the OS level. Used for the
	// broken-pipe signal so the process survives a downstream consumer
	// closing early.
	DispositionIgnore Disposition = iota

	// DispositionInterrupt converts the signal into an InterruptSignal
	// surfaced at the event loop's suspension points. The handler performs
	// no cleanup itself.
	DispositionInterrupt

	// DispositionDebug dumps all goroutine stacks to stderr for live
	// diagnosis. A development aid.
	DispositionDebug
)

// ErrBridgeInstalled is returned when Install is called twice.
var ErrBridgeInstalled = errors.New("signal bridge already installed")

// Bridge installs the fixed signal disposition table and runs the
// listener goroutine that converts termination signals into interrupts.
//
// The disposition table is fixed per platform (see signals_unix.go /
// signals_windows.go): signals the platform does not support are simply
// absent from the table, which is the graceful degradation the startup
// path requires. The table is never mutated after Install.
//
// Handlers stay short and allocation-light: the listener only counts the
// signal, cancels the interrupt context, and returns. It never touches
// the guard's resources - a signal may arrive while the main flow holds
// them mid-acquisition.
type Bridge struct {
	logger  *zap.Logger
	cancel  context.CancelCauseFunc
	table   map[os.Signal]Disposition
	counter *SignalCounter

	// force is the repeated-signal escape hatch. Overridable in tests;
	// the default restores the disposition and re-delivers the signal.
	force func(syscall.Signal)

	mu        sync.Mutex
	installed bool
	ch        chan os.Signal
	done      chan struct{}
}

// NewBridge creates a Bridge that cancels the given cause func with an
// InterruptSignal when a termination signal arrives.
func NewBridge(cancel context.CancelCauseFunc, logger *zap.Logger) *Bridge {
	b := &Bridge{
		logger:  logger,
		cancel:  cancel,
		table:   dispositionTable(),
		counter: NewSignalCounter(),
	}
	b.force = b.forceSignalDeath
	return b
}

// Table returns a copy of the installed disposition table.
func (b *Bridge) Table() map[os.Signal]Disposition {
	out := make(map[os.Signal]Disposition, len(b.table))
	for sig, disp := range b.table {
		out[sig] = disp
	}
	return out
}

// Install registers the disposition table with the OS and starts the
// listener goroutine. It must run before any domain logic and exactly
// once; a second call returns ErrBridgeInstalled.
func (b *Bridge) Install() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.installed {
		return ErrBridgeInstalled
	}

	var notify []os.Signal
	for sig, disp := range b.table {
		switch disp {
		case DispositionIgnore:
			signal.Ignore(sig)
		case DispositionInterrupt, DispositionDebug:
			notify = append(notify, sig)
		}
	}

	b.ch = make(chan os.Signal, 4)
	b.done = make(chan struct{})
	signal.Notify(b.ch, notify...)
	b.installed = true

	go b.listen(b.ch, b.done)

	b.logger.Debug("signal bridge installed", zap.Int("signals", len(b.table)))
	return nil
}

// Uninstall stops the listener and restores every handled signal to its
// platform default. Primarily for tests; a normal run leaves the bridge
// installed until the process dies.
func (b *Bridge) Uninstall() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.installed {
		return
	}
	signal.Stop(b.ch)
	for sig := range b.table {
		signal.Reset(sig)
	}
	close(b.done)
	b.installed = false
}

// RestoreDefault restores the platform-default disposition for sig. The
// exit resolver calls this before re-delivering the signal so the process
// dies a true signal death.
func (b *Bridge) RestoreDefault(sig os.Signal) {
	signal.Reset(sig)
}

// listen converts delivered signals per the disposition table. It runs
// until Uninstall closes done.
func (b *Bridge) listen(ch <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-ch:
			b.dispatch(sig)
		case <-done:
			return
		}
	}
}

func (b *Bridge) dispatch(sig os.Signal) {
	switch b.table[sig] {
	case DispositionDebug:
		b.debugBreak()
	case DispositionInterrupt:
		signum, ok := sig.(syscall.Signal)
		if !ok {
			signum = syscall.SIGTERM
		}
		if b.counter.Increment() > 1 {
			b.logger.Warn("repeated termination signal, dying immediately",
				zap.String("signal", sig.String()),
			)
			b.force(signum)
			return
		}
		b.logger.Info("termination signal received",
			zap.String("signal", sig.String()),
		)
		b.cancel(&core.InterruptSignal{Signum: signum})
	}
}

// debugBreak dumps all goroutine stacks to stderr. Live-diagnosis aid
// bound to the user-diagnostic signal.
func (b *Bridge) debugBreak() {
	buf := make([]byte, 1<<20)
	n := runtime.Stack(buf, true)
	os.Stderr.Write(buf[:n])
}

// forceSignalDeath is the default force hook: restore the disposition and
// re-deliver the signal so the process dies by it right now, skipping
// graceful teardown.
func (b *Bridge) forceSignalDeath(signum syscall.Signal) {
	b.RestoreDefault(signum)
	if err := reraiseSelf(signum); err != nil {
		os.Exit(core.SignalExitCode(signum))
	}
}
