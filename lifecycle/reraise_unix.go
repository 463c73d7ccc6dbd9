//go:build !windows

package lifecycle

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// reraiseSelf re-delivers sig to the current process. With the default
// disposition restored first, the process terminates by the signal itself
// rather than a plain exit code, so process-group and parent observers
// see a genuine signal death.
func reraiseSelf(sig syscall.Signal) error {
	return unix.Kill(unix.Getpid(), sig)
}
