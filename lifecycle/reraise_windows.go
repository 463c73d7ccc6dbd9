//go:build windows

package lifecycle

import (
	"errors"
	"syscall"
)

// reraiseSelf is unavailable on Windows; callers fall back to exiting
// with the conventional 128+signum code instead of a true signal death.
func reraiseSelf(sig syscall.Signal) error {
	return errors.New("signal re-delivery not supported on windows")
}
