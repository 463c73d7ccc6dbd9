package core

import "syscall"

// Exit codes for the front-end process.
// These follow Unix conventions where signal-based exits are 128 + signal number.
const (
	// ExitCodeSuccess indicates a clean run (exit code 0)
	ExitCodeSuccess = 0

	// ExitCodeError indicates a generic failure: parse errors and
	// unclassified failures (exit code 1)
	ExitCodeError = 1

	// ExitCodeSIGINT indicates termination due to SIGINT (Ctrl+C)
	// Convention: 128 + 2 (SIGINT) = 130
	ExitCodeSIGINT = 130

	// ExitCodeSIGTERM indicates termination due to SIGTERM
	// Convention: 128 + 15 (SIGTERM) = 143
	ExitCodeSIGTERM = 143
)

// SignalExitCode returns the conventional exit code for death by the given
// signal (128 + signal number). It is the fallback used where true signal
// re-delivery is unavailable; on Unix the process dies by the signal itself
// and this code is never observed.
func SignalExitCode(sig syscall.Signal) int {
	return 128 + int(sig)
}

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	case int(syscall.EACCES):
		return "permission denied"
	case int(syscall.EISDIR):
		return "is a directory"
	case ExitCodeSIGINT:
		return "interrupted (SIGINT)"
	case ExitCodeSIGTERM:
		return "terminated (SIGTERM)"
	default:
		return "unknown"
	}
}

// IsSignalExit returns true if the exit code indicates a signal-based
// termination.
func IsSignalExit(code int) bool {
	return code > 128 && code < 160
}
