//go:build !windows

package lifecycle

import (
	"os"
	"syscall"
)

// dispositionTable returns the fixed signal dispositions for Unix:
//   - SIGPIPE is ignored so a downstream consumer closing its end of a
//     pipe does not kill the front-end mid-output.
//   - SIGTERM and SIGINT convert to interrupts.
//   - SIGUSR1 triggers the goroutine stack dump.
//
// Signals absent from this table keep the platform default.
func dispositionTable() map[os.Signal]Disposition {
	return map[os.Signal]Disposition{
		syscall.SIGPIPE: DispositionIgnore,
		syscall.SIGTERM: DispositionInterrupt,
		syscall.SIGINT:  DispositionInterrupt,
		syscall.SIGUSR1: DispositionDebug,
	}
}
