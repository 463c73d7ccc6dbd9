//go:build windows

package lifecycle

import (
	"os"
	"syscall"
)

// dispositionTable returns the fixed signal dispositions for Windows.
// SIGPIPE and SIGUSR1 do not exist here; skipping them is the graceful
// degradation the startup contract requires.
func dispositionTable() map[os.Signal]Disposition {
	return map[os.Signal]Disposition{
		os.Interrupt:    DispositionInterrupt,
		syscall.SIGTERM: DispositionInterrupt,
	}
}
