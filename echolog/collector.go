// Package echolog implements the front-end's diagnostics subsystem: a
// buffered "echo" collector for user-facing messages, backed by a rotating
// structured log file.
//
// Messages accumulate silently during the run and are replayed in one
// block when Finalize is called - at normal exit, or strictly before the
// trace text of an unexpected failure so that buffered informational lines
// never bury the trace.
package echolog

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Record is one buffered echo message.
type Record struct {
	Level   zapcore.Level // severity, used for the replay marker
	Module  string        // originating subsystem ("resolver", "fetch", ...)
	Message string
}

// Collector buffers user-facing messages for replay at process exit and
// mirrors each one to the structured log as it arrives. Every collector
// carries a per-invocation run ID stamped into the structured records.
type Collector struct {
	mu        sync.Mutex
	logger    *zap.Logger
	out       io.Writer
	runID     uuid.UUID
	records   []Record
	finalized bool
}

// NewCollector creates a Collector that replays to out on Finalize.
// Structured mirrors of each message go to logger immediately.
func NewCollector(logger *zap.Logger, out io.Writer) *Collector {
	return &Collector{
		logger: logger,
		out:    out,
		runID:  uuid.New(),
	}
}

// RunID returns this invocation's identifier.
func (c *Collector) RunID() uuid.UUID {
	return c.runID
}

// Info buffers an informational message from the named module.
func (c *Collector) Info(module, message string) {
	c.append(zapcore.InfoLevel, module, message)
}

// Warn buffers a warning from the named module.
func (c *Collector) Warn(module, message string) {
	c.append(zapcore.WarnLevel, module, message)
}

// Error buffers an error-level message from the named module.
func (c *Collector) Error(module, message string) {
	c.append(zapcore.ErrorLevel, module, message)
}

func (c *Collector) append(level zapcore.Level, module, message string) {
	c.mu.Lock()
	if !c.finalized {
		c.records = append(c.records, Record{Level: level, Module: module, Message: message})
	}
	c.mu.Unlock()

	if ce := c.logger.Check(level, message); ce != nil {
		ce.Write(
			zap.String("module", module),
			zap.String("run_id", c.runID.String()),
		)
	}
}

// Count returns the number of buffered records.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Finalize replays the buffered messages to the output writer and syncs
// the structured log. It is idempotent: only the first call replays, and
// calling it with nothing buffered is a safe no-op.
func (c *Collector) Finalize() error {
	c.mu.Lock()
	records := c.records
	replay := !c.finalized
	c.finalized = true
	c.records = nil
	c.mu.Unlock()

	if replay && len(records) > 0 {
		banner := color.New(color.FgYellow, color.Bold)
		banner.Fprintf(c.out, ">>> buffered messages (run %s):\n", c.runID)
		lastModule := ""
		for _, rec := range records {
			if rec.Module != lastModule {
				fmt.Fprintf(c.out, "[%s]\n", rec.Module)
				lastModule = rec.Module
			}
			fmt.Fprintf(c.out, " %s %s\n", marker(rec.Level), rec.Message)
		}
	}

	// Sync errors on tty-backed sinks are routine; surface them to the
	// caller and let it decide whether they matter.
	return c.logger.Sync()
}

// Finalized reports whether Finalize has been called.
func (c *Collector) Finalized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finalized
}

// marker returns the replay prefix for a severity level.
func marker(level zapcore.Level) string {
	switch {
	case level >= zapcore.ErrorLevel:
		return "!"
	case level >= zapcore.WarnLevel:
		return "*"
	default:
		return "-"
	}
}
