// pkgup is a command-line front-end around a package-resolution/build
// engine. This entrypoint wires the process lifecycle: signal bridge
// first, then the main operation, then outcome resolution and
// exactly-once teardown of the shared event loop, on every exit path.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pkgup/core"
	"pkgup/echolog"
	"pkgup/engine"
	"pkgup/lifecycle"
)

// releaseTimeout bounds teardown; a wedged release hook must not keep a
// dying process alive forever.
const releaseTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

// run is the whole lifecycle in order. It returns the exit code rather
// than calling os.Exit itself so deferred work inside it still runs; for
// the interrupted outcome the process dies by signal inside Apply and
// never reaches the return.
func run() int {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: could not read .env: %v\n", err)
	}

	cfg := core.LoadConfig()
	logger := echolog.NewLogger(cfg.DevMode, cfg.LogFile)
	echo := echolog.NewCollector(logger, os.Stderr)

	state := lifecycle.NewState(logger, echo)
	if err := state.Bridge.Install(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to install signal handling: %v\n", err)
		return core.ExitCodeError
	}

	profilePath := cfg.ProfilePath
	if len(os.Args) > 1 {
		profilePath = os.Args[1]
	}

	logger.Info("starting run",
		zap.String("run_id", echo.RunID().String()),
		zap.String("profile", profilePath),
	)

	outcome := state.Run(engine.Scripted(profilePath, state.Guard, echo))
	logger.Info("run finished", zap.Stringer("outcome", outcome.Kind))

	resolver := lifecycle.NewResolver(logger, echo, state.Bridge)
	resolution := resolver.Resolve(outcome)

	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	return resolver.Apply(ctx, resolution, state.Guard.Release)
}
