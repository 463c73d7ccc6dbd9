package engine

import (
	"context"

	"pkgup/echolog"
	"pkgup/lifecycle"
)

// Scripted returns an Operation that drives the shared event loop through
// the steps of a YAML profile, echoing a message per step, and reports
// the profile's status.
//
// It is the demonstration engine: small enough to stay inside the
// collaborator boundary, real enough to exercise the lazy loop
// acquisition and the interrupt-at-suspension contract (Wait is where a
// termination signal surfaces).
func Scripted(path string, guard *lifecycle.Guard, echo *echolog.Collector) Operation {
	return func(ctx context.Context) (int, error) {
		profile, err := LoadProfile(path)
		if err != nil {
			return 0, err
		}

		loop, err := guard.Acquire()
		if err != nil {
			return 0, err
		}

		for _, step := range profile.Steps {
			message := step.Message
			if message == "" {
				message = "completed"
			}
			name := step.Name
			if err := loop.Submit(func() {
				echo.Info(name, message)
			}); err != nil {
				return 0, err
			}
		}

		// Suspend until the queue drains; an interrupt unwinds here.
		if err := loop.Wait(ctx); err != nil {
			return 0, err
		}
		return profile.Status, nil
	}
}
