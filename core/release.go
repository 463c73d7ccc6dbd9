package core

import (
	"context"
)

// ReleaseFunc is the function signature for resource release hooks run
// during process teardown. Each release function receives a context that
// may carry a deadline, and returns an error if release fails.
//
// Implementations should:
//   - Respect context cancellation/deadline
//   - Return nil on success
//   - Be idempotent (safe to call multiple times)
//
// Example usage:
//
//	var loopRelease ReleaseFunc = func(ctx context.Context) error {
//	    return handle.Close()
//	}
type ReleaseFunc func(ctx context.Context) error
