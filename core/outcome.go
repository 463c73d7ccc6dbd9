package core

import (
	"fmt"
	"syscall"
)

// OutcomeKind discriminates the tagged Outcome value.
type OutcomeKind int

const (
	// OutcomeSuccess: the main operation returned a status of its own.
	// The status is passed through as the exit code unchanged - it is not
	// forced to zero.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeDomainError: the main operation failed with one of the
	// recognized, user-facing error kinds. One clean line, no trace.
	OutcomeDomainError

	// OutcomeInterrupted: a termination signal unwound the run. Not a
	// failure - the process dies by the original signal.
	OutcomeInterrupted

	// OutcomeFailure: anything else. Reported with a full trace, but only
	// after the echo log has been finalized.
	OutcomeFailure
)

// String returns the tag name, for logging.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeDomainError:
		return "domain-error"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the tagged value produced by running the main operation and
// the sole input to the exit resolver. Exactly one tag is active; which
// fields are meaningful depends on Kind:
//
//	OutcomeSuccess:     Code
//	OutcomeDomainError: Err (Code derives from Err.Code)
//	OutcomeInterrupted: Signum
//	OutcomeFailure:     Trace
type Outcome struct {
	Kind   OutcomeKind
	Code   int
	Err    *DomainError
	Signum syscall.Signal
	Trace  string
}

// SuccessOutcome wraps a normal integer status from the main operation.
func SuccessOutcome(code int) Outcome {
	return Outcome{Kind: OutcomeSuccess, Code: code}
}

// DomainErrorOutcome wraps a classified, user-facing error.
func DomainErrorOutcome(err *DomainError) Outcome {
	return Outcome{Kind: OutcomeDomainError, Err: err, Code: err.Code}
}

// InterruptedOutcome wraps a signal-driven cancellation.
func InterruptedOutcome(signum syscall.Signal) Outcome {
	return Outcome{Kind: OutcomeInterrupted, Signum: signum}
}

// FailureOutcome wraps an unclassified failure with its trace text.
func FailureOutcome(trace string) Outcome {
	return Outcome{Kind: OutcomeFailure, Trace: trace, Code: ExitCodeError}
}

// Classify converts the raw result of the main operation into an Outcome.
// Classification precedence: interrupt first (cancellation must never be
// misfiled as a failure), then the recognized domain kinds, then success,
// then the unclassified fallback.
func Classify(status int, err error) Outcome {
	if err == nil {
		return SuccessOutcome(status)
	}
	if intr, ok := IsInterrupt(err); ok {
		return InterruptedOutcome(intr.Signum)
	}
	if domErr, ok := IsDomainError(err); ok {
		return DomainErrorOutcome(domErr)
	}
	return FailureOutcome(fmt.Sprintf("%v", err))
}
