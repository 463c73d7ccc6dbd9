package core

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      error
		wantKind OutcomeKind
		wantCode int
	}{
		{
			name:     "nil error is success with status passed through",
			status:   3,
			err:      nil,
			wantKind: OutcomeSuccess,
			wantCode: 3,
		},
		{
			name:     "domain error carries its own code",
			err:      ErrPermissionDenied("/etc/shadow"),
			wantKind: OutcomeDomainError,
			wantCode: int(syscall.EACCES),
		},
		{
			name:     "interrupt is never a failure",
			err:      &InterruptSignal{Signum: syscall.SIGTERM},
			wantKind: OutcomeInterrupted,
		},
		{
			name:     "wrapped interrupt is still an interrupt",
			err:      fmt.Errorf("loop: %w", &InterruptSignal{Signum: syscall.SIGINT}),
			wantKind: OutcomeInterrupted,
		},
		{
			name:     "unknown error is an unclassified failure",
			err:      errors.New("something unexpected"),
			wantKind: OutcomeFailure,
			wantCode: ExitCodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.status, tt.err)
			if outcome.Kind != tt.wantKind {
				t.Fatalf("Classify() kind = %s, want %s", outcome.Kind, tt.wantKind)
			}
			if tt.wantKind != OutcomeInterrupted && outcome.Code != tt.wantCode {
				t.Errorf("Classify() code = %d, want %d", outcome.Code, tt.wantCode)
			}
		})
	}
}

func TestClassify_InterruptSignum(t *testing.T) {
	outcome := Classify(0, &InterruptSignal{Signum: syscall.SIGTERM})
	if outcome.Signum != syscall.SIGTERM {
		t.Errorf("expected signum %d, got %d", syscall.SIGTERM, outcome.Signum)
	}
}

func TestClassify_FailureTrace(t *testing.T) {
	outcome := Classify(0, errors.New("disk exploded"))
	if !strings.Contains(outcome.Trace, "disk exploded") {
		t.Errorf("expected trace to contain the error text, got %q", outcome.Trace)
	}
}

func TestOutcomeKind_String(t *testing.T) {
	tests := []struct {
		kind OutcomeKind
		want string
	}{
		{OutcomeSuccess, "success"},
		{OutcomeDomainError, "domain-error"},
		{OutcomeInterrupted, "interrupted"},
		{OutcomeFailure, "failure"},
		{OutcomeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
