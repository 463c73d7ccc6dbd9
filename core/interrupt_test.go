package core

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"
)

func TestInterruptSignal_Error(t *testing.T) {
	intr := &InterruptSignal{Signum: syscall.SIGTERM}
	if !strings.Contains(intr.Error(), "15") {
		t.Errorf("Error() = %q, expected to contain the signal number", intr.Error())
	}
}

func TestIsInterrupt(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct interrupt", &InterruptSignal{Signum: syscall.SIGINT}, true},
		{"wrapped interrupt", fmt.Errorf("run: %w", &InterruptSignal{Signum: syscall.SIGTERM}), true},
		{"plain error", errors.New("boom"), false},
		{"domain error", ErrParse("bad"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsInterrupt(tt.err)
			if ok != tt.want {
				t.Errorf("IsInterrupt() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestIsInterrupt_PreservesSignum(t *testing.T) {
	wrapped := fmt.Errorf("unwound: %w", &InterruptSignal{Signum: syscall.SIGTERM})
	intr, ok := IsInterrupt(wrapped)
	if !ok {
		t.Fatal("expected interrupt to be detected")
	}
	if intr.Signum != syscall.SIGTERM {
		t.Errorf("expected signum %d, got %d", syscall.SIGTERM, intr.Signum)
	}
}
