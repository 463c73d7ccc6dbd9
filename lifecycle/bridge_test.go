package lifecycle

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestBridge_InstallExactlyOnce(t *testing.T) {
	_, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	b := NewBridge(cancel, zap.NewNop())
	if err := b.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	defer b.Uninstall()

	if err := b.Install(); !errors.Is(err, ErrBridgeInstalled) {
		t.Errorf("expected ErrBridgeInstalled on second Install, got %v", err)
	}
}

func TestBridge_UninstallAllowsReinstall(t *testing.T) {
	_, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	b := NewBridge(cancel, zap.NewNop())
	if err := b.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	b.Uninstall()

	if err := b.Install(); err != nil {
		t.Errorf("expected reinstall after Uninstall to succeed, got %v", err)
	}
	b.Uninstall()
}

func TestBridge_UninstallWithoutInstall(t *testing.T) {
	_, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	b := NewBridge(cancel, zap.NewNop())
	// Must not panic or block.
	b.Uninstall()
}

func TestBridge_TableIsACopy(t *testing.T) {
	_, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	b := NewBridge(cancel, zap.NewNop())
	table := b.Table()
	if len(table) == 0 {
		t.Fatal("expected a non-empty disposition table")
	}
	for sig := range table {
		delete(table, sig)
	}
	if len(b.Table()) == 0 {
		t.Error("mutating the returned table must not affect the bridge")
	}
}
