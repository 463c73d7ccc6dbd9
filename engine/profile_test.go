package engine

import (
	"os"
	"path/filepath"
	"testing"

	"pkgup/core"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}
	return path
}

func TestLoadProfile_Valid(t *testing.T) {
	path := writeProfile(t, `
name: nightly-sync
steps:
  - name: resolver
    message: 3 packages to merge
  - name: fetch
status: 0
`)

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.Name != "nightly-sync" {
		t.Errorf("expected name 'nightly-sync', got %q", profile.Name)
	}
	if len(profile.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(profile.Steps))
	}
	if profile.Steps[0].Message != "3 packages to merge" {
		t.Errorf("unexpected step message %q", profile.Steps[0].Message)
	}
	if profile.Status != 0 {
		t.Errorf("expected status 0, got %d", profile.Status)
	}
}

func TestLoadProfile_MalformedIsParseError(t *testing.T) {
	path := writeProfile(t, "name: [unterminated\n")

	_, err := LoadProfile(path)
	domErr, ok := core.IsDomainError(err)
	if !ok {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if domErr.Kind != core.KindParse {
		t.Errorf("expected parse kind, got %s", domErr.Kind)
	}
	if domErr.Code != core.ExitCodeError {
		t.Errorf("expected code %d, got %d", core.ExitCodeError, domErr.Code)
	}
}

func TestLoadProfile_DirectoryIsDomainError(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProfile(dir)
	domErr, ok := core.IsDomainError(err)
	if !ok {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if domErr.Kind != core.KindIsADirectory {
		t.Errorf("expected is-a-directory kind, got %s", domErr.Kind)
	}
	if domErr.Detail != dir {
		t.Errorf("expected detail %q, got %q", dir, domErr.Detail)
	}
}

func TestLoadProfile_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	path := writeProfile(t, "name: locked\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}

	_, err := LoadProfile(path)
	domErr, ok := core.IsDomainError(err)
	if !ok {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if domErr.Kind != core.KindPermissionDenied {
		t.Errorf("expected permission-denied kind, got %s", domErr.Kind)
	}
}

func TestLoadProfile_MissingIsUnclassified(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing profile")
	}
	if _, ok := core.IsDomainError(err); ok {
		t.Errorf("a missing profile is not a classified error, got %v", err)
	}
}
