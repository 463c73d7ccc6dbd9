package core

import (
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("PKGUP_TEST_VAR", "set")
	if got := GetEnvOrDefault("PKGUP_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("expected 'set', got %q", got)
	}
	if got := GetEnvOrDefault("PKGUP_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected 'fallback', got %q", got)
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("PKGUP_TEST_INT", "42")
	if got := ParseIntEnv("PKGUP_TEST_INT", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	t.Setenv("PKGUP_TEST_INT", "not-a-number")
	if got := ParseIntEnv("PKGUP_TEST_INT", 7); got != 7 {
		t.Errorf("expected default 7 for unparseable value, got %d", got)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"TRUE", false, true},
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PKGUP_TEST_BOOL", tt.value)
			if got := ParseBoolEnv("PKGUP_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("ParseBoolEnv(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
			}
		})
	}
}
