package echolog

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLogLevelString(t *testing.T) {
	tests := []struct {
		value string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"ERROR", zapcore.ErrorLevel},
		{" info ", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := ParseLogLevelString(tt.value, zapcore.InfoLevel)
			if got != tt.want {
				t.Errorf("ParseLogLevelString(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseLogLevel_Env(t *testing.T) {
	t.Setenv("PKGUP_TEST_LEVEL", "debug")
	if got := ParseLogLevel("PKGUP_TEST_LEVEL", zapcore.InfoLevel); got != zapcore.DebugLevel {
		t.Errorf("expected debug, got %v", got)
	}

	if got := ParseLogLevel("PKGUP_TEST_LEVEL_UNSET", zapcore.WarnLevel); got != zapcore.WarnLevel {
		t.Errorf("expected default warn for unset var, got %v", got)
	}
}
