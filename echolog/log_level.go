package echolog

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLogLevel parses a log level from an environment variable, falling
// back to defaultLevel when the variable is unset or invalid. Parsing is
// case-insensitive.
//
// Valid levels: debug, info, warn, error, fatal.
//
// Example:
//
//	level := ParseLogLevel("PKGUP_LOG_LEVEL", zapcore.InfoLevel)
func ParseLogLevel(envVarName string, defaultLevel zapcore.Level) zapcore.Level {
	value := os.Getenv(envVarName)
	if value == "" {
		return defaultLevel
	}
	return ParseLogLevelString(value, defaultLevel)
}

// ParseLogLevelString parses a log level string, falling back to
// defaultLevel for anything unrecognized.
func ParseLogLevelString(value string, defaultLevel zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return defaultLevel
	}
}
