package echolog

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default file writer configuration values
const (
	// DefaultMaxSizeMB is the maximum size in megabytes before rotation
	DefaultMaxSizeMB = 50

	// DefaultMaxBackups is the number of old log files to retain
	DefaultMaxBackups = 3

	// DefaultMaxAgeDays is the maximum number of days to retain old log files
	DefaultMaxAgeDays = 14
)

// FileWriterConfig holds configuration for the rotating log file writer.
// Zero values fall back to the defaults above.
type FileWriterConfig struct {
	// MaxSizeMB is the maximum size in megabytes before rotation.
	MaxSizeMB int

	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int

	// MaxAgeDays is the maximum age of rotated files in days.
	MaxAgeDays int

	// Compress gzips rotated files.
	Compress bool
}

// DefaultFileWriterConfig returns a FileWriterConfig with default values.
func DefaultFileWriterConfig() FileWriterConfig {
	return FileWriterConfig{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   true,
	}
}

// NewFileWriter creates a zapcore.WriteSyncer that writes to path with
// automatic size- and age-based rotation, using the default configuration.
func NewFileWriter(path string) zapcore.WriteSyncer {
	return NewFileWriterWithConfig(path, DefaultFileWriterConfig())
}

// NewFileWriterWithConfig creates a rotating zapcore.WriteSyncer with
// custom configuration. Zero-value fields are replaced with defaults.
func NewFileWriterWithConfig(path string, cfg FileWriterConfig) zapcore.WriteSyncer {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = DefaultMaxSizeMB
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = DefaultMaxBackups
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = DefaultMaxAgeDays
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
}
