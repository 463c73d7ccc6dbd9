package echolog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the structured logger backing the echo collector.
//
// Parameters:
//   - isDevelopment: when true, console output is human-readable at debug
//     level; when false, console output is suppressed and only the JSON
//     file sink is active at the level from PKGUP_LOG_LEVEL (default info).
//   - logFilePath: path of the rotating JSON log file.
//
// The file sink rotates automatically (see file_writer.go). In production
// mode the console stays quiet so the exit resolver's stderr contracts are
// the only thing a caller ever sees on the terminal.
func NewLogger(isDevelopment bool, logFilePath string) *zap.Logger {
	var level zapcore.Level
	if isDevelopment {
		level = zapcore.DebugLevel
	} else {
		level = ParseLogLevel("PKGUP_LOG_LEVEL", zapcore.InfoLevel)
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		NewFileWriter(logFilePath),
		level,
	)

	core := fileCore
	if isDevelopment {
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(NewConsoleEncoderConfig()),
			zapcore.Lock(os.Stderr),
			level,
		)
		core = zapcore.NewTee(consoleCore, fileCore)
	}

	return zap.New(core, zap.AddCaller())
}
