// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/seqsel/pkg/config"
	"github.com/google/uuid"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "seqsel.log"

// RunID identifies log records of one seqsel invocation.
var RunID = uuid.NewString()

// Init initializes the global slog logger with the given configuration.
// Creates log file in logDir if destination is "file", the file is
// rewritten on every run.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	// Determine output destination
	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(New(writer, cfg))
	return nil
}

// New creates a logger that writes to w using format and level from
// the configuration. Every record carries the run_id attribute.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "text", "tint":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		// Default to JSON format for any unrecognized format
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.New(handler).With("run_id", RunID)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
