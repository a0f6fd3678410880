// Package logger provides the shared slog instance for bootmapdump.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It is initialized to discard all output
// by default; call Init to enable logging.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum log level
}

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: opts.Level,
	}))
}

// Debug logs at debug level through the shared instance.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level through the shared instance.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level through the shared instance.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level through the shared instance.
func Error(msg string, args ...any) { L.Error(msg, args...) }
