// ABOUTME: Debug logging to a file, disabled by default
// ABOUTME: The terminal belongs to the UI, so log output never goes there

package log

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

var logger = charmlog.New(io.Discard)

// Enable routes log output to the file at path, creating or appending as
// needed, and raises the level to debug. Returns a close function.
func Enable(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	logger = charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		Level:           charmlog.DebugLevel,
	})
	return f.Close, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, kv ...any) {
	logger.Debug(msg, kv...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, kv ...any) {
	logger.Info(msg, kv...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, kv ...any) {
	logger.Error(msg, kv...)
}
