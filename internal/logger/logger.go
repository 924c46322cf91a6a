// Package logger provides leveled logging for the gcpblocks CLI.
// Messages below warning level are hidden unless verbose mode is enabled
// via the --verbose flag or a lower --log-level.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Fields is a set of structured log fields.
type Fields = log.Fields

var (
	mu      sync.RWMutex
	verbose bool
	base    = newBase(os.Stderr)
)

func newBase(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	l.SetLevel(log.WarnLevel)
	return l
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		base.SetLevel(log.DebugLevel)
	} else {
		base.SetLevel(log.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLevel sets the minimum level by name (trace, debug, info, warn, error).
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	base.SetLevel(lvl)
	verbose = lvl >= log.DebugLevel
	return nil
}

// SetJSON switches between JSON and plain text output.
func SetJSON(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		base.SetFormatter(&log.JSONFormatter{})
	} else {
		base.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base.SetOutput(w)
}

// Logger returns the underlying logrus logger.
func Logger() *log.Logger {
	return base
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields Fields) *log.Entry {
	return base.WithFields(fields)
}

// WithContext returns an entry bound to ctx, so hooks can read the active span.
func WithContext(ctx context.Context) *log.Entry {
	return base.WithContext(ctx)
}

// Debug logs a message at debug level.
func Debug(format string, args ...any) {
	base.Debugf(format, args...)
}

// Info logs a message at info level.
func Info(format string, args ...any) {
	base.Infof(format, args...)
}

// Warn logs a message at warning level.
func Warn(format string, args ...any) {
	base.Warnf(format, args...)
}

// Error logs a message at error level.
func Error(format string, args ...any) {
	base.Errorf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(base.Out, "\n=== %s ===\n", name)
	}
}
