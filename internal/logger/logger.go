// Package logger provides verbose logging for ghsuggest.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to the configured writer to help users follow query dispatch,
// debouncing and the two search requests. While the TUI is running the
// writer is a log file so output does not corrupt the screen.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	now                  = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetTimestamps prefixes each line with a millisecond timestamp.
// Useful in log files where debounce timing matters.
func SetTimestamps(v bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = v
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("WARN", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func write(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	prefix := "[" + level + "] "
	if timestamps {
		prefix = now().Format("15:04:05.000") + " " + prefix
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
