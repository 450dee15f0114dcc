// Package logger provides verbose logging for sercha-finder.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr, or to a log file while the TUI owns the terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// timeLayout prefixes each line when timestamps are enabled.
const timeLayout = "15:04:05.000"

var (
	mu         sync.Mutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr

	// now is replaced in tests.
	now = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetTimestamps prefixes every line with the wall-clock time.
// Debounce and stale-response traces are hard to follow without it.
func SetTimestamps(on bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = on
}

// Redirect sends logs to w with timestamps on, and returns a function
// that restores the previous writer and timestamp setting.
func Redirect(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevStamps := output, timestamps
	output, timestamps = w, true
	return func() {
		mu.Lock()
		defer mu.Unlock()
		output, timestamps = prevOut, prevStamps
	}
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	if timestamps {
		prefix = now().Format(timeLayout) + " " + prefix
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("[WARN] ", format, args...)
}
