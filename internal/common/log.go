// Package common holds small, domain-agnostic infrastructure shared across
// the CLI: leveled logging and a log-file sink, the same role pkg/common
// played in the teacher repository.
package common

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// VerboseEnabled controls whether verbose output is shown.
	VerboseEnabled = false
	// LogFile is the path to write logs to (empty means stdout only).
	LogFile = ""
	// Workers is the parsed --workers value from the root command, shared
	// with subcommands that need a worker count without importing cmd
	// (which would create an import cycle).
	Workers = 1
)

var specialColor = color.New(color.FgYellow, color.Bold)

// writeToLogFile writes a message to the log file if LogFile is set.
func writeToLogFile(message string) {
	if LogFile == "" {
		return
	}
	file, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	fmt.Fprintln(file, message)
}

// Info prints a message to stdout (always shown, regardless of verbose mode).
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if !VerboseEnabled {
		return
	}
	message := fmt.Sprintf("[VERBOSE] "+format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Warning prints a warning message (always shown).
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf("WARNING: "+format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Error prints an error message to stderr (always shown).
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf("ERROR: "+format, args...)
	fmt.Fprintln(os.Stderr, message)
	writeToLogFile(message)
}

// Fatal prints an error message to stderr and exits the process. Used by the
// data-gen driver when a solve produces an InvalidMove, NoPath, or
// VerificationFailed error — these are bugs in the fixed plan, not
// recoverable per-seed failures, so the driver must not silently skip them.
func Fatal(format string, args ...interface{}) {
	Error(format, args...)
	os.Exit(1)
}

// Special highlights a special-case marker ("[Special case (A)]" and
// friends) when echoing a trace to the console in verbose mode.
func Special(text string) string {
	return specialColor.Sprint(text)
}
