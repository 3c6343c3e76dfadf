// Package ui provides console progress feedback for long-running dataset
// generation runs.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/eng618/fifteentrace/internal/common"
)

// Spinner wraps github.com/briandowns/spinner to provide UX consistent
// across the CLI's long-running commands.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a new spinner with a default configuration.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner if verbose mode is disabled.
func (s *Spinner) Start() {
	if !common.VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateProgress reports how many of the total seeds have completed.
func (s *Spinner) UpdateProgress(done, total int) {
	s.s.Suffix = fmt.Sprintf(" generating traces: %d/%d", done, total)
}

// LogWarning stops the spinner, prints a warning, and restarts it so the
// warning doesn't tear the spinner's line.
func (s *Spinner) LogWarning(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	common.Warning(format, args...)
	if wasRunning && !common.VerboseEnabled {
		s.s.Start()
	}
}
