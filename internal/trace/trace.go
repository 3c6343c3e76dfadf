// Package trace implements the append-only trace buffer (C6): every solver
// decision point goes through this single sink, which can echo to the
// console and serialize itself as a single JSONL record.
package trace

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eng618/fifteentrace/internal/common"
)

// Logger accumulates a textual trace. It is the sole writer of the dataset
// record; every step header, board snapshot, and move emitted by the
// solver passes through Print.
type Logger struct {
	buf          string
	EchoToStdout bool
}

// NewLogger creates a Logger. When echo is true, every emitted line is also
// written to stdout as it's produced (useful for interactive, single-worker
// runs); the accumulated buffer that becomes the dataset record is identical
// either way, so echo never affects what gets written.
func NewLogger(echo bool) *Logger {
	return &Logger{EchoToStdout: echo}
}

// FromText wraps an already-rendered trace (e.g. a dataset record's "text"
// field read back off disk) in a Logger, so callers that only need to
// inspect or truncate it can reuse Dump rather than slicing strings by hand.
func FromText(text string) *Logger {
	return &Logger{buf: text}
}

// Print appends text and a newline to the trace buffer, optionally echoing it.
func (l *Logger) Print(text string) {
	l.print(text, "\n")
}

func (l *Logger) print(text, end string) {
	if l.EchoToStdout {
		fmt.Print(echoHighlight(text) + end)
	}
	l.buf += text + end
}

// echoHighlight colors special-case markers when a line is echoed to the
// console. The dataset record itself (Logger.buf) never sees this — only
// the stdout copy is highlighted, so the trace grammar's byte-for-byte
// contract (§6.1) is untouched.
func echoHighlight(text string) string {
	if strings.Contains(text, "[Special case") {
		return common.Special(text)
	}
	return text
}

// String returns the accumulated trace.
func (l *Logger) String() string {
	return l.buf
}

// Clear resets the buffer, allowing a Logger to be reused across seeds.
func (l *Logger) Clear() {
	l.buf = ""
}

// Dump returns the first maxLen bytes of the trace for diagnostics (the whole
// trace when maxLen <= 0 or exceeds its length), mirroring the upstream
// DataLogger.print_all helper. It prints nothing itself.
func (l *Logger) Dump(maxLen int) string {
	if maxLen <= 0 || maxLen >= len(l.buf) {
		return l.buf
	}
	return l.buf[:maxLen]
}

// record is the on-disk shape of a single dataset line.
type record struct {
	Text string `json:"text"`
}

// JSONLine serializes the trace as a single JSONL record: {"text": <trace>}.
func (l *Logger) JSONLine() (string, error) {
	b, err := json.Marshal(record{Text: l.buf})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
