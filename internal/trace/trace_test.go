package trace

import (
	"encoding/json"
	"testing"
)

func TestPrintAppendsNewline(t *testing.T) {
	l := NewLogger(false)
	l.Print("a")
	l.Print("b")
	if got, want := l.String(), "a\nb\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestClearResetsBuffer(t *testing.T) {
	l := NewLogger(false)
	l.Print("x")
	l.Clear()
	if l.String() != "" {
		t.Fatalf("String() after Clear() = %q, want empty", l.String())
	}
}

func TestJSONLineRoundTrips(t *testing.T) {
	l := NewLogger(false)
	l.Print("hello")

	line, err := l.JSONLine()
	if err != nil {
		t.Fatalf("JSONLine() error: %v", err)
	}

	var decoded struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.Text != "hello\n" {
		t.Fatalf("decoded.Text = %q, want %q", decoded.Text, "hello\n")
	}
}

func TestEchoHighlightDoesNotAlterBuffer(t *testing.T) {
	l := NewLogger(true)
	l.Print("[Special case (A)]")
	if got, want := l.String(), "[Special case (A)]\n"; got != want {
		t.Fatalf("String() = %q, want %q (echo highlighting must not leak into the buffer)", got, want)
	}
}

func TestFromTextWrapsExistingTrace(t *testing.T) {
	l := FromText("abcdef")
	if got := l.Dump(3); got != "abc" {
		t.Fatalf("Dump(3) = %q, want %q", got, "abc")
	}
	if got := l.String(); got != "abcdef" {
		t.Fatalf("String() = %q, want %q", got, "abcdef")
	}
}

func TestDumpTruncates(t *testing.T) {
	l := NewLogger(false)
	l.Print("0123456789")
	if got := l.Dump(5); got != "01234" {
		t.Fatalf("Dump(5) = %q, want %q", got, "01234")
	}
	if got := l.Dump(0); got != l.String() {
		t.Fatalf("Dump(0) = %q, want full buffer %q", got, l.String())
	}
}
