package verify

import (
	"testing"

	"github.com/eng618/fifteentrace/internal/board"
	"github.com/eng618/fifteentrace/internal/solver"
	"github.com/eng618/fifteentrace/internal/trace"
)

func TestIsSolutionAcceptsEmptyMovesOnGoal(t *testing.T) {
	if !IsSolution(board.Goal(), nil) {
		t.Fatal("expected the goal board to verify with an empty move list")
	}
}

func TestIsSolutionRejectsUnsolvedBoard(t *testing.T) {
	b, err := board.NewFromRows([][]int{
		{2, 1, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	})
	if err != nil {
		t.Fatalf("NewFromRows error: %v", err)
	}
	if IsSolution(b, nil) {
		t.Fatal("expected unsolved board to fail verification")
	}
}

func TestIsSolutionRejectsUnknownToken(t *testing.T) {
	if IsSolution(board.Goal(), []string{"SIDEWAYS"}) {
		t.Fatal("expected an unknown direction token to fail verification")
	}
}

func TestIsSolutionRejectsOutOfBoundsMove(t *testing.T) {
	if IsSolution(board.Goal(), []string{"DOWN"}) {
		t.Fatal("expected an out-of-bounds move to fail verification")
	}
}

func TestIsSolutionReplaysMoves(t *testing.T) {
	g := board.Goal()
	if err := g.Move(board.Left); err != nil {
		t.Fatalf("Move error: %v", err)
	}
	if !IsSolution(g, []string{"right"}) {
		t.Fatal("expected RIGHT to undo LEFT and reach the goal")
	}
}

func TestParseRecordRoundTrip(t *testing.T) {
	text := "<input>\n<board>\n1  2  3  4  \n5  6  7  8  \n9  10 11 12 \n13 14 15 0  \n</board>\n</input>\n" +
		"<reasoning>...</reasoning>\n<output>\nUP DOWN \n</output>\n"

	b, moves, err := ParseRecord(text)
	if err != nil {
		t.Fatalf("ParseRecord error: %v", err)
	}
	if !b.Equal(board.Goal()) {
		t.Fatalf("parsed board = %v, want goal", b.Grid())
	}
	want := []string{"UP", "DOWN"}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("moves[%d] = %q, want %q", i, moves[i], want[i])
		}
	}
}

// TestParseRecordRoundTripsSolverTrace pins the cmd/validate path end to
// end: a real solver trace, whose board rows (the last one included) carry
// Render's trailing padding, must parse and re-verify cleanly.
func TestParseRecordRoundTripsSolverTrace(t *testing.T) {
	b, err := board.NewFromRows([][]int{
		{15, 0, 2, 12},
		{14, 7, 11, 8},
		{1, 5, 3, 4},
		{6, 13, 10, 9},
	})
	if err != nil {
		t.Fatalf("NewFromRows error: %v", err)
	}

	logger := trace.NewLogger(false)
	if _, err := solver.Solve(b, logger); err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	initial, moves, err := ParseRecord(logger.String())
	if err != nil {
		t.Fatalf("ParseRecord error: %v", err)
	}
	if !IsSolution(initial, moves) {
		t.Fatal("parsed initial board and move list did not verify")
	}
}
