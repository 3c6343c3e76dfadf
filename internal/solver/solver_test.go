package solver

import (
	"strings"
	"testing"

	"github.com/eng618/fifteentrace/internal/board"
	"github.com/eng618/fifteentrace/internal/trace"
	"github.com/eng618/fifteentrace/internal/verify"
)

func TestSolveAlreadySolvedBoardIsValid(t *testing.T) {
	b := board.Goal()
	initial := b.Clone()

	logger := trace.NewLogger(false)
	moves, err := Solve(b, logger)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !verify.IsSolutionDirections(initial, moves) {
		t.Fatal("solving the already-solved board did not verify")
	}
	if strings.Count(logger.String(), "### Step ") != 17 {
		t.Fatalf("expected 17 step headers, trace:\n%s", logger.String())
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	run := func() string {
		b := board.Goal()
		logger := trace.NewLogger(false)
		if _, err := Solve(b, logger); err != nil {
			t.Fatalf("Solve() error: %v", err)
		}
		return logger.String()
	}
	if a, b := run(), run(); a != b {
		t.Fatal("two solves of the identical board produced different traces")
	}
}

// TestSolveS2Board pins spec scenario S2: a scrambled board whose resulting
// move list must verify against the goal.
func TestSolveS2Board(t *testing.T) {
	b, err := board.NewFromRows([][]int{
		{15, 0, 2, 12},
		{14, 7, 11, 8},
		{1, 5, 3, 4},
		{6, 13, 10, 9},
	})
	if err != nil {
		t.Fatalf("NewFromRows error: %v", err)
	}
	initial := b.Clone()

	logger := trace.NewLogger(false)
	moves, err := Solve(b, logger)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !verify.IsSolutionDirections(initial, moves) {
		t.Fatal("S2 board did not verify after solving")
	}
}

// TestSolveTriggersFormulaASpecialCase pins spec scenario S6: tile 3 sitting
// at the (0,3) corner when step 4 runs must trigger the Formula A rotation.
func TestSolveTriggersFormulaASpecialCase(t *testing.T) {
	b, err := board.NewFromRows([][]int{
		{1, 2, 4, 3},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 15, 14, 0},
	})
	if err != nil {
		t.Fatalf("NewFromRows error: %v", err)
	}
	initial := b.Clone()

	logger := trace.NewLogger(false)
	moves, err := Solve(b, logger)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !strings.Contains(logger.String(), "[Special case (A)]") {
		t.Fatalf("expected Formula A special case to fire, trace:\n%s", logger.String())
	}
	if !verify.IsSolutionDirections(initial, moves) {
		t.Fatal("board did not verify after triggering the special case")
	}
}

// TestFinetuneClosure pins universal property 6: every entry in
// FinetunePath, applied to a board whose bottom-right 2x2 holds the keyed
// permutation and everything else solved, reaches the goal.
func TestFinetuneClosure(t *testing.T) {
	for key, path := range FinetunePath {
		grid := board.Goal().Grid()
		grid[2][2], grid[2][3], grid[3][2], grid[3][3] = key[0], key[1], key[2], key[3]
		b := board.New(grid)

		for _, d := range path {
			if err := b.Move(d); err != nil {
				t.Fatalf("key %v: move %v failed: %v", key, d, err)
			}
		}
		if !b.Equal(board.Goal()) {
			t.Fatalf("key %v: applying %v did not reach the goal, got %v", key, path, b.Grid())
		}
	}
}

// TestStepMasksAreMonotonic pins universal property 5: a cell frozen
// (forbidden) by an earlier move step's mask stays frozen in every later
// move step's mask.
func TestStepMasksAreMonotonic(t *testing.T) {
	var moveSteps []step
	for _, st := range steps {
		if st.kind == kindMove {
			moveSteps = append(moveSteps, st)
		}
	}

	for i := 0; i < len(moveSteps); i++ {
		for j := i + 1; j < len(moveSteps); j++ {
			for r := 0; r < board.Size; r++ {
				for c := 0; c < board.Size; c++ {
					if !moveSteps[i].mask[r][c] && moveSteps[j].mask[r][c] {
						t.Fatalf("cell (%d,%d) frozen at step target %d became passable at step target %d",
							r, c, moveSteps[i].target, moveSteps[j].target)
					}
				}
			}
		}
	}
}
