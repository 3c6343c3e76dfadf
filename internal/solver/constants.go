package solver

import (
	"github.com/eng618/fifteentrace/internal/board"
	"github.com/eng618/fifteentrace/internal/pathfind"
)

// stepKind tags the variant a step descriptor carries (spec.md §3 "Step
// descriptor"; §9 "dynamic dispatch on step kind becomes a tagged variant").
type stepKind int

const (
	kindMove stepKind = iota
	kindPlace
	kindFinetune
)

// specialCase describes one of the four "corner trap" detections (§4.5.2).
// The trigger fires when the target tile sits at corner, or when the blank
// sits at corner and the target tile sits at adjacent (one row below corner
// for formula A steps, one column right of corner for formula B steps).
type specialCase struct {
	label    string            // "A" or "B"
	corner   board.Point       // the trap corner cell
	adjacent board.Point       // cell checked in the blank-at-corner branch
	staging  board.Point       // where the blank is routed before the formula
	mask     pathfind.Mask     // mask used to route the blank to staging
	formula  []board.Direction // FORMULA_A or FORMULA_B
}

// placement describes a "Place N and M in correct position" step (§4.5.3).
type placement struct {
	pairLabel  string
	blankDest  board.Point
	mask       pathfind.Mask
	finalMoves []board.Direction
}

// step is one entry of the fixed 17-step plan.
type step struct {
	header  string
	kind    stepKind
	target  int           // for kindMove: the tile number
	mask    pathfind.Mask // for kindMove: the step's frozen-cell mask
	special *specialCase  // non-nil for steps 4, 9, 12, 15
	place   *placement    // non-nil for kindPlace
}

func m(rows [4][4]bool) pathfind.Mask {
	var mask pathfind.Mask
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			mask[r][c] = rows[r][c]
		}
	}
	return mask
}

const (
	t = true
	f = false
)

// FormulaA is the fixed 8-move rotation resolving the top-right / row-1
// right-corner "last-two-in-row" trap.
var FormulaA = []board.Direction{board.Up, board.Right, board.Right, board.Down, board.Left, board.Up, board.Left, board.Down}

// FormulaB is the fixed 11-move rotation resolving the "last-two-in-column"
// trap.
var FormulaB = []board.Direction{
	board.Up, board.Right, board.Down, board.Right, board.Up,
	board.Left, board.Left, board.Down, board.Right, board.Up, board.Right,
}

// NumberTarget maps a tile to its staging/final destination cell (§6.2).
var NumberTarget = map[int]board.Point{
	1:  {Row: 0, Col: 0},
	2:  {Row: 0, Col: 1},
	3:  {Row: 1, Col: 2},
	4:  {Row: 0, Col: 2},
	5:  {Row: 1, Col: 0},
	6:  {Row: 1, Col: 1},
	7:  {Row: 2, Col: 2},
	8:  {Row: 1, Col: 2},
	9:  {Row: 2, Col: 1},
	13: {Row: 2, Col: 0},
	10: {Row: 2, Col: 2},
	14: {Row: 2, Col: 1},
}

// FinetunePath is the 12-entry lookup table keyed by the final permutation
// of {11, 12, 15, 0} occupying cells ((2,2),(2,3),(3,2),(3,3)).
var FinetunePath = map[[4]int][]board.Direction{
	{0, 11, 15, 12}: {board.Right, board.Down},
	{0, 12, 11, 15}: {board.Down, board.Right},
	{0, 15, 12, 11}: {board.Right, board.Down, board.Left, board.Up, board.Right, board.Down},
	{11, 0, 15, 12}: {board.Down},
	{11, 12, 0, 15}: {board.Right},
	{11, 12, 15, 0}: {},
	{12, 0, 11, 15}: {board.Left, board.Down, board.Right},
	{12, 15, 0, 11}: {board.Right, board.Up, board.Left, board.Down, board.Right},
	{12, 15, 11, 0}: {board.Up, board.Left, board.Down, board.Right},
	{15, 0, 12, 11}: {board.Down, board.Left, board.Up, board.Right, board.Down},
	{15, 11, 0, 12}: {board.Up, board.Right, board.Down},
	{15, 11, 12, 0}: {board.Left, board.Up, board.Right, board.Down},
}

// steps is the fixed 17-step positional plan (§4.5, §6.2).
var steps = []step{
	{
		header: "### Step 1: Move 1 to (0, 0)",
		kind:   kindMove, target: 1,
		mask: m([4][4]bool{{t, t, t, t}, {t, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 2: Move 2 to (0, 1)",
		kind:   kindMove, target: 2,
		mask: m([4][4]bool{{f, t, t, t}, {t, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 3: Move 4 to (0, 2)",
		kind:   kindMove, target: 4,
		mask: m([4][4]bool{{f, f, t, t}, {t, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 4: Move 3 to (1, 2)",
		kind:   kindMove, target: 3,
		mask: m([4][4]bool{{f, f, f, t}, {t, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
		special: &specialCase{
			label:    "A",
			corner:   board.Point{Row: 0, Col: 3},
			adjacent: board.Point{Row: 1, Col: 3},
			staging:  board.Point{Row: 1, Col: 1},
			mask:    m([4][4]bool{{f, f, f, t}, {t, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
			formula: FormulaA,
		},
	},
	{
		header: "### Step 5: Place 3 and 4 in correct position",
		kind:   kindPlace,
		place: &placement{
			pairLabel: "3 and 4",
			blankDest: board.Point{Row: 0, Col: 3},
			mask:      m([4][4]bool{{f, f, f, t}, {t, t, f, t}, {t, t, t, t}, {t, t, t, t}}),
			finalMoves: []board.Direction{board.Left, board.Down},
		},
	},
	{
		header: "### Step 6: Move 5 to (1, 0)",
		kind:   kindMove, target: 5,
		mask: m([4][4]bool{{f, f, f, f}, {t, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 7: Move 6 to (1, 1)",
		kind:   kindMove, target: 6,
		mask: m([4][4]bool{{f, f, f, f}, {f, t, t, t}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 8: Move 8 to (1, 2)",
		kind:   kindMove, target: 8,
		mask: m([4][4]bool{{f, f, f, f}, {f, f, t, t}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 9: Move 7 to (2, 2)",
		kind:   kindMove, target: 7,
		mask: m([4][4]bool{{f, f, f, f}, {f, f, f, t}, {t, t, t, t}, {t, t, t, t}}),
		special: &specialCase{
			label:    "A",
			corner:   board.Point{Row: 1, Col: 3},
			adjacent: board.Point{Row: 2, Col: 3},
			staging:  board.Point{Row: 2, Col: 1},
			mask:    m([4][4]bool{{f, f, f, f}, {f, f, f, t}, {t, t, t, t}, {t, t, t, t}}),
			formula: FormulaA,
		},
	},
	{
		header: "### Step 10: Place 7 and 8 in correct position",
		kind:   kindPlace,
		place: &placement{
			pairLabel: "7 and 8",
			blankDest: board.Point{Row: 1, Col: 3},
			mask:      m([4][4]bool{{f, f, f, f}, {f, f, f, t}, {t, t, f, t}, {t, t, t, t}}),
			finalMoves: []board.Direction{board.Left, board.Down},
		},
	},
	{
		header: "### Step 11: Move 13 to (2, 0)",
		kind:   kindMove, target: 13,
		mask: m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {t, t, t, t}, {t, t, t, t}}),
	},
	{
		header: "### Step 12: Move 9 to (2, 1)",
		kind:   kindMove, target: 9,
		mask: m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, t, t, t}, {t, t, t, t}}),
		special: &specialCase{
			label:    "B",
			corner:   board.Point{Row: 3, Col: 0},
			adjacent: board.Point{Row: 3, Col: 1},
			staging:  board.Point{Row: 3, Col: 0},
			mask:    m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, t, t, t}, {t, t, t, t}}),
			formula: FormulaB,
		},
	},
	{
		header: "### Step 13: Place 9 and 13 in correct position",
		kind:   kindPlace,
		place: &placement{
			pairLabel: "9 and 13",
			blankDest: board.Point{Row: 3, Col: 0},
			mask:      m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, f, t, t}, {t, t, t, t}}),
			finalMoves: []board.Direction{board.Up, board.Right},
		},
	},
	{
		header: "### Step 14: Move 14 to (2, 1)",
		kind:   kindMove, target: 14,
		mask: m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, t, t, t}, {f, t, t, t}}),
	},
	{
		header: "### Step 15: Move 10 to (2, 2)",
		kind:   kindMove, target: 10,
		mask: m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, f, t, t}, {f, t, t, t}}),
		special: &specialCase{
			label:    "B",
			corner:   board.Point{Row: 3, Col: 1},
			adjacent: board.Point{Row: 3, Col: 2},
			staging:  board.Point{Row: 3, Col: 1},
			mask:    m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, f, t, t}, {f, t, t, t}}),
			formula: FormulaB,
		},
	},
	{
		header: "### Step 16: Place 10 and 14 in correct position",
		kind:   kindPlace,
		place: &placement{
			pairLabel: "10 and 14",
			blankDest: board.Point{Row: 3, Col: 1},
			mask:      m([4][4]bool{{f, f, f, f}, {f, f, f, f}, {f, f, f, t}, {f, t, t, t}}),
			finalMoves: []board.Direction{board.Up, board.Right},
		},
	},
	{
		header: "### Step 17: finetune 11, 12, 15",
		kind:   kindFinetune,
	},
}
