// Package verify implements the solution verifier used as the core's
// self-check: replaying a move list against an initial board and comparing
// the result to the canonical goal.
package verify

import "github.com/eng618/fifteentrace/internal/board"

// IsSolution copies initial, applies each of moves in order, and reports
// whether the result equals the goal board. An out-of-bounds move, or a
// token that isn't one of UP/DOWN/LEFT/RIGHT (InvalidDirectionToken, only
// reachable via external input — the solver itself never emits one),
// returns false rather than raising.
func IsSolution(initial *board.Board, moves []string) bool {
	current := initial.Clone()

	for _, token := range moves {
		d, ok := board.ParseDirection(token)
		if !ok {
			return false
		}
		if err := current.Move(d); err != nil {
			return false
		}
	}

	return current.Equal(board.Goal())
}

// IsSolutionDirections is the typed variant used internally by the solver
// and driver, where moves are already parsed board.Direction values rather
// than external string tokens.
func IsSolutionDirections(initial *board.Board, moves []board.Direction) bool {
	current := initial.Clone()
	for _, d := range moves {
		if err := current.Move(d); err != nil {
			return false
		}
	}
	return current.Equal(board.Goal())
}
