// Package pathfind implements BFS shortest-path search on the masked 4x4
// grid used to route the blank tile during a solve.
package pathfind

import (
	"fmt"

	"github.com/eng618/fifteentrace/internal/board"
)

// Mask marks, per cell, whether the blank (or path search) may pass through
// it. Masks are immutable per solver step and encode the frozen prefix of
// already-placed tiles.
type Mask [board.Size][board.Size]bool

// AllTrue returns a mask with every cell passable.
func AllTrue() Mask {
	var m Mask
	for r := range m {
		for c := range m[r] {
			m[r][c] = true
		}
	}
	return m
}

// Without returns a copy of m with one additional cell forbidden. Used to
// lock the target tile in place while routing the blank around it.
func (m Mask) Without(forbidden board.Point) Mask {
	nm := m
	nm[forbidden.Row][forbidden.Col] = false
	return nm
}

// neighborOrder is the fixed BFS expansion order. This order matters for
// reproducibility: any tie in BFS depth is broken by it.
var neighborOrder = [4]board.Direction{board.Right, board.Left, board.Down, board.Up}

// NoPathError is raised when start or end is masked out, or when no
// sequence of masked moves connects them.
type NoPathError struct {
	Start, End board.Point
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path from %v to %v under mask", e.Start, e.End)
}

type queueEntry struct {
	pos    board.Point
	moves  []board.Direction
	coords []board.Point
}

// ShortestPath runs BFS from start to end on the 4x4 grid, expanding
// neighbors in the fixed order RIGHT, LEFT, DOWN, UP. It returns the
// directions traversed and the visited coordinate sequence including both
// endpoints. It fails with NoPathError if start or end is masked out, or if
// no path exists.
func ShortestPath(start, end board.Point, mask Mask) ([]board.Direction, []board.Point, error) {
	if !mask[start.Row][start.Col] || !mask[end.Row][end.Col] {
		return nil, nil, &NoPathError{Start: start, End: end}
	}

	visited := map[board.Point]bool{start: true}
	queue := []queueEntry{{pos: start, moves: nil, coords: []board.Point{start}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.pos == end {
			return cur.moves, cur.coords, nil
		}

		for _, d := range neighborOrder {
			next := applyDelta(cur.pos, d)
			if !next.InBounds() || !mask[next.Row][next.Col] || visited[next] {
				continue
			}
			visited[next] = true
			nextMoves := append(append([]board.Direction{}, cur.moves...), d)
			nextCoords := append(append([]board.Point{}, cur.coords...), next)
			queue = append(queue, queueEntry{pos: next, moves: nextMoves, coords: nextCoords})
		}
	}

	return nil, nil, &NoPathError{Start: start, End: end}
}

func applyDelta(p board.Point, d board.Direction) board.Point {
	switch d {
	case board.Up:
		return board.Point{Row: p.Row - 1, Col: p.Col}
	case board.Down:
		return board.Point{Row: p.Row + 1, Col: p.Col}
	case board.Left:
		return board.Point{Row: p.Row, Col: p.Col - 1}
	case board.Right:
		return board.Point{Row: p.Row, Col: p.Col + 1}
	default:
		return p
	}
}
