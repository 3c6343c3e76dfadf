// Package generate produces solvable starting boards from a seed, with two
// generation modes: a random shuffle with an inversion-parity fix-up, and a
// reverse random walk from the solved state.
package generate

import (
	"math/rand"

	"github.com/eng618/fifteentrace/internal/board"
)

// DefaultReverseRate is the default probability of choosing the reverse-walk
// mode over the random-shuffle mode.
const DefaultReverseRate = 0.2

// DefaultReverseSteps is the default number of reverse-walk moves.
const DefaultReverseSteps = 15

// Generate produces a solvable starting board for seed using the given mode
// parameters (spec.md §6.4). With probability reverseRate it performs a
// reverse random walk of reverseSteps legal moves starting from the solved
// board (Mode B); otherwise it shuffles 0..15 and corrects parity if needed
// (Mode A).
func Generate(seed int64, reverseRate float64, reverseSteps int) *board.Board {
	rng := rand.New(rand.NewSource(seed))

	if rng.Float64() < reverseRate {
		return reverseWalk(rng, reverseSteps)
	}
	return shuffleWithParityFix(rng)
}

// shuffleWithParityFix implements Mode A: shuffle [0..15], lay out into a
// 4x4 grid, and if the result isn't solvable, swap the first two non-zero
// cells in row-major order. That preserves the tile multiset and flips
// exactly one inversion pair, which combined with the solvability rule
// guarantees the corrected board is solvable.
func shuffleWithParityFix(rng *rand.Rand) *board.Board {
	numbers := make([]int, 16)
	for i := range numbers {
		numbers[i] = i
	}
	rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	var grid [board.Size][board.Size]int
	for i, v := range numbers {
		grid[i/board.Size][i%board.Size] = v
	}

	if !isSolvable(grid) {
		fixParity(&grid)
	}

	return board.New(grid)
}

// fixParity swaps the first two non-zero cells in row-major order.
func fixParity(grid *[board.Size][board.Size]int) {
	var pos1, pos2 *board.Point
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if grid[r][c] == 0 {
				continue
			}
			if pos1 == nil {
				pos1 = &board.Point{Row: r, Col: c}
			} else if pos2 == nil {
				pos2 = &board.Point{Row: r, Col: c}
				break
			}
		}
		if pos2 != nil {
			break
		}
	}
	grid[pos1.Row][pos1.Col], grid[pos2.Row][pos2.Col] = grid[pos2.Row][pos2.Col], grid[pos1.Row][pos1.Col]
}

// isSolvable implements the solvability rule of spec.md §4.3: letting inv be
// the inversion count over the 15 non-zero tiles in row-major order, and
// blankRowFromBottom = 4 - row_of_blank, the board is solvable iff
// blankRowFromBottom is even exactly when inv is odd.
func isSolvable(grid [board.Size][board.Size]int) bool {
	numbers := make([]int, 0, board.Size*board.Size)
	blankRow := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			numbers = append(numbers, grid[r][c])
			if grid[r][c] == 0 {
				blankRow = r
			}
		}
	}

	inv := countInversions(numbers)
	blankRowFromBottom := board.Size - blankRow

	return (blankRowFromBottom%2 == 0) == (inv%2 == 1)
}

func countInversions(numbers []int) int {
	inv := 0
	for i := 0; i < len(numbers); i++ {
		if numbers[i] == 0 {
			continue
		}
		for j := i + 1; j < len(numbers); j++ {
			if numbers[j] != 0 && numbers[i] > numbers[j] {
				inv++
			}
		}
	}
	return inv
}

// legalDirections restricts the legal-move set near the border so the blank never attempts an out-of-bounds move; reverseWalk
// otherwise chooses uniformly among all legal directions, including ones
// that immediately undo the previous move. That's a deliberate modeling
// choice carried over from the source algorithm, not a bug: see
// DESIGN.md "Open Question decisions".
func reverseWalk(rng *rand.Rand, steps int) *board.Board {
	b := board.Goal()

	for i := 0; i < steps; i++ {
		dirs := legalDirections(b.Locate(0))
		d := dirs[rng.Intn(len(dirs))]
		if err := b.Move(d); err != nil {
			panic(err)
		}
	}

	return b
}

func legalDirections(blank board.Point) []board.Direction {
	switch {
	case blank.Row == 0 && blank.Col == 0:
		return []board.Direction{board.Down, board.Right}
	case blank.Row == 0 && blank.Col == board.Size-1:
		return []board.Direction{board.Down, board.Left}
	case blank.Row == board.Size-1 && blank.Col == 0:
		return []board.Direction{board.Up, board.Right}
	case blank.Row == board.Size-1 && blank.Col == board.Size-1:
		return []board.Direction{board.Up, board.Left}
	case blank.Row == 0:
		return []board.Direction{board.Down, board.Left, board.Right}
	case blank.Row == board.Size-1:
		return []board.Direction{board.Up, board.Left, board.Right}
	case blank.Col == 0:
		return []board.Direction{board.Up, board.Down, board.Right}
	case blank.Col == board.Size-1:
		return []board.Direction{board.Up, board.Down, board.Left}
	default:
		return []board.Direction{board.Up, board.Down, board.Left, board.Right}
	}
}
