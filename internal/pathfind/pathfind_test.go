package pathfind

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eng618/fifteentrace/internal/board"
)

func TestShortestPathTieBreak(t *testing.T) {
	// S7: (0,0) -> (0,2) on an all-true mask breaks ties RIGHT, RIGHT.
	moves, coords, err := ShortestPath(board.Point{Row: 0, Col: 0}, board.Point{Row: 0, Col: 2}, AllTrue())
	require.NoError(t, err)
	require.Equal(t, []board.Direction{board.Right, board.Right}, moves)
	require.Equal(t, []board.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, coords)
}

func TestShortestPathRoutesAroundMaskedRow(t *testing.T) {
	// S5: row 0 fully masked off, (1,0) -> (1,3) is a 3-move right traversal.
	mask := AllTrue()
	for c := 0; c < board.Size; c++ {
		mask[0][c] = false
	}

	moves, _, err := ShortestPath(board.Point{Row: 1, Col: 0}, board.Point{Row: 1, Col: 3}, mask)
	require.NoError(t, err)
	require.Equal(t, []board.Direction{board.Right, board.Right, board.Right}, moves)
}

func TestShortestPathFailsWhenEndpointMaskedOut(t *testing.T) {
	mask := AllTrue()
	mask[0][0] = false

	_, _, err := ShortestPath(board.Point{Row: 0, Col: 0}, board.Point{Row: 1, Col: 1}, mask)
	require.Error(t, err)
	require.IsType(t, &NoPathError{}, err)
}

func TestShortestPathFailsWhenUnreachable(t *testing.T) {
	mask := AllTrue()
	// Wall off column 1 entirely, splitting the grid into two disconnected halves.
	for r := 0; r < board.Size; r++ {
		mask[r][1] = false
	}

	_, _, err := ShortestPath(board.Point{Row: 0, Col: 0}, board.Point{Row: 0, Col: 3}, mask)
	require.Error(t, err)
}

func TestMaskWithoutForbidsOneCell(t *testing.T) {
	mask := AllTrue()
	forbidden := board.Point{Row: 2, Col: 2}
	restricted := mask.Without(forbidden)

	require.False(t, restricted[forbidden.Row][forbidden.Col])
	require.True(t, mask[forbidden.Row][forbidden.Col], "Without must not mutate the receiver")
}
