package verify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eng618/fifteentrace/internal/board"
)

// ParseRecord extracts the initial board and the move list from one dataset
// record's raw trace text (the value of its "text" field), so a previously
// generated record can be re-verified without re-running the solver.
func ParseRecord(text string) (*board.Board, []string, error) {
	inputBlock, err := between(text, "<input>", "</input>")
	if err != nil {
		return nil, nil, fmt.Errorf("verify: missing <input> block: %w", err)
	}
	boardBlock, err := between(inputBlock, "<board>", "</board>")
	if err != nil {
		return nil, nil, fmt.Errorf("verify: missing <board> block: %w", err)
	}
	b, err := parseBoard(boardBlock)
	if err != nil {
		return nil, nil, err
	}

	outputBlock, err := between(text, "<output>", "</output>")
	if err != nil {
		return nil, nil, fmt.Errorf("verify: missing <output> block: %w", err)
	}
	moves := strings.Fields(outputBlock)

	return b, moves, nil
}

func between(text, open, close string) (string, error) {
	start := strings.Index(text, open)
	if start < 0 {
		return "", fmt.Errorf("missing %q", open)
	}
	start += len(open)
	end := strings.Index(text[start:], close)
	if end < 0 {
		return "", fmt.Errorf("missing %q", close)
	}
	return text[start : start+end], nil
}

// parseBoard reads the %-3d grid rendered by board.Board.Render. Rows are
// split on whitespace rather than sliced at fixed 3-char offsets, so a row
// whose trailing padding has been stripped still parses.
func parseBoard(block string) (*board.Board, error) {
	lines := strings.Split(strings.Trim(block, "\n"), "\n")
	if len(lines) != board.Size {
		return nil, fmt.Errorf("verify: expected %d rows, got %d", board.Size, len(lines))
	}

	rows := make([][]int, board.Size)
	for r, line := range lines {
		cells := strings.Fields(line)
		if len(cells) != board.Size {
			return nil, fmt.Errorf("verify: row %d has %d cells, want %d", r, len(cells), board.Size)
		}
		row := make([]int, board.Size)
		for c, cell := range cells {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("verify: row %d cell %d: %w", r, c, err)
			}
			row[c] = v
		}
		rows[r] = row
	}

	return board.NewFromRows(rows)
}
