package reversi

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates follow the usual Othello notation:
// - Columns: a-h on an 8x8 board (left to right)
// - Rows: 1-8 (top to bottom)
// - Example: the black candidates of the opening are d3, c4, f5 and e6
//
// Internally a cell is addressed as (row, col), both 0-indexed from the top left,
// so d3 is (2, 3).

// FormatPos converts (row, col) to notation such as "d3".
func FormatPos(row, col int) string {
	return fmt.Sprintf("%s%d", columnName(col), row+1)
}

// ParsePos converts notation such as "d3" or "D3" to (row, col) on a board of the given edge.
func ParsePos(pos string, edge int) (row, col int, err error) {
	pos = strings.TrimSpace(strings.ToLower(pos))
	if len(pos) < 2 {
		return 0, 0, fmt.Errorf("invalid position: %q", pos)
	}

	col = int(pos[0] - 'a')
	if col < 0 || col >= 26 {
		return 0, 0, fmt.Errorf("invalid column in position: %q", pos)
	}

	n, err := strconv.Atoi(pos[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in position: %q", pos)
	}
	row = n - 1

	if row < 0 || row >= edge || col >= edge {
		return 0, 0, fmt.Errorf("position out of bounds: %q", pos)
	}
	return row, col, nil
}

func columnName(col int) string {
	return string(rune('a' + col))
}
