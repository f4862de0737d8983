// Package reversi implements the board model and rules of Reversi (Othello).
package reversi

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// ConfigError reports a board that cannot be built with the requested edge.
type ConfigError struct {
	Edge int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid board edge %d: must be even and at least 2", e.Edge)
}

// Board is a square grid of cells. Its shape never changes after NewBoard.
type Board struct {
	edge  int
	cells []*Cell // row-major
	log   *log.Logger
}

// NewBoard creates an empty edge x edge board.
func NewBoard(edge int) (*Board, error) {
	if edge < 2 || edge%2 != 0 {
		return nil, &ConfigError{Edge: edge}
	}
	b := &Board{
		edge:  edge,
		cells: make([]*Cell, 0, edge*edge),
		log:   log.New(io.Discard, "", 0),
	}
	for row := 0; row < edge; row++ {
		for col := 0; col < edge; col++ {
			b.cells = append(b.cells, &Cell{row: row, col: col, board: b})
		}
	}
	return b, nil
}

// FromRows builds a board from text rows, one string per row.
// 'X' (or 'B') is black, 'O' (or 'W') is white and '.' is empty.
// Spaces are ignored so rows can be written as "X . O .".
func FromRows(rows ...string) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != b.edge {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(line), b.edge)
		}
		for col, ch := range line {
			var color Color
			switch ch {
			case 'X', 'x', 'B', 'b':
				color = Black
			case 'O', 'o', 'W', 'w':
				color = White
			case '.', '-':
				continue
			default:
				return nil, fmt.Errorf("row %d: unexpected %q", row, ch)
			}
			b.cells[row*b.edge+col].disc.color = color
		}
	}
	return b, nil
}

// SetLogger sets the logger used to trace placements.
func (b *Board) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	b.log = l
}

// Edge returns the number of cells along one side.
func (b *Board) Edge() int {
	return b.edge
}

// Cells returns every cell in row-major order.
func (b *Board) Cells() []*Cell {
	cells := make([]*Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// CellAt returns the cell at (row, col). ok is false outside the board.
func (b *Board) CellAt(row, col int) (cell *Cell, ok bool) {
	if row < 0 || col < 0 || row >= b.edge || col >= b.edge {
		return nil, false
	}
	return b.cells[row*b.edge+col], true
}

// Place attempts a validated, flipping placement at (row, col).
func (b *Board) Place(row, col int, color Color) bool {
	cell, ok := b.CellAt(row, col)
	if !ok {
		return false
	}
	return cell.AttemptPlace(color)
}

// PlaceInitialFour puts the four starting discs in the centre of the board.
// No validation or flipping takes place.
func (b *Board) PlaceInitialFour() {
	lo, hi := b.edge/2-1, b.edge/2
	start := []struct {
		row, col int
		color    Color
	}{
		{lo, lo, Black},
		{lo, hi, White},
		{hi, lo, White},
		{hi, hi, Black},
	}
	for _, s := range start {
		b.cells[s.row*b.edge+s.col].AttemptPlace(s.color, WithoutValidation(), WithoutFlip())
	}
}

// DiscCount counts the discs on the board.
// With a colour argument only discs of that colour are counted.
func (b *Board) DiscCount(colors ...Color) int {
	count := 0
	for _, c := range b.cells {
		if c.disc.Has(colors...) && c.HasDisc() {
			count++
		}
	}
	return count
}

// Candidates returns the cells where color can legally be placed right now.
func (b *Board) Candidates(color Color) []*Cell {
	var candidates []*Cell
	for _, c := range b.cells {
		if c.LegalityCheck(color) {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// IsFull returns true when every cell holds a disc.
func (b *Board) IsFull() bool {
	return b.DiscCount() == b.edge*b.edge
}

// IsSingleColor returns true when there is at least one disc and all discs share a colour.
func (b *Board) IsSingleColor() bool {
	total := b.DiscCount()
	if total == 0 {
		return false
	}
	return b.DiscCount(Black) == total || b.DiscCount(White) == total
}

// Winner returns the colour with more discs, or None on a tie.
func (b *Board) Winner() Color {
	black, white := b.DiscCount(Black), b.DiscCount(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return None
}

// Snapshot copies the disc colours into a [row][col] grid.
func (b *Board) Snapshot() [][]Color {
	grid := make([][]Color, b.edge)
	for row := range grid {
		grid[row] = make([]Color, b.edge)
		for col := range grid[row] {
			grid[row][col] = b.cells[row*b.edge+col].disc.color
		}
	}
	return grid
}

// String renders the board with column letters and row numbers.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.edge; col++ {
		sb.WriteByte(' ')
		sb.WriteString(columnName(col))
	}
	sb.WriteByte('\n')
	for row := 0; row < b.edge; row++ {
		fmt.Fprintf(&sb, "%2d", row+1)
		for col := 0; col < b.edge; col++ {
			sb.WriteByte(' ')
			switch b.cells[row*b.edge+col].disc.color {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
