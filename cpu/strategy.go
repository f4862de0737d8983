// Package cpu implements the computer opponent: a pipeline of filters over the
// candidate cells and the difficulty policies built from it.
package cpu

import (
	"math/rand"

	"termreversi/reversi"
)

// Strategy is a working set of candidate cells for one colour.
// Every operation returns a new Strategy and leaves the receiver and the board untouched.
type Strategy struct {
	board *reversi.Board
	color reversi.Color
	cells []*reversi.Cell
}

// Op narrows a Strategy's working set.
type Op func(Strategy) Strategy

// NewStrategy wraps the cells color may choose from.
func NewStrategy(board *reversi.Board, color reversi.Color, cells []*reversi.Cell) Strategy {
	return Strategy{board: board, color: color, cells: copyCells(cells)}
}

// Cells returns the current working set.
func (s Strategy) Cells() []*reversi.Cell {
	return copyCells(s.cells)
}

// Len returns the size of the working set.
func (s Strategy) Len() int {
	return len(s.cells)
}

// Board returns the board the cells belong to.
func (s Strategy) Board() *reversi.Board {
	return s.board
}

// Color returns the colour the strategy chooses for.
func (s Strategy) Color() reversi.Color {
	return s.color
}

// Apply runs op against s. Useful for chaining: s.Apply(Edge).Apply(MostReversable).
func (s Strategy) Apply(op Op) Strategy {
	return op(s)
}

// FilterBy keeps the cells satisfying pred.
func (s Strategy) FilterBy(pred func(*reversi.Cell) bool) Strategy {
	kept := make([]*reversi.Cell, 0, len(s.cells))
	for _, c := range s.cells {
		if pred(c) {
			kept = append(kept, c)
		}
	}
	return s.with(kept)
}

// Select applies ops in order and picks one of the remaining cells at random.
// An op that would leave no cells is skipped, so the previous non-empty set is kept.
// Returns nil when the strategy starts empty.
func (s Strategy) Select(rng *rand.Rand, ops ...Op) *reversi.Cell {
	if len(s.cells) == 0 {
		return nil
	}
	current := s
	for _, op := range ops {
		next := op(current)
		if len(next.cells) == 0 {
			continue
		}
		current = next
	}
	return current.cells[rng.Intn(len(current.cells))]
}

func (s Strategy) with(cells []*reversi.Cell) Strategy {
	return Strategy{board: s.board, color: s.color, cells: cells}
}

// FilterBy returns an Op keeping the cells satisfying pred.
func FilterBy(pred func(*reversi.Cell) bool) Op {
	return func(s Strategy) Strategy { return s.FilterBy(pred) }
}

// Edge keeps cells on the outer ring.
func Edge(s Strategy) Strategy {
	return s.FilterBy((*reversi.Cell).IsEdge)
}

// NotEdge keeps cells off the outer ring.
func NotEdge(s Strategy) Strategy {
	return s.FilterBy(func(c *reversi.Cell) bool { return !c.IsEdge() })
}

// Corner keeps the corners.
func Corner(s Strategy) Strategy {
	return s.FilterBy((*reversi.Cell).IsCorner)
}

// AroundCorner keeps cells next to a corner.
func AroundCorner(s Strategy) Strategy {
	return s.FilterBy((*reversi.Cell).IsAroundCorner)
}

// StarPosition keeps cells diagonally inset from a corner.
func StarPosition(s Strategy) Strategy {
	return s.FilterBy((*reversi.Cell).IsStarPosition)
}

// MostReversable keeps the cells that flip the most discs.
func MostReversable(s Strategy) Strategy {
	return s.byReversibleCount(func(count, best int) bool { return count > best })
}

// LeastReversable keeps the cells that flip the fewest discs.
func LeastReversable(s Strategy) Strategy {
	return s.byReversibleCount(func(count, best int) bool { return count < best })
}

// byReversibleCount keeps the cells whose flip count is the extreme according to better.
func (s Strategy) byReversibleCount(better func(count, best int) bool) Strategy {
	if len(s.cells) == 0 {
		return s
	}
	counts := make([]int, len(s.cells))
	best := 0
	for i, c := range s.cells {
		counts[i] = c.ReversibleCount(s.color)
		if i == 0 || better(counts[i], best) {
			best = counts[i]
		}
	}
	kept := make([]*reversi.Cell, 0, len(s.cells))
	for i, c := range s.cells {
		if counts[i] == best {
			kept = append(kept, c)
		}
	}
	return s.with(kept)
}

// Negate returns an Op keeping exactly the cells op would have removed.
func Negate(op Op) Op {
	return func(s Strategy) Strategy {
		survivors := op(s.with(copyCells(s.cells)))
		kept := make(map[*reversi.Cell]bool, len(survivors.cells))
		for _, c := range survivors.cells {
			kept[c] = true
		}
		return s.FilterBy(func(c *reversi.Cell) bool { return !kept[c] })
	}
}

func copyCells(cells []*reversi.Cell) []*reversi.Cell {
	out := make([]*reversi.Cell, len(cells))
	copy(out, cells)
	return out
}
