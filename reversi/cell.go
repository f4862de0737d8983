package reversi

// direction is a unit step on the board.
type direction struct {
	row, col int
}

var directions = []direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Cell is one square of the board. Its coordinates never change.
type Cell struct {
	row   int
	col   int
	disc  Disc
	board *Board
}

type placeOptions struct {
	validate bool
	flip     bool
}

// PlaceOption changes how AttemptPlace behaves.
type PlaceOption func(*placeOptions)

// WithoutValidation allows placing on an occupied cell or where nothing is captured.
func WithoutValidation() PlaceOption {
	return func(o *placeOptions) { o.validate = false }
}

// WithoutFlip skips capturing opposing discs.
func WithoutFlip() PlaceOption {
	return func(o *placeOptions) { o.flip = false }
}

// Row returns the row index.
func (c *Cell) Row() int { return c.row }

// Col returns the column index.
func (c *Cell) Col() int { return c.col }

// Color returns the colour of the disc on this cell, None when empty.
func (c *Cell) Color() Color { return c.disc.Color() }

// HasDisc returns true if a disc of any colour is on this cell.
func (c *Cell) HasDisc() bool { return c.disc.Has() }

// Equals returns true when both cells have the same coordinates.
func (c *Cell) Equals(other *Cell) bool {
	return other != nil && c.row == other.row && c.col == other.col
}

// String returns the cell in algebraic notation, e.g. "d3".
func (c *Cell) String() string {
	return FormatPos(c.row, c.col)
}

// AttemptPlace puts a disc of color on this cell and flips captured discs.
// By default the cell must be empty and the move must capture at least one disc;
// false is returned and nothing changes otherwise.
func (c *Cell) AttemptPlace(color Color, opts ...PlaceOption) bool {
	o := placeOptions{validate: true, flip: true}
	for _, opt := range opts {
		opt(&o)
	}

	if !color.Valid() {
		return false
	}
	if o.validate && c.HasDisc() {
		return false
	}

	flipped := 0
	if o.flip {
		captured := c.Flips(color)
		if len(captured) == 0 && o.validate {
			return false
		}
		for _, f := range captured {
			f.disc.Toggle()
		}
		flipped = len(captured)
	}

	if err := c.disc.Set(color); err != nil {
		return false
	}
	c.board.log.Printf("place %s %s flipped=%d", c, color, flipped)
	return true
}

// LegalityCheck returns true if color may be placed here: the cell is empty
// and at least one direction captures.
func (c *Cell) LegalityCheck(color Color) bool {
	if c.HasDisc() || !color.Valid() {
		return false
	}
	for _, d := range directions {
		if len(c.capturesToward(d, color)) > 0 {
			return true
		}
	}
	return false
}

// ReversibleCount returns how many opposing discs a placement of color would flip.
func (c *Cell) ReversibleCount(color Color) int {
	return len(c.Flips(color))
}

// Flips returns the discs a placement of color here would capture, over all directions.
func (c *Cell) Flips(color Color) []*Cell {
	if !color.Valid() {
		return nil
	}
	var captured []*Cell
	for _, d := range directions {
		captured = append(captured, c.capturesToward(d, color)...)
	}
	return captured
}

// capturesToward walks from c in direction d over opposing discs. The walk only
// captures if it ends on a disc of color; running off the board or reaching an
// empty cell captures nothing.
func (c *Cell) capturesToward(d direction, color Color) []*Cell {
	var captured []*Cell
	row, col := c.row+d.row, c.col+d.col
	for {
		next, ok := c.board.CellAt(row, col)
		if !ok || !next.HasDisc() {
			return nil
		}
		if next.disc.Has(color) {
			return captured
		}
		captured = append(captured, next)
		row += d.row
		col += d.col
	}
}

// IsEdge returns true on the outermost ring.
func (c *Cell) IsEdge() bool {
	last := c.board.edge - 1
	return c.row == 0 || c.row == last || c.col == 0 || c.col == last
}

// IsCorner returns true on the four corners.
func (c *Cell) IsCorner() bool {
	last := c.board.edge - 1
	return (c.row == 0 || c.row == last) && (c.col == 0 || c.col == last)
}

// IsStarPosition returns true on the cells diagonally inset one step from a corner
// (the "X-squares").
func (c *Cell) IsStarPosition() bool {
	inner := c.board.edge - 2
	return (c.row == 1 || c.row == inner) && (c.col == 1 || c.col == inner)
}

// IsAroundCorner returns true on a star position or on a cell orthogonally next to a corner.
//
//	 -----------------------
//	|   | x |   |   | x |   |
//	|-----------------------|
//	| x | x |   |   | x | x |
//	|-----------------------|
//	|   |   |   |   |   |   |
//	|-----------------------|
//	|   |   |   |   |   |   |
//	|-----------------------|
//	| x | x |   |   | x | x |
//	|-----------------------|
//	|   | x |   |   | x |   |
//	 -----------------------
func (c *Cell) IsAroundCorner() bool {
	if c.IsStarPosition() {
		return true
	}
	last := c.board.edge - 1
	for _, corner := range [][2]int{{0, 0}, {0, last}, {last, 0}, {last, last}} {
		dr, dc := abs(c.row-corner[0]), abs(c.col-corner[1])
		if dr+dc == 1 {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
