package reversi

import (
	"errors"
	"fmt"
	"strings"
)

// Color is the colour of a disc. None marks an empty cell.
type Color int

const (
	None Color = iota
	Black
	White
)

// ErrInvalidColor is returned when a disc is set to a colour it cannot hold.
var ErrInvalidColor = errors.New("invalid color")

// Valid returns true for Black and White.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the opposite colour (Black <-> White). None stays None.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case None:
		return "none"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor converts "black"/"b" and "white"/"w" to a Color.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Disc holds the colour of a single cell.
type Disc struct {
	color Color
}

// Color returns the disc colour, None when the cell is empty.
func (d *Disc) Color() Color {
	return d.color
}

// Set changes the disc colour. Setting the current colour again is a no-op.
// A placed disc can never go back to None.
func (d *Disc) Set(color Color) error {
	if color == d.color {
		return nil
	}
	if !color.Valid() {
		return fmt.Errorf("%w: cannot set %s", ErrInvalidColor, color)
	}
	d.color = color
	return nil
}

// Has returns true if the disc has the given colour.
// Called without arguments, it returns true if the disc has any colour.
func (d *Disc) Has(colors ...Color) bool {
	if len(colors) == 0 {
		return d.color != None
	}
	return d.color == colors[0]
}

// IsOpposite returns true if the disc holds the opponent of color.
func (d *Disc) IsOpposite(color Color) bool {
	return color.Valid() && d.color == color.Opponent()
}

// Toggle flips a placed disc to the other colour. Empty discs are left alone.
func (d *Disc) Toggle() bool {
	if !d.color.Valid() {
		return false
	}
	d.color = d.color.Opponent()
	return true
}
