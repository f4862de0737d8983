package cpu

import (
	"errors"
	"fmt"
	"strings"

	"termreversi/reversi"
)

// Level is a CPU difficulty.
type Level string

const (
	Easy   Level = "easy"
	Normal Level = "normal"
	Hard   Level = "hard"
)

// Levels lists the difficulties from weakest to strongest.
var Levels = []Level{Easy, Normal, Hard}

// ErrInvalidLevel is returned for an unknown difficulty name.
var ErrInvalidLevel = errors.New("invalid level")

// ParseLevel converts a name such as "normal" to a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Policy turns a board position into the ordered filters fed to Strategy.Select.
type Policy interface {
	Level() Level
	Ops(board *reversi.Board) []Op
}

// EasyPolicy grabs (or avoids) flips depending on the game phase, then
// prefers the cells a stronger player would avoid.
type EasyPolicy struct{}

func (EasyPolicy) Level() Level { return Easy }

func (EasyPolicy) Ops(board *reversi.Board) []Op {
	edge := board.Edge()
	reversable := LeastReversable
	if board.DiscCount()*4 < edge*edge {
		reversable = MostReversable
	}
	return []Op{reversable, StarPosition, AroundCorner, NotEdge}
}

// NormalPolicy takes corners, stays away from the cells next to them and
// prefers edges. It flips few discs early and many late.
type NormalPolicy struct{}

func (NormalPolicy) Level() Level { return Normal }

func (NormalPolicy) Ops(board *reversi.Board) []Op {
	edge := board.Edge()
	reversable := MostReversable
	if board.DiscCount()*5 < edge*edge*3 {
		reversable = LeastReversable
	}
	return []Op{
		Corner,
		Negate(StarPosition),
		Negate(AroundCorner),
		Edge,
		reversable,
	}
}

// HardPolicy is Normal with a later switch to greedy flipping: it keeps
// mobility-friendly quiet moves until the last third of the game.
type HardPolicy struct{}

func (HardPolicy) Level() Level { return Hard }

func (HardPolicy) Ops(board *reversi.Board) []Op {
	edge := board.Edge()
	reversable := LeastReversable
	if board.DiscCount()*3 >= edge*edge*2 {
		reversable = MostReversable
	}
	return []Op{
		Corner,
		Negate(AroundCorner),
		Edge,
		reversable,
	}
}

func defaultPolicies() map[Level]Policy {
	return map[Level]Policy{
		Easy:   EasyPolicy{},
		Normal: NormalPolicy{},
		Hard:   HardPolicy{},
	}
}
