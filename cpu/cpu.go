package cpu

import (
	"io"
	"log"
	"math/rand"
	"time"

	"termreversi/reversi"
)

// CPU chooses and plays moves on a board using the active difficulty policy.
type CPU struct {
	board    *reversi.Board
	policies map[Level]Policy
	policy   Policy
	rng      *rand.Rand
	log      *log.Logger
}

// Option configures a CPU.
type Option func(*CPU)

// WithRand sets the random source used to break ties.
func WithRand(rng *rand.Rand) Option {
	return func(c *CPU) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed seeds the tie-breaking random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger for move decisions.
func WithLogger(l *log.Logger) Option {
	return func(c *CPU) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPolicy replaces the policy used for its level.
func WithPolicy(p Policy) Option {
	return func(c *CPU) { c.policies[p.Level()] = p }
}

// New creates a CPU playing on board at the given level.
func New(board *reversi.Board, level Level, opts ...Option) (*CPU, error) {
	c := &CPU{
		board:    board,
		policies: defaultPolicies(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.SetLevel(level); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLevel switches the active policy. Setting the current level again changes nothing.
func (c *CPU) SetLevel(level Level) error {
	l, err := ParseLevel(string(level))
	if err != nil {
		return err
	}
	c.policy = c.policies[l]
	return nil
}

// Level returns the active difficulty.
func (c *CPU) Level() Level {
	return c.policy.Level()
}

// SelectCell picks the cell the active policy would play for color, without playing it.
// Returns nil when color has no legal move.
func (c *CPU) SelectCell(color reversi.Color) *reversi.Cell {
	candidates := c.board.Candidates(color)
	if len(candidates) == 0 {
		return nil
	}
	s := NewStrategy(c.board, color, candidates)
	return s.Select(c.rng, c.policy.Ops(c.board)...)
}

// Play selects and places a disc for color. ok is false when there was no move.
func (c *CPU) Play(color reversi.Color) (cell *reversi.Cell, ok bool) {
	cell = c.SelectCell(color)
	if cell == nil {
		c.log.Printf("cpu %s (%s): no move available", color, c.Level())
		return nil, false
	}
	if !cell.AttemptPlace(color) {
		// Candidates are computed from the same board, so this means the rules disagree with themselves.
		c.log.Printf("cpu %s (%s): selected %s but placement failed", color, c.Level(), cell)
		return nil, false
	}
	c.log.Printf("cpu %s (%s): played %s", color, c.Level(), cell)
	return cell, true
}

// PutReversi plays a move for color and reports whether one was made.
func (c *CPU) PutReversi(color reversi.Color) bool {
	_, ok := c.Play(color)
	return ok
}
