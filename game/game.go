// Package game plays a human against the CPU on a reversi board.
// It owns the turn order, skipped turns and the end of the game; the rules
// themselves live in package reversi.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"termreversi/cpu"
	"termreversi/reversi"
)

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrCannotPass  = errors.New("cannot pass while a move is available")
)

// State is the phase of a game.
type State int

const (
	InProgress State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "playing"
}

// Move is one entry of the move log. Pass moves carry no coordinates.
type Move struct {
	Color reversi.Color
	Row   int
	Col   int
	Flips int
	Pass  bool
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return reversi.FormatPos(m.Row, m.Col)
}

// Result lists what a call produced, in order, including turns skipped
// automatically because a side had no move.
type Result struct {
	Moves []Move
	State State
}

// Config describes a new game.
type Config struct {
	Edge  int
	Human reversi.Color
	Level cpu.Level
}

// Option configures a Game.
type Option func(*Game)

// WithLogger traces the game, the board and the CPU to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithCPUOptions passes options through to the CPU, e.g. cpu.WithSeed.
func WithCPUOptions(opts ...cpu.Option) Option {
	return func(g *Game) { g.cpuOpts = append(g.cpuOpts, opts...) }
}

// WithManualPass leaves the turn with a stuck human until Pass is called.
// By default the skip is applied and recorded without waiting.
func WithManualPass() Option {
	return func(g *Game) { g.manualPass = true }
}

// Game is a single human vs CPU game. It is not safe for concurrent use.
type Game struct {
	ID uuid.UUID

	board      *reversi.Board
	cpu        *cpu.CPU
	human      reversi.Color
	turn       reversi.Color
	state      State
	moves      []Move
	manualPass bool
	cpuOpts    []cpu.Option
	log        *log.Logger
}

// New sets up the board with the four starting discs. Black moves first.
func New(cfg Config, opts ...Option) (*Game, error) {
	if !cfg.Human.Valid() {
		return nil, fmt.Errorf("human color: %w", reversi.ErrInvalidColor)
	}
	board, err := reversi.NewBoard(cfg.Edge)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:    uuid.New(),
		board: board,
		human: cfg.Human,
		turn:  reversi.Black,
		log:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	board.SetLogger(g.log)

	cpuOpts := append([]cpu.Option{cpu.WithLogger(g.log)}, g.cpuOpts...)
	g.cpu, err = cpu.New(board, cfg.Level, cpuOpts...)
	if err != nil {
		return nil, err
	}

	board.PlaceInitialFour()
	g.log.Printf("game %s: %dx%d, human %s, cpu %s", g.ID, cfg.Edge, cfg.Edge, g.human, g.cpu.Level())
	return g, nil
}

// Board returns the board. Callers must not place discs on it directly.
func (g *Game) Board() *reversi.Board { return g.board }

// Human returns the human's colour.
func (g *Game) Human() reversi.Color { return g.human }

// CPUColor returns the CPU's colour.
func (g *Game) CPUColor() reversi.Color { return g.human.Opponent() }

// Turn returns the colour to move. It is meaningless once the game is finished.
func (g *Game) Turn() reversi.Color { return g.turn }

// State returns the phase of the game.
func (g *Game) State() State { return g.state }

// IsHumanTurn returns true while the game waits for the human.
func (g *Game) IsHumanTurn() bool {
	return g.state == InProgress && g.turn == g.human
}

// Level returns the CPU difficulty.
func (g *Game) Level() cpu.Level { return g.cpu.Level() }

// SetLevel changes the CPU difficulty for its next move.
func (g *Game) SetLevel(level cpu.Level) error {
	if err := g.cpu.SetLevel(level); err != nil {
		return err
	}
	g.log.Printf("game %s: cpu level %s", g.ID, level)
	return nil
}

// Candidates returns the cells the human may play now, or nil when it is not their turn.
func (g *Game) Candidates() []*reversi.Cell {
	if !g.IsHumanTurn() {
		return nil
	}
	return g.board.Candidates(g.human)
}

// Moves returns a copy of the move log.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// LastMove returns the latest log entry. ok is false before the first move.
func (g *Game) LastMove() (m Move, ok bool) {
	if len(g.moves) == 0 {
		return Move{}, false
	}
	return g.moves[len(g.moves)-1], true
}

// Play places the human's disc at (row, col).
func (g *Game) Play(row, col int) (Result, error) {
	if g.state == Finished {
		return Result{State: g.state}, ErrGameOver
	}
	if g.turn != g.human {
		return Result{State: g.state}, ErrNotYourTurn
	}

	cell, ok := g.board.CellAt(row, col)
	if !ok {
		return Result{State: g.state}, fmt.Errorf("%w: (%d,%d) is off the board", ErrIllegalMove, row, col)
	}
	flips := cell.ReversibleCount(g.human)
	if !cell.AttemptPlace(g.human) {
		return Result{State: g.state}, fmt.Errorf("%w: %s", ErrIllegalMove, cell)
	}

	var res Result
	g.record(&res, Move{Color: g.human, Row: row, Col: col, Flips: flips})
	g.advance(&res)
	res.State = g.state
	return res, nil
}

// CPUTurn plays the CPU's move. While the human has no reply the CPU keeps
// moving, so the call returns when the human is to move or the game is over.
func (g *Game) CPUTurn() (Result, error) {
	if g.state == Finished {
		return Result{State: g.state}, ErrGameOver
	}
	color := g.CPUColor()
	if g.turn != color {
		return Result{State: g.state}, fmt.Errorf("%w: waiting for %s", ErrNotYourTurn, g.turn)
	}

	var res Result
	for g.state == InProgress && g.turn == color {
		before := g.board.DiscCount(color)
		cell, ok := g.cpu.Play(color)
		if !ok {
			g.skip(&res, color)
			continue
		}
		flips := g.board.DiscCount(color) - before - 1
		g.record(&res, Move{Color: color, Row: cell.Row(), Col: cell.Col(), Flips: flips})
		g.advance(&res)
	}
	res.State = g.state
	return res, nil
}

// Pass gives the turn away. The human may only pass without a legal move.
func (g *Game) Pass() (Result, error) {
	if g.state == Finished {
		return Result{State: g.state}, ErrGameOver
	}
	if g.turn != g.human {
		return Result{State: g.state}, ErrNotYourTurn
	}
	if len(g.board.Candidates(g.human)) > 0 {
		return Result{State: g.state}, ErrCannotPass
	}

	var res Result
	g.skip(&res, g.human)
	res.State = g.state
	return res, nil
}

// Outcome describes the result, e.g. "Black wins 40-24" or "Draw 32-32".
// It is empty while the game is in progress.
func (g *Game) Outcome() string {
	if g.state != Finished {
		return ""
	}
	black, white := g.board.DiscCount(reversi.Black), g.board.DiscCount(reversi.White)
	winner := g.board.Winner()
	switch winner {
	case reversi.Black:
		return fmt.Sprintf("%s wins %d-%d", Title(winner), black, white)
	case reversi.White:
		return fmt.Sprintf("%s wins %d-%d", Title(winner), white, black)
	}
	return fmt.Sprintf("Draw %d-%d", black, white)
}

// advance decides who moves after the side in g.turn has played.
func (g *Game) advance(res *Result) {
	if g.board.IsFull() || g.board.IsSingleColor() {
		g.finish()
		return
	}
	next := g.turn.Opponent()
	if len(g.board.Candidates(next)) > 0 {
		g.turn = next
		return
	}
	if len(g.board.Candidates(g.turn)) == 0 {
		g.finish()
		return
	}
	if next == g.human && g.manualPass {
		g.turn = next
		return
	}
	g.record(res, Move{Color: next, Pass: true})
}

// skip records a pass by color and hands the turn over, ending the game if
// the other side is stuck too.
func (g *Game) skip(res *Result, color reversi.Color) {
	g.record(res, Move{Color: color, Pass: true})
	g.turn = color.Opponent()
	if len(g.board.Candidates(g.turn)) == 0 {
		g.finish()
	}
}

func (g *Game) record(res *Result, m Move) {
	g.moves = append(g.moves, m)
	res.Moves = append(res.Moves, m)
	g.log.Printf("game %s: #%d %s %s flips=%d", g.ID, len(g.moves), m.Color, m, m.Flips)
}

func (g *Game) finish() {
	g.state = Finished
	g.log.Printf("game %s: finished, %s\n%s", g.ID, g.Outcome(), g.board)
}

// Title capitalises a colour name for display, e.g. "Black".
func Title(c reversi.Color) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
