// Package local provides an in-process engine playing the built-in CPU.
package local

import (
	"fmt"
	"io"
	"log"
	"sync"

	"termreversi/cpu"
	"termreversi/engine"
	"termreversi/game"
	"termreversi/reversi"
	"termreversi/types"
)

// LocalEngine implements the GameEngine interface on top of a game.Game.
type LocalEngine struct {
	config     engine.GameConfig
	game       *game.Game
	boardState *types.BoardState
	debugLog   *log.Logger

	moveCallback func(x, y, color int, boardState *types.BoardState)
	endCallback  func(outcome string)

	mu      sync.Mutex
	pending sync.WaitGroup
}

// Option configures a LocalEngine.
type Option func(*LocalEngine)

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(e *LocalEngine) {
		if l != nil {
			e.debugLog = l
		}
	}
}

// NewLocalEngine creates a new local engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig, opts ...Option) *LocalEngine {
	e := &LocalEngine{
		config:     cfg,
		boardState: types.NewBoardState(cfg.BoardSize),
		debugLog:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Connect creates the game. When the human plays white the CPU opens in the background.
func (e *LocalEngine) Connect() error {
	human := reversi.Color(e.config.PlayerColor)
	level, err := cpu.ParseLevel(e.config.Level)
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithLogger(e.debugLog)}
	if e.config.Seed != 0 {
		opts = append(opts, game.WithCPUOptions(cpu.WithSeed(e.config.Seed)))
	}
	if e.config.ManualPass {
		opts = append(opts, game.WithManualPass())
	}

	g, err := game.New(game.Config{Edge: e.config.BoardSize, Human: human, Level: level}, opts...)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	e.mu.Lock()
	e.game = g
	e.refreshBoardState()
	myTurn := g.IsHumanTurn()
	e.mu.Unlock()

	if !myTurn {
		e.startEngineMove()
	}
	return nil
}

// GetBoardState returns a copy of the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.boardState.Copy()
}

// PlayMove plays the human's disc at column x, row y.
func (e *LocalEngine) PlayMove(x, y int) error {
	e.debugLog.Printf("PlayMove: starting x=%d y=%d", x, y)
	e.mu.Lock()
	if e.game == nil {
		e.mu.Unlock()
		return fmt.Errorf("engine not connected")
	}

	res, err := e.game.Play(y, x)
	if err != nil {
		e.mu.Unlock()
		e.debugLog.Printf("PlayMove: rejected: %v", err)
		return err
	}
	e.refreshBoardState()
	boardStateCopy := e.boardState.Copy()
	myTurn := e.game.IsHumanTurn()
	e.mu.Unlock()

	// Notify callbacks (outside lock to prevent deadlock)
	e.notify(res, boardStateCopy)

	if res.State == game.InProgress && !myTurn {
		e.startEngineMove()
	}
	return nil
}

// Pass passes the current turn.
func (e *LocalEngine) Pass() error {
	e.mu.Lock()
	if e.game == nil {
		e.mu.Unlock()
		return fmt.Errorf("engine not connected")
	}

	res, err := e.game.Pass()
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("failed to pass: %w", err)
	}
	e.refreshBoardState()
	boardStateCopy := e.boardState.Copy()
	e.mu.Unlock()

	e.notify(res, boardStateCopy)

	if res.State == game.InProgress {
		e.startEngineMove()
	}
	return nil
}

func (e *LocalEngine) startEngineMove() {
	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		e.triggerEngineMove()
	}()
}

// triggerEngineMove lets the CPU play until the human is to move or the game is over.
func (e *LocalEngine) triggerEngineMove() {
	e.mu.Lock()
	if e.game == nil || e.game.State() == game.Finished {
		e.mu.Unlock()
		return
	}

	res, err := e.game.CPUTurn()
	if err != nil {
		e.mu.Unlock()
		e.debugLog.Printf("triggerEngineMove: %v", err)
		return
	}
	e.refreshBoardState()
	boardStateCopy := e.boardState.Copy()
	e.mu.Unlock()

	// Notify callbacks (outside lock)
	e.notify(res, boardStateCopy)
}

// notify reports every move of res, then the end of the game if res finished it.
func (e *LocalEngine) notify(res game.Result, boardState *types.BoardState) {
	if e.moveCallback != nil {
		for _, m := range res.Moves {
			x, y := m.Col, m.Row
			if m.Pass {
				x, y = -1, -1
			}
			e.moveCallback(x, y, int(m.Color), boardState)
		}
	}
	if res.State == game.Finished && e.endCallback != nil {
		e.endCallback(boardState.Outcome)
	}
}

// refreshBoardState rebuilds the board state from the game.
// Must be called while holding the lock.
func (e *LocalEngine) refreshBoardState() {
	g := e.game
	b := g.Board()
	moves := g.Moves()

	state := types.NewBoardState(b.Edge())
	state.GameID = g.ID.String()
	state.MoveNumber = len(moves)
	state.PlayerToMove = int(g.Turn())
	state.Phase = g.State().String()
	state.Outcome = g.Outcome()
	state.Black = b.DiscCount(reversi.Black)
	state.White = b.DiscCount(reversi.White)
	for _, m := range moves {
		state.Moves = append(state.Moves, m.String())
	}

	for y, row := range b.Snapshot() {
		for x, color := range row {
			state.Board[y][x] = int(color)
		}
	}
	for _, c := range g.Candidates() {
		state.Candidates = append(state.Candidates, types.BoardPos{X: c.Col(), Y: c.Row()})
	}
	if last, ok := g.LastMove(); ok && !last.Pass {
		state.LastMove = types.BoardPos{X: last.Col, Y: last.Row}
	}
	e.boardState = state
}

// IsMyTurn returns true if it's the human player's turn.
func (e *LocalEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game != nil && e.game.IsHumanTurn()
}

// GetPlayerColor returns the human player's color (1=black, 2=white).
func (e *LocalEngine) GetPlayerColor() int {
	return e.config.PlayerColor
}

// Candidates returns the human's legal moves.
func (e *LocalEngine) Candidates() []types.BoardPos {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]types.BoardPos, len(e.boardState.Candidates))
	copy(out, e.boardState.Candidates)
	return out
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(x, y, color int, boardState *types.BoardState)) {
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.endCallback = callback
}

// Close waits for a pending CPU move to finish.
func (e *LocalEngine) Close() {
	e.pending.Wait()
	e.debugLog.Printf("Close: engine stopped")
}
