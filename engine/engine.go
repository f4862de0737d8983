// Package engine defines the interface for game engines.
package engine

import "termreversi/types"

// GameEngine defines the interface for playing Reversi against an engine.
type GameEngine interface {
	// Connect starts the engine and initializes the game.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove places the human's disc at column x, row y.
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// Pass passes the current turn. Only allowed without a legal move.
	Pass() error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// GetPlayerColor returns the human player's color (1=black, 2=white).
	GetPlayerColor() int

	// Candidates returns the cells the human may play, empty while the engine is thinking.
	Candidates() []types.BoardPos

	// OnMove registers a callback for when a move is played (by either player).
	// x, y are -1, -1 for a pass. boardState is passed directly to avoid lock contention.
	OnMove(func(x, y, color int, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize   int    // even, 4 to 16
	PlayerColor int    // 1=black, 2=white
	Level       string // easy, normal or hard
	Seed        int64  // 0 picks a time-based seed
	ManualPass  bool   // wait for the player to pass instead of skipping automatically
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:   8,
		PlayerColor: 1, // Human plays black
		Level:       "normal",
	}
}
