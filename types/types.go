// Package types contains shared data structures for termreversi.
package types

// BoardState represents the complete state of a Reversi board.
// Board is indexed as Board[y][x] where 0=empty, 1=black, 2=white.
type BoardState struct {
	GameID       string
	MoveNumber   int
	PlayerToMove int    // 1=black, 2=white
	Phase        string // "playing", "finished"
	Board        [][]int
	Black        int // disc counts
	White        int
	Candidates   []BoardPos // the human's legal moves, empty on the engine's turn
	Moves        []string   // move log in notation, "pass" for a skipped turn
	Outcome      string
	LastMove     BoardPos
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == "finished"
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsCandidate returns true if the human may play at (x, y).
func (b *BoardState) IsCandidate(x, y int) bool {
	for _, p := range b.Candidates {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the state.
func (b *BoardState) Copy() *BoardState {
	c := *b
	c.Board = make([][]int, len(b.Board))
	for i := range b.Board {
		c.Board[i] = make([]int, len(b.Board[i]))
		copy(c.Board[i], b.Board[i])
	}
	c.Candidates = make([]BoardPos, len(b.Candidates))
	copy(c.Candidates, b.Candidates)
	c.Moves = make([]string, len(b.Moves))
	copy(c.Moves, b.Moves)
	return &c
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}
	return &BoardState{
		MoveNumber:   0,
		PlayerToMove: 1, // Black plays first
		Phase:        "playing",
		Board:        board,
		LastMove:     BoardPos{X: -1, Y: -1},
	}
}
