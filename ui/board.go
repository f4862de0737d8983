// Package ui specifies custom controls for tview to play Reversi in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/config"
	"termreversi/engine"
	"termreversi/game"
	"termreversi/types"
)

// style indices
const (
	styleBoard = iota
	styleBlack
	styleWhite
	styleBoardAlt
	styleCandidate
	styleCursorFG
	styleLastPlayed
	styleCursorBG
)

type BoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	finished   bool
	selX       int
	selY       int
	passColor  int // color that last had to pass, 0 when nobody did
	message    string
	app        *tview.Application
	eng        engine.GameEngine
	gameConfig engine.GameConfig
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *BoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *BoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

func (b *BoardUI) SelectedTile() *types.BoardPos {
	if b.selX == -1 && b.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: b.selX, Y: b.selY}
}

func (b *BoardUI) MoveSelection(h, v int) {
	if b.BoardState.Finished() {
		b.ResetSelection()
		return
	}
	if b.SelectedTile() == nil {
		b.selX = b.BoardState.LastMove.X
		b.selY = b.BoardState.LastMove.Y
		if b.SelectedTile() == nil {
			// No previous move made, use board center
			b.selX = b.BoardState.Width() / 2
			b.selY = b.BoardState.Height() / 2
		}
		return
	}
	if b.selX+h < 0 || b.selX+h >= b.BoardState.Width() {
		return
	}
	if b.selY+v < 0 || b.selY+v >= b.BoardState.Height() {
		return
	}
	b.selX += h
	b.selY += v
}

// SelectNextCandidate moves the cursor to the next legal move in reading order.
func (b *BoardUI) SelectNextCandidate() {
	candidates := b.BoardState.Candidates
	if len(candidates) == 0 {
		return
	}
	next := candidates[0]
	for _, c := range candidates {
		if c.Y > b.selY || (c.Y == b.selY && c.X > b.selX) {
			next = c
			break
		}
	}
	b.selX, b.selY = next.X, next.Y
}

func (b *BoardUI) ResetSelection() {
	b.selX = -1
	b.selY = -1
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		state := board.BoardState
		if state == nil || state.Width() == 0 {
			return x, y, 1, 1
		}
		theme := board.cfg.Theme
		// 2 characters per cell for square appearance
		boardW, boardH := state.Width()*2, state.Height()

		for boardY := 0; boardY < state.Height(); boardY++ {
			for boardX := 0; boardX < state.Width(); boardX++ {
				disc := state.Board[boardY][boardX]
				bg := styleBoard
				if (boardX+boardY)%2 == 1 {
					bg = styleBoardAlt
				}
				fg := board.styles[styleCandidate]
				drawRune := theme.Symbols.BoardSquare

				switch disc {
				case 1:
					drawRune = theme.Symbols.BlackDisc
					fg = board.styles[styleBlack]
				case 2:
					drawRune = theme.Symbols.WhiteDisc
					fg = board.styles[styleWhite]
				default:
					if theme.ShowCandidates && state.IsCandidate(boardX, boardY) {
						drawRune = theme.Symbols.Candidate
					}
				}
				if disc > 0 && theme.DrawDiscBackground {
					// Disc as background, drawn with the opposite colour
					bg = disc
					fg = board.styles[3-disc]
				}

				if boardX == board.selX && boardY == board.selY {
					if theme.DrawCursorBackground {
						bg = styleCursorBG
					} else if disc == 0 {
						drawRune = theme.Symbols.Cursor
						fg = board.styles[styleCursorFG]
					}
				} else if boardX == state.LastMove.X && boardY == state.LastMove.Y {
					if theme.DrawLastPlayedBackground {
						bg = styleLastPlayed
					} else {
						drawRune = theme.Symbols.LastPlayed
					}
				}

				drawCell(screen, tcell.StyleDefault.Background(board.styles[bg]).Foreground(fg), drawRune, boardX, boardY, x+4, y)
			}
		}
		drawCoordinates(screen, x, y, board)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// ConnectEngine connects the board to a game engine.
func (b *BoardUI) ConnectEngine(e engine.GameEngine, cfg engine.GameConfig) error {
	b.finished = false
	b.passColor = 0
	b.message = ""
	b.eng = e
	b.gameConfig = cfg
	b.ResetSelection()

	e.OnMove(func(x, y, color int, boardState *types.BoardState) {
		if x == -1 && y == -1 {
			b.passColor = color
		} else if color == e.GetPlayerColor() {
			b.passColor = 0
		}
		b.BoardState = boardState
		b.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			b.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		b.finished = true
		b.BoardState = e.GetBoardState()
		b.ResetSelection()
		b.refreshHint()
		go func() {
			b.app.QueueUpdateDraw(func() {})
		}()
	})

	if b.infoPanel != nil {
		b.infoPanel.SetGameConfig(cfg)
	}
	if err := e.Connect(); err != nil {
		return err
	}

	b.BoardState = e.GetBoardState()
	b.refreshHint()
	return nil
}

// PlayMove plays a move at the given coordinates.
func (b *BoardUI) PlayMove(x, y int) {
	if b.finished || b.eng == nil || !b.eng.IsMyTurn() {
		return
	}
	b.message = ""
	if err := b.eng.PlayMove(x, y); err != nil {
		if errors.Is(err, game.ErrIllegalMove) {
			b.message = "Nothing to flip there"
		} else {
			b.message = err.Error()
		}
		b.refreshHint()
	}
}

// Pass passes the current turn.
func (b *BoardUI) Pass() {
	if b.finished || b.eng == nil || !b.eng.IsMyTurn() {
		return
	}
	b.message = ""
	if err := b.eng.Pass(); err != nil {
		if errors.Is(err, game.ErrCannotPass) {
			b.message = "You still have a move"
		} else {
			b.message = err.Error()
		}
		b.refreshHint()
	}
}

// Close disconnects the engine.
func (b *BoardUI) Close() {
	if b.eng == nil {
		return
	}
	b.eng.Close()
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.CandidateColor),    // styleCandidate
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
	}
	b.cfg = c
}

func (b *BoardUI) refreshHint() {
	// Update info panel if available
	if b.infoPanel != nil {
		b.infoPanel.SetBoardState(b.BoardState)
	}

	// Focus mode shows minimal hint
	if b.focusMode {
		b.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if b.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", b.BoardState.Outcome)
		controlsLine = "\n  ⏎/q · return to menu"
	} else {
		player := 0
		if b.eng != nil {
			player = b.eng.GetPlayerColor()
		}
		switch {
		case b.message != "":
			statusLine = fmt.Sprintf("  ✗ %s\n\n", b.message)
		case b.passColor != 0 && b.passColor == player:
			statusLine = "  ○ You had no move\n\n"
		case b.passColor != 0:
			statusLine = "  ○ Opponent had no move\n\n"
		}

		if b.eng != nil && b.eng.IsMyTurn() {
			turnLine = fmt.Sprintf("  ● Your move (%s)\n", colorName(player))
			if len(b.BoardState.Candidates) == 0 {
				turnLine = "  ● No move available, press p to pass\n"
			}
		} else {
			turnLine = "  ◌ Thinking...\n"
		}

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play   n next hint
         p pass   f focus   q quit`
	}

	b.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (b *BoardUI) IsFinished() bool {
	return b.finished
}

// drawCell draws a board cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := int('a')
	w, h := ui.BoardState.Width(), ui.BoardState.Height()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayed])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		// 2-char cells
		s.SetContent(x+4+(ix*2), y+h+1, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	// Rows count from the top, as in Othello notation
	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		} else if iy == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+iy, tensRune, nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+displayNum%10), nil, _style)
	}
	s.Show()
}

func colorName(color int) string {
	if color == 2 {
		return "White"
	}
	return "Black"
}
