package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termreversi/engine"
	"termreversi/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	gameConfig engine.GameConfig
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:        tview.NewTextView(),
		gameConfig: engine.DefaultConfig(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetGameConfig sets the level and colours shown for the current game.
func (p *GameInfoPanel) SetGameConfig(cfg engine.GameConfig) {
	p.gameConfig = cfg
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	p.box.SetText(panelText(p.boardState, p.gameConfig))
}

// panelText renders the info panel contents.
func panelText(state *types.BoardState, cfg engine.GameConfig) string {
	if state == nil || state.Width() == 0 {
		return ""
	}

	var text strings.Builder

	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	if len(state.GameID) >= 8 {
		fmt.Fprintf(&text, "[white]Game:[-:-:-] %s\n", state.GameID[:8])
	}
	fmt.Fprintf(&text, "[white]You:[-:-:-]  %s\n", colorName(cfg.PlayerColor))
	fmt.Fprintf(&text, "[white]CPU:[-:-:-]  %s\n", cfg.Level)
	fmt.Fprintf(&text, "[white]Move:[-:-:-] %d\n", state.MoveNumber)
	fmt.Fprintf(&text, "[white]Discs:[-:-:-] ● %d  [dimgray]○[-] %d\n", state.Black, state.White)

	if len(state.Moves) == 0 {
		return text.String()
	}

	text.WriteString("\n[white::b]Moves[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	// Show last N moves that fit, with scroll
	maxVisible := 12
	start := 0
	if len(state.Moves) > maxVisible {
		start = len(state.Moves) - maxVisible
	}

	for i := start; i < len(state.Moves); i++ {
		// Black opens and passes take a turn, so colours alternate
		colorStr := "[white]B[-]"
		if i%2 == 1 {
			colorStr = "[dimgray]W[-]"
		}

		marker := " "
		if i == len(state.Moves)-1 {
			marker = "[white]>[-]"
		}

		fmt.Fprintf(&text, "%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, state.Moves[i])
	}

	if start > 0 {
		fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetGameConfig(board.gameConfig)

	// Refresh the info panel with current state
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 7, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	// Calculate board dimensions
	boardWidth := 20 // default for 8x8
	boardHeight := 10
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 4  // 2 chars per cell + coordinates
		boardHeight = board.BoardState.Height() + 2 // + coordinates
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
