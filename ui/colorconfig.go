package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoardColor     int
	selectedCandidateColor int
	editingCandidate       bool // true = editing hint color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Board colors to choose from (felt-like greens first)
var boardColors = []paletteEntry{
	{28, "Felt Green"},
	{34, "Bright Green"},
	{22, "Dark Green"},
	{29, "Sea Green"},
	{35, "Jade"},
	{64, "Olive"},
	{71, "Moss"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{30, "Deep Cyan"},
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{240, "Gray"},
	{236, "Dark Gray"},
}

// Candidate hint colors (contrast with the board)
var candidateColors = []paletteEntry{
	{22, "Dark Green"},
	{16, "True Black"},
	{236, "Dark Gray"},
	{244, "Medium Gray"},
	{250, "Light Gray"},
	{226, "Yellow"},
	{214, "Orange Gold"},
	{196, "Red"},
	{51, "Cyan"},
	{201, "Magenta"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                    cfg,
		onDone:                 onDone,
		selectedBoardColor:     cfg.Theme.Colors.BoardColor,
		selectedCandidateColor: cfg.Theme.Colors.CandidateColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		palette := cc.palette()
		if index < 0 || index >= len(palette) {
			return
		}
		if cc.editingCandidate {
			cc.selectedCandidateColor = palette[index].code
		} else {
			cc.selectedBoardColor = palette[index].code
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.palette()) {
			return
		}
		if cc.editingCandidate {
			cc.cfg.Theme.Colors.CandidateColor = cc.selectedCandidateColor
			cc.save()
			// Switch back to board color selection
			cc.editingCandidate = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		cc.save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []paletteEntry {
	if cc.editingCandidate {
		return candidateColors
	}
	return boardColors
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		cc.preview.SetTitle(fmt.Sprintf(" Not saved: %v ", err))
	}
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedBoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: switch to hints) ")
	if cc.editingCandidate {
		selected = cc.selectedCandidateColor
		cc.colorList.SetTitle(" Select Hint Color (Tab: switch to board) ")
	}

	palette := cc.palette()
	for i, c := range palette {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range palette {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewDiscs is a position a few moves into a 6x6 game.
var previewDiscs = map[[2]int]int{
	{2, 1}: 1,
	{2, 2}: 1,
	{3, 2}: 1,
	{2, 3}: 2,
	{3, 3}: 2,
	{4, 3}: 1,
}

// previewCandidates marks a few empty cells with the hint symbol.
var previewCandidates = map[[2]int]bool{
	{1, 1}: true,
	{2, 0}: true,
	{3, 1}: true,
	{5, 3}: true,
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	blackColor := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)
	whiteColor := tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)
	candidateColor := tcell.PaletteColor(cc.selectedCandidateColor)

	startX := x + 2
	startY := y + 1
	size := 6

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	symbols := cc.cfg.Theme.Symbols
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := tcell.StyleDefault.Background(boardColor).Foreground(candidateColor)
			char := symbols.BoardSquare
			switch previewDiscs[[2]int{col, row}] {
			case 1:
				char = symbols.BlackDisc
				style = style.Foreground(blackColor)
			case 2:
				char = symbols.WhiteDisc
				style = style.Foreground(whiteColor)
			default:
				if previewCandidates[[2]int{col, row}] {
					char = symbols.Candidate
				}
			}
			drawCell(screen, style, char, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Hints: %d", cc.selectedBoardColor, cc.selectedCandidateColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and hint color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingCandidate = !cc.editingCandidate
	cc.populateColorList()
}
