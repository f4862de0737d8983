package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/config"
	"termreversi/cpu"
	"termreversi/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	gameConfig engine.GameConfig
}

// SetupConfig turns the configured defaults into a GameConfig.
func SetupConfig(defaults config.GameConfig, playerColor int) engine.GameConfig {
	return engine.GameConfig{
		BoardSize:   defaults.BoardSize,
		PlayerColor: playerColor,
		Level:       defaults.Level,
		Seed:        defaults.Seed,
		ManualPass:  defaults.ManualPass,
	}
}

// NewGameSetup creates a new game setup form starting from initial.
func NewGameSetup(initial engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:    onStart,
		onCancel:   onCancel,
		onColors:   onColors,
		gameConfig: initial,
	}

	var boardSizes []string
	sizeIndex := 0
	for size := config.MinBoardSize; size <= config.MaxBoardSize; size += 2 {
		if size == initial.BoardSize {
			sizeIndex = len(boardSizes)
		}
		boardSizes = append(boardSizes, fmt.Sprintf("%dx%d", size, size))
	}
	colors := []string{"Black (play first)", "White (play second)"}
	var levels []string
	levelIndex := 0
	for i, l := range cpu.Levels {
		if string(l) == initial.Level {
			levelIndex = i
		}
		levels = append(levels, string(l))
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", boardSizes, sizeIndex, func(option string, index int) {
		setup.gameConfig.BoardSize = config.MinBoardSize + index*2
	})

	form.AddDropDown("Your Color", colors, initial.PlayerColor-1, func(option string, index int) {
		setup.gameConfig.PlayerColor = index + 1 // 1=black, 2=white
	})

	form.AddDropDown("CPU Level", levels, levelIndex, func(option string, index int) {
		setup.gameConfig.Level = option
	})

	seed := ""
	if initial.Seed != 0 {
		seed = strconv.FormatInt(initial.Seed, 10)
	}
	form.AddInputField("Seed", seed, 12, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9'
	}, func(text string) {
		// Empty or invalid means random
		setup.gameConfig.Seed, _ = strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	})

	form.AddCheckbox("Confirm passes", initial.ManualPass, func(checked bool) {
		setup.gameConfig.ManualPass = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.gameConfig)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkGreen)
	form.SetButtonTextColor(tcell.ColorWhite)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate  |  Arrows: change  |  Enter: confirm  |  Esc: quit").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
