// termreversi is a terminal application to play Reversi against the computer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/config"
	"termreversi/cpu"
	"termreversi/engine"
	"termreversi/engine/local"
	"termreversi/reversi"
	"termreversi/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (even, 4 to 16)")
	flagColor      = flag.String("color", "", "Player color (black or white)")
	flagLevel      = flag.String("level", "", "CPU level (easy, normal or hard)")
	flagSeed       = flag.Int64("seed", 0, "Random seed for the CPU (0 for a random game)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var debugLog *log.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termreversi %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gameCfg, err := buildGameConfigFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logFile, err := openDebugLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
		debugLog = log.New(io.Discard, "", 0)
	} else {
		defer logFile.Close()
		debugLog = log.New(logFile, "", log.Ltime|log.Lmicroseconds)
	}
	debugLog.Printf("termreversi %s starting", Version)

	// Check if quick start requested
	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagColor != "" || *flagLevel != "" || *flagSeed != 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ◐ termreversi ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, gameHint)

	// Create game layout with centered board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			if gameBoard.IsFinished() {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
				return nil
			}
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.X, selTile.Y)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'n':
				gameBoard.SelectNextCandidate()
			case 'p':
				gameBoard.Pass()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		gameCfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// An open dropdown focuses its list and closes on Esc
		if _, dropDownOpen := app.GetFocus().(*tview.List); event.Key() == tcell.KeyEsc && !dropDownOpen {
			app.Stop()
			return nil
		}
		return event
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(gameCfg)
		// Enter focus mode if requested
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		debugLog.Printf("application stopped: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gameBoard.Close()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.Close()
	debugLog.Printf("startGame: %+v", gameCfg)

	eng := local.NewLocalEngine(gameCfg, local.WithLogger(debugLog))
	if err := gameBoard.ConnectEngine(eng, gameCfg); err != nil {
		debugLog.Printf("startGame: %v", err)
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags creates a GameConfig from the config file defaults and command-line flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	gameCfg := ui.SetupConfig(cfg.Game, cfg.PlayerColor())

	if *flagBoardSize != 0 {
		if *flagBoardSize < config.MinBoardSize || *flagBoardSize > config.MaxBoardSize {
			return gameCfg, fmt.Errorf("-boardsize must be between %d and %d", config.MinBoardSize, config.MaxBoardSize)
		}
		if _, err := reversi.NewBoard(*flagBoardSize); err != nil {
			return gameCfg, fmt.Errorf("-boardsize: %w", err)
		}
		gameCfg.BoardSize = *flagBoardSize
	}

	if *flagColor != "" {
		color, err := reversi.ParseColor(*flagColor)
		if err != nil {
			return gameCfg, fmt.Errorf("-color: %w", err)
		}
		gameCfg.PlayerColor = int(color)
	}

	if *flagLevel != "" {
		level, err := cpu.ParseLevel(*flagLevel)
		if err != nil {
			return gameCfg, fmt.Errorf("-level: %w", err)
		}
		gameCfg.Level = string(level)
	}

	if *flagSeed != 0 {
		gameCfg.Seed = *flagSeed
	}

	return gameCfg, nil
}

// openDebugLog opens the debug log for appending.
func openDebugLog() (*os.File, error) {
	path, err := cfg.DebugLogPath()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
