package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"termreversi/cpu"
	"termreversi/reversi"
)

var (
	cfgFile = "termreversi/config.json"
	logFile = "termreversi/debug.log"
)

const (
	MinBoardSize = 4
	MaxBoardSize = 16
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	CandidateColor    int `json:"candidate"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackDisc   rune `json:"black"`
	WhiteDisc   rune `json:"white"`
	BoardSquare rune `json:"board"`
	Candidate   rune `json:"candidate"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawDiscBackground       bool          `json:"draw_disc_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	ShowCandidates           bool          `json:"show_candidates"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults offered on the new game screen.
type GameConfig struct {
	BoardSize   int    `json:"board_size"`
	Level       string `json:"level"`
	PlayerColor string `json:"player_color"`
	Seed        int64  `json:"seed"`
	ManualPass  bool   `json:"manual_pass"`
	DebugLog    string `json:"debug_log"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackDisc, c.Theme.Symbols.WhiteDisc, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.Candidate} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	size := c.Game.BoardSize
	if size < MinBoardSize || size > MaxBoardSize || size%2 != 0 {
		return &InvalidConfig{fmt.Sprintf("board size must be even and between %d and %d, got %d", MinBoardSize, MaxBoardSize, size)}
	}
	if _, err := cpu.ParseLevel(c.Game.Level); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := reversi.ParseColor(c.Game.PlayerColor); err != nil {
		return &InvalidConfig{fmt.Sprintf("player color: %v", err)}
	}
	return nil
}

// PlayerColor returns the configured human colour as 1=black, 2=white.
func (c *Config) PlayerColor() int {
	color, err := reversi.ParseColor(c.Game.PlayerColor)
	if err != nil {
		return int(reversi.Black)
	}
	return int(color)
}

// DebugLogPath returns the configured debug log, or one under the XDG state directory.
func (c *Config) DebugLogPath() (string, error) {
	if c.Game.DebugLog != "" {
		return c.Game.DebugLog, nil
	}
	return xdg.StateFile(logFile)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err = json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
