package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawDiscBackground:       false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		ShowCandidates:           true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     34,
			BlackColor:        232,
			WhiteColor:        255,
			CandidateColor:    22,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 130,
		},
		Symbols: ConfigSymbols{
			BlackDisc:   '●',
			WhiteDisc:   '●',
			BoardSquare: ' ',
			Candidate:   '·',
			Cursor:      '+',
			LastPlayed:  '*',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			BoardSize:   8,
			Level:       "normal",
			PlayerColor: "black",
		},
	}
}
