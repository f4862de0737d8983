package ui

import (
	"strings"
	"testing"

	"github.com/rivo/tview"

	"termreversi/config"
	"termreversi/engine"
	"termreversi/types"
)

func newTestBoard(t *testing.T) *BoardUI {
	t.Helper()
	cfg := config.DefaultConfig
	b := NewBoard(tview.NewApplication(), &cfg, tview.NewTextView())
	state := types.NewBoardState(8)
	state.Candidates = []types.BoardPos{{X: 4, Y: 2}, {X: 5, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 5}}
	b.BoardState = state
	return b
}

func TestMoveSelection(t *testing.T) {
	b := newTestBoard(t)
	if b.SelectedTile() != nil {
		t.Fatal("nothing is selected at first")
	}

	b.MoveSelection(1, 0)
	if sel := b.SelectedTile(); sel == nil || *sel != (types.BoardPos{X: 4, Y: 4}) {
		t.Fatalf("first move should select the centre, got %v", sel)
	}

	for i := 0; i < 10; i++ {
		b.MoveSelection(1, 0)
	}
	if sel := b.SelectedTile(); sel.X != 7 {
		t.Fatalf("selection should stop at the edge, got %v", sel)
	}

	b.ResetSelection()
	if b.SelectedTile() != nil {
		t.Fatal("reset should clear the selection")
	}
}

func TestSelectNextCandidate(t *testing.T) {
	b := newTestBoard(t)
	want := []types.BoardPos{{X: 4, Y: 2}, {X: 5, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 2}}
	for i, w := range want {
		b.SelectNextCandidate()
		if sel := b.SelectedTile(); *sel != w {
			t.Fatalf("step %d: expected %v, got %v", i, w, *sel)
		}
	}
}

func TestPanelText(t *testing.T) {
	if panelText(nil, engine.DefaultConfig()) != "" {
		t.Fatal("no state, no text")
	}

	state := types.NewBoardState(8)
	state.GameID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	state.Black, state.White = 4, 1
	state.MoveNumber = 2
	state.Moves = []string{"e3", "pass"}
	cfg := engine.DefaultConfig()
	cfg.PlayerColor = 2
	cfg.Level = "hard"

	text := panelText(state, cfg)
	for _, want := range []string{"0f8fad5b", "White", "hard", "● 4", "○[-] 1", "e3", "W[-] pass"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "earlier") {
		t.Fatal("two moves fit without scrolling")
	}

	for i := 0; i < 20; i++ {
		state.Moves = append(state.Moves, "a1")
	}
	if !strings.Contains(panelText(state, cfg), "10 earlier") {
		t.Fatal("expected the older moves to be folded")
	}
}
