package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"termreversi/config"
	"termreversi/engine"
)

func TestSetupConfig(t *testing.T) {
	defaults := config.DefaultConfig.Game
	defaults.Seed = 7
	defaults.ManualPass = true
	got := SetupConfig(defaults, 2)
	want := engine.GameConfig{BoardSize: 8, PlayerColor: 2, Level: "normal", Seed: 7, ManualPass: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestGameSetupInputCapture(t *testing.T) {
	setup := NewGameSetup(engine.DefaultConfig(), func(engine.GameConfig) {}, func() {}, nil)
	if setup.form.GetInputCapture() != nil {
		t.Fatal("no capture before one is set")
	}

	stopped := false
	setup.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			stopped = true
			return nil
		}
		return event
	})
	capture := setup.form.GetInputCapture()
	if capture == nil {
		t.Fatal("expected the capture on the form")
	}
	if capture(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone)) != nil || !stopped {
		t.Fatal("Esc should be consumed by the capture")
	}
	tab := tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	if capture(tab) != tab {
		t.Fatal("other keys should pass through")
	}
}
