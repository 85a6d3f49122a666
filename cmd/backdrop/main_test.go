package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixel-portfolio/config"
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")

	cfg := config.Default()
	cfg.PrefsPath = ":memory:"
	cfg.Sound.Enabled = false
	cfg.Seed = 42

	a, err := newAppWithScreen(cfg, screen)
	if err != nil {
		t.Fatalf("newAppWithScreen: %v", err)
	}
	t.Cleanup(a.cleanup)
	return a, screen
}

func TestAppCommands(t *testing.T) {
	a, _ := newTestApp(t)

	if !a.command(' ') || !a.game.Paused() {
		t.Fatal("space did not pause")
	}
	a.command('p')
	if a.game.Paused() {
		t.Error("p did not resume")
	}

	a.command('t')
	if a.theme.Mode() != theme.ModeDark {
		t.Errorf("theme = %v", a.theme.Mode())
	}

	if a.command('q') {
		t.Error("q did not quit")
	}
	if !a.command('x') {
		t.Error("unbound key quit")
	}
}

func TestAppThemeSettles(t *testing.T) {
	a, _ := newTestApp(t)
	a.command('t')

	select {
	case <-a.themeChanged:
	case <-time.After(time.Second):
		t.Fatal("no theme change signal")
	}
	a.game.UpdateColors()
	if a.game.Palette() != theme.Dark() {
		t.Error("palette not dark")
	}
}

func TestAppResizeAndFrame(t *testing.T) {
	a, screen := newTestApp(t)

	screen.SetSize(40, 12)
	if !a.handleInput(tcell.NewEventResize(40, 12)) {
		t.Fatal("resize ended the loop")
	}
	snap := a.game.Snapshot()
	if snap.Width != 40*constants.CellWidthPx || snap.Height != 12*constants.CellHeightPx {
		t.Errorf("surface %vx%v", snap.Width, snap.Height)
	}

	a.scheduler.Tick()
	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != '▀' {
		t.Errorf("cell (0,0) = %q, want half block", mainc)
	}
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	if !a.handleInput(tcell.NewEventInterrupt(nil)) {
		t.Error("interrupt ended the loop")
	}
}
