package surface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/render"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalViewport(t *testing.T) {
	host := NewTerminal(newSimScreen(t, 80, 24))
	w, h := host.Viewport()
	if w != 80*constants.CellWidthPx || h != 24*constants.CellHeightPx {
		t.Errorf("viewport = %dx%d", w, h)
	}
}

func TestTerminalResizeEvent(t *testing.T) {
	screen := newSimScreen(t, 40, 10)
	host := NewTerminal(screen)

	var gotW, gotH int
	remove := host.OnResize(func(w, h int) { gotW, gotH = w, h })

	if host.HandleEvent(tcell.NewEventInterrupt(nil)) {
		t.Error("interrupt event treated as resize")
	}

	screen.SetSize(20, 5)
	if !host.HandleEvent(tcell.NewEventResize(20, 5)) {
		t.Fatal("resize event not handled")
	}
	if gotW != 20*constants.CellWidthPx || gotH != 5*constants.CellHeightPx {
		t.Errorf("listener saw %dx%d", gotW, gotH)
	}

	remove()
	gotW = 0
	host.HandleEvent(tcell.NewEventResize(20, 5))
	if gotW != 0 {
		t.Error("listener called after removal")
	}
}

func TestTerminalPresentsRasterLayer(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	host := NewTerminal(screen)
	host.SetBackdrop(color.NRGBA{R: 10, G: 20, B: 30})

	dotW, dotH := DotSize()
	raster := render.NewScaledRaster(4*constants.CellWidthPx, 2*constants.CellHeightPx, dotW, dotH)
	defer raster.Close()

	s := New(host, raster, nil)
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}
	raster.Clear()
	host.Present()

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != '▀' {
		t.Fatalf("cell rune %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("empty dot shows %v, want backdrop", fg)
	}

	s.Destroy()
	host.Present() // nothing attached, must not panic
}
