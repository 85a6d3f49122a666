// Package pong runs the autonomous paddle-and-ball backdrop: two AI paddles, one ball and a short trail.
package pong

import (
	"log"
	"time"

	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/render"
	"github.com/lixenwraith/pixel-portfolio/surface"
	"github.com/lixenwraith/pixel-portfolio/theme"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// Options wires a Game to its host and collaborators
// Nil Rand, Time and Events fall back to a time-seeded source, the monotonic clock and no-op hooks
type Options struct {
	Host   surface.Host
	Canvas render.Canvas
	Theme  theme.Provider
	Rand   engine.RandSource
	Time   engine.TimeProvider
	Events Events
}

// Game is the animation loop
// It is not safe for concurrent use; hosts serialize calls between frames
type Game struct {
	state State

	surface  *surface.Surface
	renderer *render.Renderer
	theme    theme.Provider
	palette  theme.Palette

	rng    engine.RandSource
	time   engine.TimeProvider
	clock  *engine.PausableClock
	events Events

	lastTime  time.Time
	lastDelta time.Duration
	frames    uint64

	initialized bool
	destroyed   bool
}

// New builds an uninitialized game
func New(opts Options) *Game {
	g := &Game{
		state:    NewState(0, 0),
		renderer: render.NewRenderer(),
		theme:    opts.Theme,
		rng:      opts.Rand,
		time:     opts.Time,
		events:   opts.Events,
	}
	if g.theme == nil {
		g.theme = theme.Static(theme.Light())
	}
	if g.time == nil {
		g.time = engine.NewMonotonicTimeProvider()
	}
	if g.rng == nil {
		g.rng = engine.NewRand(uint64(g.time.Now().UnixNano()))
	}
	if g.events == nil {
		g.events = nopEvents{}
	}
	g.clock = engine.NewPausableClock(g.time)
	g.surface = surface.New(opts.Host, opts.Canvas, g.Resize)
	return g
}

// Initialize attaches the overlay, lays out entities, serves the ball and reads the theme
func (g *Game) Initialize() error {
	if g.initialized {
		return nil
	}
	if err := g.surface.Initialize(); err != nil {
		return err
	}
	w, h := g.surface.Size()
	g.state.Layout(w, h)
	g.state.ResetBall(g.rng)
	g.UpdateColors()
	g.lastTime = g.time.Now()
	g.initialized = true

	log.Printf("backdrop: initialized %dx%d", w, h)
	return nil
}

// Frame is one host frame: update, then draw
func (g *Game) Frame(ts time.Time) {
	g.Update(ts)
	g.Draw()
}

// Update advances the simulation unless paused
// The delta baseline moves every frame, paused or not
func (g *Game) Update(ts time.Time) {
	g.lastDelta = ts.Sub(g.lastTime)
	g.lastTime = ts
	g.frames++

	if g.state.Paused {
		return
	}
	dispatch(g.events, g.state.Step(g.rng))
}

// Draw renders the current state with the cached palette
// After Destroy it still draws into the detached canvas, which nothing presents
func (g *Game) Draw() {
	g.renderer.Draw(g.surface.Canvas(), g.state.Scene(), g.palette)
}

// Pause freezes entity state
func (g *Game) Pause() {
	if g.state.Paused {
		return
	}
	g.state.Paused = true
	g.clock.Pause()
}

// Resume continues the simulation and resynchronizes the delta baseline
func (g *Game) Resume() {
	if !g.state.Paused {
		return
	}
	g.state.Paused = false
	now, _ := g.clock.Resume()
	g.lastTime = now
}

// Paused reports the pause state
func (g *Game) Paused() bool {
	return g.state.Paused
}

// Resize re-reads the viewport and re-derives paddle geometry; safe to repeat
// After Destroy it is a no-op and entity state is left as it was
func (g *Game) Resize() {
	if g.destroyed {
		return
	}
	w, h := g.surface.Resize()
	g.state.Layout(w, h)
	log.Printf("backdrop: resized to %dx%d", w, h)
}

// UpdateColors re-reads the palette from the theme provider; entity state is untouched
func (g *Game) UpdateColors() {
	g.palette = g.theme.Palette()
}

// Destroy detaches the overlay and drops the resize subscription
// A frame already scheduled may still run and is harmless
func (g *Game) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	g.surface.Destroy()
	log.Printf("backdrop: destroyed after %d frames", g.frames)
}

// Destroyed reports whether Destroy ran
func (g *Game) Destroyed() bool {
	return g.destroyed
}

// Delta returns the time between the last two frames
func (g *Game) Delta() time.Duration {
	return g.lastDelta
}

// Palette returns the cached palette used for drawing
func (g *Game) Palette() theme.Palette {
	return g.palette
}

// Surface returns the overlay manager
func (g *Game) Surface() *surface.Surface {
	return g.surface
}

// Snapshot is a copy of the loop state for diagnostics
type Snapshot struct {
	Width, Height float64
	Left, Right   Paddle
	Ball          Ball
	Trail         []vmath.Vec2
	Paused        bool
	Frames        uint64
	Delta         time.Duration
	Elapsed       time.Duration
	PausedFor     time.Duration
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:     g.state.Width,
		Height:    g.state.Height,
		Left:      g.state.Left,
		Right:     g.state.Right,
		Ball:      g.state.Ball,
		Trail:     g.state.Trail.Points(),
		Paused:    g.state.Paused,
		Frames:    g.frames,
		Delta:     g.lastDelta,
		Elapsed:   g.clock.Elapsed(),
		PausedFor: g.clock.TotalPauseDuration(),
	}
}
