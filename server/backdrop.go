package server

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pixel-portfolio/audio"
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/pong"
	"github.com/lixenwraith/pixel-portfolio/render"
	"github.com/lixenwraith/pixel-portfolio/surface"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

// BackdropOptions configures a headless backdrop
// Nil Sound plays nothing; nil Rand and Time use the game defaults
type BackdropOptions struct {
	Width, Height int
	Theme         *theme.Switch
	Sound         *audio.SoundManager
	Rand          engine.RandSource
	Time          engine.TimeProvider
}

// Backdrop is a game running on a headless host with a full-resolution raster
// All game access goes through Scheduler so it interleaves with frames
type Backdrop struct {
	Game      *pong.Game
	Host      *surface.Headless
	Raster    *render.Raster
	Scheduler *engine.FrameScheduler
	Theme     *theme.Switch
	Sound     *audio.SoundManager

	unregister  func()
	removeTheme func()
}

// NewBackdrop initializes the game and registers it with a fresh scheduler
func NewBackdrop(opts BackdropOptions) (*Backdrop, error) {
	if opts.Theme == nil {
		opts.Theme = theme.NewSwitch(theme.ModeLight)
	}

	b := &Backdrop{
		Host:   surface.NewHeadless(opts.Width, opts.Height),
		Raster: render.NewRaster(opts.Width, opts.Height),
		Theme:  opts.Theme,
		Sound:  opts.Sound,
	}

	var events pong.Events
	if opts.Sound != nil {
		events = opts.Sound
	}
	b.Game = pong.New(pong.Options{
		Host:   b.Host,
		Canvas: b.Raster,
		Theme:  opts.Theme,
		Rand:   opts.Rand,
		Time:   opts.Time,
		Events: events,
	})
	if err := b.Game.Initialize(); err != nil {
		b.Raster.Close()
		return nil, fmt.Errorf("initialize backdrop: %w", err)
	}

	b.Scheduler = engine.NewFrameScheduler(opts.Time, constants.FrameInterval)
	b.unregister = b.Scheduler.Register(b.Game)

	// The page repaints its own colors first; the backdrop follows after a settle delay
	b.removeTheme = opts.Theme.OnChange(func(theme.Mode) {
		time.AfterFunc(constants.ThemeSettleDelay, func() {
			b.Scheduler.Do(b.Game.UpdateColors)
		})
	})
	return b, nil
}

// Close stops frames, destroys the game and releases the raster
func (b *Backdrop) Close() {
	b.removeTheme()
	b.unregister()
	b.Scheduler.Do(b.Game.Destroy)
	b.Raster.Close()
}
