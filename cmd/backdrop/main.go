// Command backdrop runs the paddle-and-ball background in a terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixel-portfolio/audio"
	"github.com/lixenwraith/pixel-portfolio/config"
	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/pong"
	"github.com/lixenwraith/pixel-portfolio/prefs"
	"github.com/lixenwraith/pixel-portfolio/render"
	"github.com/lixenwraith/pixel-portfolio/surface"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

// app owns everything driven by the terminal loop; only run's goroutine touches it
type app struct {
	screen    tcell.Screen
	host      *surface.Terminal
	raster    *render.Raster
	game      *pong.Game
	scheduler *engine.FrameScheduler

	theme *theme.Switch
	sound *audio.SoundManager
	store prefs.Store

	themeChanged chan struct{}
	cleanups     []func()
}

func newApp(cfg config.Config) (*app, error) {
	applyColorMode(cfg.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newAppWithScreen(cfg, screen)
}

func newAppWithScreen(cfg config.Config, screen tcell.Screen) (*app, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{
		screen:       screen,
		themeChanged: make(chan struct{}, 1),
	}
	a.cleanups = append(a.cleanups, screen.Fini)

	ctx := context.Background()
	a.store = openStore(cfg.PrefsPath)
	a.cleanups = append(a.cleanups, func() { a.store.Close() })
	p := prefs.New(a.store)

	a.theme = theme.NewSwitch(p.Theme(ctx, cfg.ThemeMode()))
	a.sound = audio.NewSoundManager(p.Sound(ctx, audio.Settings{Enabled: cfg.Sound.Enabled, Volume: cfg.Sound.Volume}))
	if a.sound.Enabled() {
		a.initAudio()
	}
	a.cleanups = append(a.cleanups, a.sound.Cleanup, p.Bind(ctx, a.theme, a.sound))

	a.host = surface.NewTerminal(screen)
	a.host.SetBackdrop(a.theme.Palette().Background)

	w, h := a.host.Viewport()
	dotW, dotH := surface.DotSize()
	a.raster = render.NewScaledRaster(w, h, dotW, dotH)
	a.cleanups = append(a.cleanups, func() { a.raster.Close() })

	var rng engine.RandSource
	if cfg.Seed != 0 {
		rng = engine.NewRand(cfg.Seed)
	}
	a.game = pong.New(pong.Options{
		Host:   a.host,
		Canvas: a.raster,
		Theme:  a.theme,
		Rand:   rng,
		Events: a.sound,
	})
	if err := a.game.Initialize(); err != nil {
		a.cleanup()
		return nil, err
	}

	a.scheduler = engine.NewFrameScheduler(nil, constants.FrameInterval)
	a.scheduler.Register(engine.FrameFunc(func(ts time.Time) {
		a.game.Frame(ts)
		a.host.Present()
	}))

	// Colors follow the theme after the page has settled
	a.cleanups = append(a.cleanups, a.theme.OnChange(func(theme.Mode) {
		time.AfterFunc(constants.ThemeSettleDelay, func() {
			select {
			case a.themeChanged <- struct{}{}:
			default:
			}
		})
	}))

	return a, nil
}

// openStore falls back to memory when the database cannot be opened
func openStore(path string) prefs.Store {
	db, err := prefs.OpenSQLite(path)
	if err != nil {
		log.Printf("prefs: %v (preferences will not persist)", err)
		return prefs.NewMemory()
	}
	return db
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}
}

// initAudio opens the device on first need
func (a *app) initAudio() {
	if a.sound.Backend() != audio.BackendNone {
		return
	}
	if err := a.sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
}

// handleInput applies one event and reports whether the loop should continue
func (a *app) handleInput(ev tcell.Event) bool {
	if a.host.HandleEvent(ev) {
		return true
	}

	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return a.command(key.Rune())
	}
	return true
}

// command runs a single-key command; false means quit
func (a *app) command(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ', 'p':
		if a.game.Paused() {
			a.game.Resume()
		} else {
			a.game.Pause()
		}
		a.sound.Play(audio.SoundClick)
	case 't':
		a.theme.Toggle()
		a.sound.Play(audio.SoundTransition)
	case 's':
		if a.sound.Toggle() {
			a.initAudio()
		}
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(a.scheduler.Interval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.sound.Play(audio.SoundStart)

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-a.themeChanged:
			a.game.UpdateColors()
			a.host.SetBackdrop(a.theme.Palette().Background)

		case <-ticker.C:
			a.scheduler.Tick()
		}
	}
}

// cleanup destroys the game, then releases resources in reverse order
func (a *app) cleanup() {
	if a.game != nil {
		a.game.Destroy()
	}
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

func main() {
	var a *app

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			if a != nil {
				a.screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBACKDROP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Load("backdrop", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "backdrop: %v\n", err)
		os.Exit(2)
	}

	logDir = cfg.LogDir
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	a, err = newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
