// Command portfolio serves the backdrop and page preferences over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/pixel-portfolio/audio"
	"github.com/lixenwraith/pixel-portfolio/config"
	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/prefs"
	"github.com/lixenwraith/pixel-portfolio/server"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("portfolio", os.Args[1:])
	if err != nil {
		return err
	}

	logDir = cfg.LogDir
	logFile, logger := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := prefs.OpenSQLite(cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer db.Close()
	p := prefs.New(db)

	sw := theme.NewSwitch(p.Theme(ctx, cfg.ThemeMode()))
	sound := audio.NewSoundManager(p.Sound(ctx, audio.Settings{Enabled: cfg.Sound.Enabled, Volume: cfg.Sound.Volume}))
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	defer p.Bind(context.Background(), sw, sound)()

	var rng engine.RandSource
	if cfg.Seed != 0 {
		rng = engine.NewRand(cfg.Seed)
	}
	b, err := server.NewBackdrop(server.BackdropOptions{
		Width:  cfg.Viewport.Width,
		Height: cfg.Viewport.Height,
		Theme:  sw,
		Sound:  sound,
		Rand:   rng,
	})
	if err != nil {
		return err
	}
	defer b.Close()

	go func() {
		if err := b.Scheduler.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("scheduler stopped: %v", err)
		}
	}()

	return server.New(b, logger).Run(ctx, cfg.HTTP.Addr)
}
