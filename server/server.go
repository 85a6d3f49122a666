// Package server exposes the backdrop and the page preferences over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/pixel-portfolio/audio"
	"github.com/lixenwraith/pixel-portfolio/pong"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

// Server routes HTTP requests to a Backdrop
type Server struct {
	b      *Backdrop
	logger *slog.Logger
	router *gin.Engine
}

// New builds the router
func New(b *Backdrop, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{b: b, logger: logger, router: gin.New()}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)

	api := s.router.Group("/api")

	bd := api.Group("/backdrop")
	bd.GET("/frame.png", s.frame)
	bd.GET("/state", s.state)
	bd.POST("/pause", s.pause)
	bd.POST("/resume", s.resume)
	bd.POST("/resize", s.resize)

	pref := api.Group("/preferences")
	pref.GET("", s.preferences)
	pref.POST("/theme/toggle", s.toggleTheme)
	pref.POST("/sound/toggle", s.toggleSound)

	api.POST("/sounds/:name", s.playSound)
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

type paddleState struct {
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Score  int     `json:"score"`
}

type ballState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// StateResponse is the JSON form of a game snapshot
type StateResponse struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Left    paddleState `json:"left"`
	Right   paddleState `json:"right"`
	Ball    ballState   `json:"ball"`
	Trail   int         `json:"trail"`
	Paused  bool        `json:"paused"`
	Frames  uint64      `json:"frames"`
	Theme   theme.Mode  `json:"theme"`
	Elapsed string      `json:"elapsed"`
}

func newStateResponse(snap pong.Snapshot, mode theme.Mode) StateResponse {
	paddle := func(p pong.Paddle) paddleState {
		return paddleState{Y: p.Y, Height: p.Height, Score: p.Score}
	}
	return StateResponse{
		Width:   snap.Width,
		Height:  snap.Height,
		Left:    paddle(snap.Left),
		Right:   paddle(snap.Right),
		Ball:    ballState{X: snap.Ball.X, Y: snap.Ball.Y, DX: snap.Ball.DX, DY: snap.Ball.DY},
		Trail:   len(snap.Trail),
		Paused:  snap.Paused,
		Frames:  snap.Frames,
		Theme:   mode,
		Elapsed: snap.Elapsed.String(),
	}
}

func (s *Server) snapshot() StateResponse {
	var snap pong.Snapshot
	s.b.Scheduler.Do(func() { snap = s.b.Game.Snapshot() })
	return newStateResponse(snap, s.b.Theme.Mode())
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"frames": s.b.Scheduler.Frames(),
	})
}

func (s *Server) frame(c *gin.Context) {
	var buf bytes.Buffer
	var err error
	s.b.Scheduler.Do(func() { err = s.b.Raster.EncodePNG(&buf) })
	if err != nil {
		s.logger.Error("encode frame", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode frame"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) state(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) pause(c *gin.Context) {
	s.b.Scheduler.Do(s.b.Game.Pause)
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) resume(c *gin.Context) {
	s.b.Scheduler.Do(s.b.Game.Resume)
	c.JSON(http.StatusOK, s.snapshot())
}

type resizeRequest struct {
	Width  int `json:"width" binding:"required,gt=0"`
	Height int `json:"height" binding:"required,gt=0"`
}

// resize changes the headless viewport; the host's resize event drives the game
func (s *Server) resize(c *gin.Context) {
	var req resizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.b.Scheduler.Do(func() { s.b.Host.SetViewport(req.Width, req.Height) })
	c.JSON(http.StatusOK, s.snapshot())
}

type preferencesResponse struct {
	Theme theme.Mode     `json:"theme"`
	Sound audio.Settings `json:"sound"`
}

func (s *Server) currentPreferences() preferencesResponse {
	resp := preferencesResponse{Theme: s.b.Theme.Mode(), Sound: audio.Settings{}}
	if s.b.Sound != nil {
		resp.Sound = s.b.Sound.Settings()
	}
	return resp
}

func (s *Server) preferences(c *gin.Context) {
	c.JSON(http.StatusOK, s.currentPreferences())
}

func (s *Server) toggleTheme(c *gin.Context) {
	mode := s.b.Theme.Toggle()
	s.logger.Info("theme toggled", "mode", mode)
	c.JSON(http.StatusOK, s.currentPreferences())
}

func (s *Server) toggleSound(c *gin.Context) {
	if s.b.Sound == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sound is not configured"})
		return
	}
	enabled := s.b.Sound.Toggle()
	s.logger.Info("sound toggled", "enabled", enabled)
	c.JSON(http.StatusOK, s.currentPreferences())
}

func (s *Server) playSound(c *gin.Context) {
	snd, err := audio.ParseSound(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	played := false
	if s.b.Sound != nil {
		played = s.b.Sound.Play(snd)
	}
	c.JSON(http.StatusOK, gin.H{"sound": snd, "played": played})
}
