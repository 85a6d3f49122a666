package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/engine"
	"github.com/lixenwraith/pixel-portfolio/pong"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// SoundManager plays interface and backdrop cues and owns the sound setting
// Every method is safe without an audio device; plays are dropped until Initialize succeeds
type SoundManager struct {
	mu       sync.Mutex
	settings Settings

	rate    beep.SampleRate
	out     output
	backend BackendType

	time       engine.TimeProvider
	lastPlayed map[Sound]time.Time
	played     uint64

	listeners map[int]func(Settings)
	nextID    int
}

// NewSoundManager creates a manager with previously loaded settings
func NewSoundManager(settings Settings) *SoundManager {
	return &SoundManager{
		settings:   settings.Normalize(),
		rate:       beep.SampleRate(constants.AudioSampleRate),
		backend:    BackendNone,
		time:       engine.NewMonotonicTimeProvider(),
		lastPlayed: make(map[Sound]time.Time),
		listeners:  make(map[int]func(Settings)),
	}
}

// Initialize opens the speaker, falling back to a CLI pipe backend
// On error the manager stays usable and silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.out != nil {
		return nil
	}

	spk, err := newSpeakerOutput(sm.rate)
	if err == nil {
		sm.out, sm.backend = spk, BackendSpeaker
		log.Printf("audio: speaker at %d Hz", sm.rate)
		return nil
	}
	log.Printf("audio: speaker unavailable: %v", err)

	pipe, backend, perr := startPipeBackend(sm.rate)
	if perr != nil {
		return fmt.Errorf("audio disabled: %w", perr)
	}
	sm.out, sm.backend = pipe, backend
	go sm.watchPipe(pipe)
	log.Printf("audio: piping to %s", backend)
	return nil
}

// startPipeBackend launches the first detected CLI player and a mixer feeding it
func startPipeBackend(rate beep.SampleRate) (*pipeOutput, BackendType, error) {
	cfg, err := DetectBackend(int(rate))
	if err != nil {
		return nil, BackendNone, err
	}

	if cfg.Type == BackendOSS {
		f, err := os.OpenFile(cfg.Path, os.O_WRONLY, 0)
		if err != nil {
			return nil, BackendNone, fmt.Errorf("open %s: %w", cfg.Path, err)
		}
		p := newPipeOutput(f, rate, func() { f.Close() })
		p.Start()
		return p, cfg.Type, nil
	}

	cmd := exec.Command(cfg.Path, cfg.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, BackendNone, fmt.Errorf("%s stdin: %w", cfg.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, BackendNone, fmt.Errorf("start %s: %w", cfg.Name, err)
	}

	p := newPipeOutput(stdin, rate, func() { stopProcess(cmd, stdin) })
	p.Start()
	return p, cfg.Type, nil
}

func stopProcess(cmd *exec.Cmd, stdin io.Closer) {
	stdin.Close()
	if cmd.Process != nil {
		cmd.Process.Kill()
	}
	cmd.Wait()
}

// watchPipe drops a pipe backend after its first write failure so later plays report false
// The player process is released; sound stays silent until Initialize runs again
func (sm *SoundManager) watchPipe(p *pipeOutput) {
	var err error
	select {
	case err = <-p.Errors():
	case <-p.done:
		// A failed loop queues its error before closing done
		select {
		case err = <-p.Errors():
		default:
			return
		}
	}
	log.Printf("audio: %v (continuing without audio)", err)

	sm.mu.Lock()
	if sm.out == p {
		sm.out, sm.backend = nil, BackendNone
	}
	sm.mu.Unlock()

	p.Close()
}

// Cleanup stops all sounds and releases the backend
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	out := sm.out
	sm.out, sm.backend = nil, BackendNone
	sm.mu.Unlock()

	if out != nil {
		out.Close()
	}
}

// Backend reports the active output
func (sm *SoundManager) Backend() BackendType {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.backend
}

// Settings returns the current setting
func (sm *SoundManager) Settings() Settings {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.settings
}

// Enabled reports whether sounds play
func (sm *SoundManager) Enabled() bool {
	return sm.Settings().Enabled
}

// Toggle flips sound on or off and returns the new state
// Turning sound on confirms with a click
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	sm.settings.Enabled = !sm.settings.Enabled
	s := sm.settings
	fns := sm.listenersLocked()
	sm.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
	if s.Enabled {
		sm.Play(SoundClick)
	}
	return s.Enabled
}

// SetVolume clamps v to [0, 1] and applies it to later plays
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.settings.Volume = vmath.Clamp(v, 0, 1)
	s := sm.settings
	fns := sm.listenersLocked()
	sm.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// OnChange subscribes fn to setting changes and returns the unsubscribe func
func (sm *SoundManager) OnChange(fn func(Settings)) (remove func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	id := sm.nextID
	sm.nextID++
	sm.listeners[id] = fn
	return func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		delete(sm.listeners, id)
	}
}

func (sm *SoundManager) listenersLocked() []func(Settings) {
	fns := make([]func(Settings), 0, len(sm.listeners))
	for i := 0; i < sm.nextID; i++ {
		if fn, ok := sm.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Play starts a named sound; returns false when disabled, silent, throttled or unknown
func (sm *SoundManager) Play(sound Sound) bool {
	return sm.play(sound, func(vol float64) beep.Streamer {
		return GetSoundEffect(sound, sm.rate, vol)
	})
}

func (sm *SoundManager) play(sound Sound, build func(vol float64) beep.Streamer) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.settings.Enabled || sm.out == nil {
		return false
	}

	now := sm.time.Now()
	if last, ok := sm.lastPlayed[sound]; ok && now.Sub(last) < constants.MinSoundGap {
		return false
	}

	s := build(sm.settings.Volume)
	if s == nil {
		return false
	}
	sm.out.Play(s)
	sm.lastPlayed[sound] = now
	sm.played++
	return true
}

// Played returns the number of sounds started
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PaddleHit plays a blip, higher for the right paddle
func (sm *SoundManager) PaddleHit(side pong.Side) {
	freq := tonePaddleLow
	if side == pong.SideRight {
		freq = tonePaddleHigh
	}
	sm.play(SoundPaddle, func(vol float64) beep.Streamer {
		return CreatePaddleSound(freq, sm.rate, vol)
	})
}

// WallBounce is silent; walls are hit too often for a cue
func (sm *SoundManager) WallBounce() {}

// Scored plays the falling chime
func (sm *SoundManager) Scored(pong.Side) {
	sm.Play(SoundScore)
}

var _ pong.Events = (*SoundManager)(nil)
