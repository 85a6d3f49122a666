package audio

import (
	"errors"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/vmath"
)

// Sound names a synthesized effect
type Sound string

const (
	SoundClick       Sound = "click"
	SoundHover       Sound = "hover"
	SoundStart       Sound = "start"
	SoundAchievement Sound = "achievement"
	SoundTransition  Sound = "transition"
	SoundPaddle      Sound = "paddle"
	SoundScore       Sound = "score"
)

// Sounds lists every playable effect
var Sounds = []Sound{
	SoundClick, SoundHover, SoundStart, SoundAchievement, SoundTransition, SoundPaddle, SoundScore,
}

// ParseSound validates a sound name
func ParseSound(s string) (Sound, error) {
	for _, snd := range Sounds {
		if string(snd) == s {
			return snd, nil
		}
	}
	return "", ErrUnknownSound
}

// Settings is the persisted sound preference
type Settings struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
}

// DefaultSettings returns sound on at half volume
func DefaultSettings() Settings {
	return Settings{Enabled: true, Volume: constants.DefaultVolume}
}

// Normalize clamps Volume into [0, 1]
func (s Settings) Normalize() Settings {
	s.Volume = vmath.Clamp(s.Volume, 0, 1)
	return s
}

// BackendType identifies the audio backend
type BackendType int

const (
	BackendSpeaker BackendType = iota
	BackendPulse
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
	BackendNone
)

func (b BackendType) String() string {
	switch b {
	case BackendSpeaker:
		return "speaker"
	case BackendPulse:
		return "pulse"
	case BackendPipeWire:
		return "pipewire"
	case BackendALSA:
		return "alsa"
	case BackendSoX:
		return "sox"
	case BackendFFplay:
		return "ffplay"
	case BackendOSS:
		return "oss"
	}
	return "none"
}

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrUnknownSound   = errors.New("unknown sound")
)
