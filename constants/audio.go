package constants

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume mirrors the site's initial sound setting
	DefaultVolume = 0.5

	// MinSoundGap suppresses repeated cues of the same sound within one frame burst
	MinSoundGap = 50 * time.Millisecond
)

// Click: short square tick for buttons and toggles
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 25 * time.Millisecond
)

// Hover: soft high sine
const (
	HoverSoundDuration = 30 * time.Millisecond
	HoverSoundAttack   = 5 * time.Millisecond
	HoverSoundRelease  = 20 * time.Millisecond
)

// Transition: noise sweep between sections
const (
	TransitionSoundDuration = 300 * time.Millisecond
	TransitionSoundAttack   = 150 * time.Millisecond
	TransitionSoundRelease  = 150 * time.Millisecond
)

// Start and achievement: two-note chimes
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 280 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)

// Backdrop cues, kept quiet under the page
const (
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 50 * time.Millisecond
	PaddleSoundGain     = 0.35

	ScoreSoundGain = 0.5
)

// Pipe backends receive interleaved stereo signed 16-bit little-endian frames
const (
	PipeBytesPerFrame = 4
	PipeLatency       = 50 * time.Millisecond
)
