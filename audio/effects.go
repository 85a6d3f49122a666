package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pixel-portfolio/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tones in Hz
const (
	toneClick      = 1000.0
	toneHover      = 1760.0
	tonePaddleLow  = 440.0
	tonePaddleHigh = 523.25
	toneC5         = 523.25
	toneG5         = 783.99
	toneA5         = 880.0
	toneE6         = 1318.51
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped oscillator note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateClickSound generates a short square tick for buttons
func CreateClickSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(toneClick, WaveSquare, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)
	return newVolume(s, vol*0.5)
}

// CreateHoverSound generates a faint high blip
func CreateHoverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(toneHover, WaveSine, constants.HoverSoundDuration, constants.HoverSoundAttack, constants.HoverSoundRelease, rate)
	return newVolume(s, vol*0.3)
}

// CreateTransitionSound generates a noise whoosh between sections
func CreateTransitionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(0, WaveNoise, constants.TransitionSoundDuration, constants.TransitionSoundAttack, constants.TransitionSoundRelease, rate)
	return newVolume(s, vol*0.4)
}

// createChime plays two notes in sequence
func createChime(first, second float64, wave WaveType, rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := tone(first, wave, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)
	n2 := tone(second, wave, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)
	return newVolume(beep.Seq(n1, n2), vol)
}

// CreateStartSound rises a fifth
func CreateStartSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return createChime(toneC5, toneG5, WaveSquare, rate, vol*0.5)
}

// CreateAchievementSound is the bright coin chime with an octave overtone on the second note
func CreateAchievementSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := createChime(toneA5, toneE6, WaveSine, rate, 0.7)
	over := createChime(toneA5*2, toneE6*2, WaveSine, rate, 0.3)
	return newVolume(beep.Mix(fund, over), vol)
}

// CreatePaddleSound is a short sine blip; left and right paddles differ in pitch
// Returns nil when freq is at or above Nyquist
func CreatePaddleSound(freq float64, rate beep.SampleRate, vol float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	d := constants.PaddleSoundDuration
	s := NewEnvelope(beep.Take(rate.N(d), sine), d, constants.PaddleSoundAttack, constants.PaddleSoundRelease, rate)
	return newVolume(s, vol*constants.PaddleSoundGain)
}

// CreateScoreSound falls a fifth
func CreateScoreSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return createChime(toneG5, toneC5, WaveSine, rate, vol*constants.ScoreSoundGain)
}

// GetSoundEffect returns the streamer for a sound at the given volume, or nil for unknown names
func GetSoundEffect(sound Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case SoundClick:
		return CreateClickSound(rate, vol)
	case SoundHover:
		return CreateHoverSound(rate, vol)
	case SoundStart:
		return CreateStartSound(rate, vol)
	case SoundAchievement:
		return CreateAchievementSound(rate, vol)
	case SoundTransition:
		return CreateTransitionSound(rate, vol)
	case SoundPaddle:
		return CreatePaddleSound(tonePaddleLow, rate, vol)
	case SoundScore:
		return CreateScoreSound(rate, vol)
	default:
		return nil
	}
}
