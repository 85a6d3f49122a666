package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/pixel-portfolio/constants"
)

var testRate = beep.SampleRate(constants.AudioSampleRate)

// drain streams s to the end and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		k, ok := s.Stream(buf)
		n += k
		for _, f := range buf[:k] {
			peak = math.Max(peak, math.Max(math.Abs(f[0]), math.Abs(f[1])))
		}
		if !ok {
			return n, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, constants.ClickSoundDuration, wave, testRate))
		if want := testRate.N(constants.ClickSoundDuration); n != want {
			t.Errorf("wave %d: %d samples, want %d", wave, n, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("wave %d: peak %v", wave, peak)
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack starts at %v, want 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain at %v, want 1", mid)
	}
	if buf[n-1][0] >= buf[n-100][0] {
		t.Errorf("release not decaying: %v then %v", buf[n-100][0], buf[n-1][0])
	}
}

func TestSoundEffectsPlayable(t *testing.T) {
	for _, snd := range Sounds {
		s := GetSoundEffect(snd, testRate, 1)
		if s == nil {
			t.Fatalf("%s: nil streamer", snd)
		}
		n, peak := drain(t, s)
		if n == 0 || peak == 0 {
			t.Errorf("%s: %d samples, peak %v", snd, n, peak)
		}
	}
}

func TestSoundEffectZeroVolumeSilent(t *testing.T) {
	_, peak := drain(t, GetSoundEffect(SoundStart, testRate, 0))
	if peak != 0 {
		t.Errorf("peak at zero volume = %v", peak)
	}
}

func TestSoundEffectUnknown(t *testing.T) {
	if GetSoundEffect("boing", testRate, 1) != nil {
		t.Error("unknown sound produced a streamer")
	}
	if _, err := ParseSound("boing"); err == nil {
		t.Error("ParseSound accepted unknown name")
	}
	if s, err := ParseSound("achievement"); err != nil || s != SoundAchievement {
		t.Errorf("ParseSound = %v, %v", s, err)
	}
}

func TestChimeLength(t *testing.T) {
	n, _ := drain(t, CreateScoreSound(testRate, 1))
	want := testRate.N(constants.ChimeNote1Duration) + testRate.N(constants.ChimeNote2Duration)
	if n != want {
		t.Errorf("chime %d samples, want %d", n, want)
	}
}

func TestPaddleSoundLength(t *testing.T) {
	n, peak := drain(t, CreatePaddleSound(tonePaddleHigh, testRate, 1))
	if want := testRate.N(constants.PaddleSoundDuration); n != want {
		t.Errorf("blip %d samples, want %d", n, want)
	}
	if peak == 0 || peak > constants.PaddleSoundGain+1e-9 {
		t.Errorf("blip peak %v", peak)
	}
	if CreatePaddleSound(float64(testRate), testRate, 1) != nil {
		t.Error("tone above Nyquist produced a streamer")
	}
}
