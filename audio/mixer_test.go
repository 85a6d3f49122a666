package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"
)

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) hasSignal() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.buf.Bytes() {
		if c != 0 {
			return true
		}
	}
	return false
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestFloatToBytes(t *testing.T) {
	in := [][2]float64{{0, 0}, {0.5, -0.5}, {100, -100}}
	out := make([]byte, len(in)*4)
	floatToBytes(in, out)

	sample := func(frame, ch int) int16 {
		return int16(binary.LittleEndian.Uint16(out[frame*4+ch*2:]))
	}
	full := 32767.0

	if sample(0, 0) != 0 || sample(0, 1) != 0 {
		t.Error("silence not zero")
	}
	if got := sample(1, 0); got != int16(0.5*full) {
		t.Errorf("linear region = %d", got)
	}
	if sample(1, 1) != -sample(1, 0) {
		t.Error("channels not symmetric")
	}
	if l := sample(2, 0); l <= int16(0.8*full) || l > 32767 {
		t.Errorf("limited sample = %d", l)
	}
	if r := sample(2, 1); r >= 0 {
		t.Errorf("negative overdrive = %d", r)
	}
}

func TestPipeOutputWritesMixedAudio(t *testing.T) {
	var buf safeBuffer
	closed := false
	p := newPipeOutput(&buf, testRate, func() { closed = true })
	p.Start()

	p.Play(CreateClickSound(testRate, 1))

	deadline := time.Now().Add(2 * time.Second)
	for !buf.hasSignal() {
		if time.Now().After(deadline) {
			t.Fatal("no audio reached the pipe")
		}
		time.Sleep(10 * time.Millisecond)
	}

	p.Close()
	p.Close()
	if !closed {
		t.Error("backend not released")
	}
	if p.Frames() == 0 {
		t.Error("frame counter not advanced")
	}

	p.Play(CreateClickSound(testRate, 1))
}

func TestPipeOutputReportsWriteError(t *testing.T) {
	p := newPipeOutput(failingWriter{}, testRate, nil)
	p.Start()
	defer p.Close()

	select {
	case err := <-p.Errors():
		if !errors.Is(err, ErrPipeClosed) {
			t.Errorf("err = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("write error not reported")
	}

	for i := 0; i < 1000; i++ {
		p.Play(CreateClickSound(testRate, 1))
	}
	if n := p.pending(); n != 0 {
		t.Errorf("failed output retained %d streamers", n)
	}
}
