package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pixel-portfolio/constants"
)

// output receives finished streamers for playback
type output interface {
	Play(s beep.Streamer)
	Close()
}

// speakerOutput feeds the beep speaker through a shared mixer
type speakerOutput struct {
	mixer *beep.Mixer
}

func newSpeakerOutput(rate beep.SampleRate) (*speakerOutput, error) {
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return nil, err
	}
	o := &speakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(o.mixer)
	return o, nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending sounds and releases the device
func (o *speakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// pipeOutput mixes streamers into a writer as interleaved stereo s16le
// Used for CLI backends when the speaker cannot open a device
type pipeOutput struct {
	out  io.Writer
	rate beep.SampleRate

	mu     sync.Mutex
	mixer  beep.Mixer
	failed bool

	stopChan chan struct{}
	done     chan struct{}
	stopped  atomic.Bool
	errChan  chan error

	onClose func()

	written atomic.Uint64
}

func newPipeOutput(out io.Writer, rate beep.SampleRate, onClose func()) *pipeOutput {
	return &pipeOutput{
		out:      out,
		rate:     rate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
		errChan:  make(chan error, 1),
		onClose:  onClose,
	}
}

// Start begins the mixing loop
func (p *pipeOutput) Start() {
	go p.loop()
}

// Play drops s once the output is closed or the writer has failed
func (p *pipeOutput) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failed || p.stopped.Load() {
		return
	}
	p.mixer.Add(s)
}

// pending returns the number of streamers still mixing
func (p *pipeOutput) pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// fail stops accepting streamers and drops the queued ones
func (p *pipeOutput) fail() {
	p.mu.Lock()
	p.failed = true
	p.mixer.Clear()
	p.mu.Unlock()
}

// Close stops the loop and releases the backend
func (p *pipeOutput) Close() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	close(p.stopChan)
	<-p.done
	if p.onClose != nil {
		p.onClose()
	}
}

// Errors returns channel for pipe errors
func (p *pipeOutput) Errors() <-chan error {
	return p.errChan
}

// Frames returns the number of stereo frames written
func (p *pipeOutput) Frames() uint64 {
	return p.written.Load()
}

func (p *pipeOutput) loop() {
	defer close(p.done)

	ticker := time.NewTicker(constants.AudioBufferDuration)
	defer ticker.Stop()

	frames := p.rate.N(constants.AudioBufferDuration)
	mixBuf := make([][2]float64, frames)
	outBytes := make([]byte, frames*constants.PipeBytesPerFrame)

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			clear(mixBuf)
			p.mu.Lock()
			p.mixer.Stream(mixBuf)
			p.mu.Unlock()

			floatToBytes(mixBuf, outBytes)

			// Silence is written too, keeping the backend's stream alive
			if _, err := p.out.Write(outBytes); err != nil {
				p.fail()
				select {
				case p.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
			p.written.Add(uint64(frames))
		}
	}
}

// floatToBytes converts stereo frames to interleaved int16 LE bytes
// Applies soft limiting before hard clip
func floatToBytes(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			if v > 0.8 {
				v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
			} else if v < -0.8 {
				v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
			}

			if v > 1.0 {
				v = 1.0
			} else if v < -1.0 {
				v = -1.0
			}

			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(int16(v*32767)))
		}
	}
}
