// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Player plays WAV files through the default output device. It is safe for
// concurrent use; only one playback may be in flight at a time.
type Player struct {
	mu      sync.Mutex
	playing bool

	initOnce sync.Once
	initErr  error
}

// New returns an idle Player. The output device is opened lazily on the
// first Play call.
func New() *Player {
	return &Player{}
}

// Playing reports whether a playback is currently in flight.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing
}

// Play decodes the WAV file at path and plays it through the speaker,
// blocking the caller until the audio finishes. Callers that must stay
// responsive run Play on their own goroutine. Returns ErrBusy when another
// playback has not finished yet; file and device failures come back wrapped.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return ErrBusy
	}
	p.playing = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	}()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode audio: %w", err)
	}
	defer stream.Close()

	// Device is opened once, at the rate of the (single) source file
	p.initOnce.Do(func() {
		p.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if p.initErr != nil {
		return fmt.Errorf("open output device: %w", p.initErr)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}
