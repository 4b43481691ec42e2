// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"fmt"
	"os"

	"github.com/wavescope/wavescope/formats/wav"
	"github.com/wavescope/wavescope/signal"
)

// DefaultAudioPath is the file loaded when no path is given on the command
// line.
const DefaultAudioPath = "u.wav"

// Load opens the WAV file at path and produces the normalized display
// buffer: open -> decode -> downmix -> normalize. Any failure along the way
// returns a typed, wrapped error and no buffer, so a failed load can never
// reach the renderer.
func Load(path string) (*signal.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	clip, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	buf, err := signal.FromPCM16(clip.PCM, clip.SampleRate, clip.Channels)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	if err := buf.Normalize(); err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}

	return buf, nil
}
