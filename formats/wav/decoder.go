package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// readChunk is the number of interleaved samples pulled per decoder call.
const readChunk = 4096

// Clip is a fully decoded PCM clip: interleaved signed 16-bit samples plus
// the stream properties needed to interpret them.
type Clip struct {
	PCM        []int16
	SampleRate int
	Channels   int
}

// Frames returns the number of per-channel sample frames in the clip.
func (c *Clip) Frames() int {
	return len(c.PCM) / c.Channels
}

// Decode reads a complete WAV stream and returns the decoded clip.
// Only PCM 16-bit is accepted; any channel count and sample rate are fine.
func Decode(r io.ReadSeeker) (*Clip, error) {
	dec := gowav.NewDecoder(r)

	dec.ReadInfo()
	if dec.Err() != nil || dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	channels := int(dec.NumChans)
	sampleRate := int(dec.SampleRate)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, readChunk),
		SourceBitDepth: 16,
	}

	var pcm []int16

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, fmt.Errorf("read pcm: %w", err)
		}
		if n == 0 {
			break
		}

		for _, v := range buf.Data[:n] {
			pcm = append(pcm, int16(v))
		}
	}

	if len(pcm) == 0 {
		return nil, ErrNoData
	}

	return &Clip{
		PCM:        pcm,
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}
