// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Buffer is a mono audio signal: an ordered sequence of float64 samples
// together with the sample rate in frames per second. A Buffer is built once
// from decoded PCM and not mutated afterwards, except by Normalize.
type Buffer struct {
	Samples []float64
	Rate    int
}

// FromPCM16 builds a Buffer from interleaved 16-bit PCM samples. Multi-channel
// input is downmixed to mono by averaging each frame, so the resulting buffer
// length equals the frame count regardless of channel count. Samples are
// scaled by 1/32768 into [-1, 1); call Normalize to stretch the peak to 1.
func FromPCM16(pcm []int16, rate, channels int) (*Buffer, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(pcm)%channels != 0 {
		return nil, ErrChannelMismatch
	}

	const scale = 1.0 / 32768.0
	frames := len(pcm) / channels
	samples := make([]float64, frames)

	// Unrolled paths for the common channel layouts
	switch channels {
	case 1:
		for i, s := range pcm {
			samples[i] = float64(s) * scale
		}
	case 2:
		for f := range frames {
			idx := f << 1
			samples[f] = (float64(pcm[idx]) + float64(pcm[idx+1])) * 0.5 * scale
		}
	default:
		inv := 1.0 / float64(channels)
		for f := range frames {
			sum := 0.0
			baseIdx := f * channels
			for c := range channels {
				sum += float64(pcm[baseIdx+c])
			}
			samples[f] = sum * inv * scale
		}
	}

	return &Buffer{Samples: samples, Rate: rate}, nil
}

// Normalize scales the buffer in place so the maximum absolute sample value
// becomes exactly 1.0. A silent buffer (all zeros, or no samples at all) has
// no defined peak and returns ErrEmptySignal; the samples are left untouched.
func (b *Buffer) Normalize() error {
	maxAbs := 0.0
	for _, s := range b.Samples {
		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
		}
	}

	if maxAbs == 0 {
		return ErrEmptySignal
	}

	inv := 1.0 / maxAbs
	for i := range b.Samples {
		b.Samples[i] *= inv
	}

	return nil
}

// TimeAxis returns the time in seconds of every sample: t[i] = i/rate.
// The result has the same length as Samples and its last value is (n-1)/rate,
// so a one second buffer spans [0, 1).
func (b *Buffer) TimeAxis() []float64 {
	t := make([]float64, len(b.Samples))
	rate := float64(b.Rate)

	for i := range t {
		t[i] = float64(i) / rate
	}

	return t
}

// Duration of the signal in seconds.
func (b *Buffer) Duration() float64 {
	return float64(len(b.Samples)) / float64(b.Rate)
}
