// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WAVBytes builds a complete canonical WAV file in memory: 44-byte header
// followed by the interleaved 16-bit samples. The header is assembled here
// (not via the formats/wav encoder) so that package's own tests can use these
// fixtures without an import cycle.
func WAVBytes(sampleRate, channels int, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	b := make([]byte, 44+len(samples)*2)

	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], 36+dataSize)
	copy(b[8:12], "WAVE")

	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], 16)
	binary.LittleEndian.PutUint16(b[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(b[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(b[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(b[28:32], uint32(sampleRate*channels*2))
	binary.LittleEndian.PutUint16(b[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(b[34:36], 16)

	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], dataSize)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[44+i*2:46+i*2], uint16(s))
	}

	return b
}

// WriteWAVFile writes a fixture WAV into dir and returns its path.
func WriteWAVFile(tb testing.TB, dir, name string, sampleRate, channels int, samples []int16) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, WAVBytes(sampleRate, channels, samples), 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}

	return path
}

// ConstantSamples returns n samples of the given value.
func ConstantSamples(n int, value int16) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = value
	}

	return s
}

// SilentSamples returns n samples of silence (all zeros).
func SilentSamples(n int) []int16 {
	return make([]int16, n)
}

// SineSamples returns n samples of a sine wave at the given frequency and
// amplitude (0..1 of full scale).
func SineSamples(n, sampleRate int, frequency, amplitude float64) []int16 {
	s := make([]int16, n)
	for i := range s {
		t := float64(i) / float64(sampleRate)
		s[i] = Float64ToInt16(amplitude * math.Sin(2*math.Pi*frequency*t))
	}

	return s
}

// Float64ToInt16 clamps x to [-1, 1] and scales it to int16.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
