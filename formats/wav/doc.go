// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM 16-bit format.
// It uses the github.com/go-audio library for robust WAV file parsing.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (most common WAV format)
//   - Any channel count
//   - Any sample rate
//
// # Decoding WAV Files
//
// Use Decode to read a complete WAV file:
//
//	file, _ := os.Open("audio.wav")
//	clip, err := wav.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// clip.PCM holds interleaved int16 samples,
//	// clip.SampleRate and clip.Channels describe the stream.
//
// The whole file is decoded in one call; there is no streaming interface
// because the viewer always works on the complete signal.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 1, samples)
//
// The function writes a complete WAV file with proper headers. For
// multi-channel audio pass interleaved frames and the channel count.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: the file is valid but not 16-bit PCM
//   - ErrNoData: the file has headers but no sample frames
//   - ErrInvalidChannelCount: WriteWAV16 was given a non-positive channel count
//
// Example:
//
//	clip, err := wav.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
