// SPDX-License-Identifier: EPL-2.0

// Package signal holds the in-memory representation of the loaded audio.
//
// A Buffer pairs a mono float64 sample sequence with its sample rate.
// Buffers are built from decoded PCM with FromPCM16, which downmixes
// multi-channel input by per-frame averaging, and are normalized so the
// peak absolute value is 1.0:
//
//	buf, err := signal.FromPCM16(clip.PCM, clip.SampleRate, clip.Channels)
//	if err != nil {
//	    // Handle error
//	}
//	if err := buf.Normalize(); err != nil {
//	    // signal.ErrEmptySignal: the file is all zeros
//	}
//
// The derived time axis follows t[i] = i/rate, so it always has exactly one
// entry per sample and its last value is (n-1)/rate.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrEmptySignal: the buffer is silent and has no peak to normalize by
//   - ErrInvalidRate: the sample rate is zero or negative
//   - ErrInvalidChannels: the channel count is zero or negative
//   - ErrChannelMismatch: the PCM slice does not divide into whole frames
package signal
