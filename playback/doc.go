// SPDX-License-Identifier: EPL-2.0

// Package playback plays the source WAV file through the default sound
// output using github.com/gopxl/beep.
//
// Playback is synchronous: Play decodes the file by path and blocks until
// the audio has finished. The shell runs it on a worker goroutine so the
// window stays responsive, and uses the returned error as the completion
// signal. A Player refuses overlapping playback with ErrBusy instead of
// mixing two copies of the file.
package playback
