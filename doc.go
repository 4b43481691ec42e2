// SPDX-License-Identifier: EPL-2.0

// Package wavescope is a small desktop viewer for WAV audio files: it loads
// one 16-bit PCM file, shows its waveform, and lets the user export the plot
// as PNG or play the audio back.
//
// # Quick Start
//
// The simplest way to get a display-ready signal is Load:
//
//	buf, err := wavescope.Load("u.wav")
//	if err != nil {
//	    // FileLoad, decode or empty-signal failure; nothing was rendered
//	}
//
//	wave, _ := render.New(buf)
//	shell := ui.New(app.New(), wave, playback.New(), "u.wav")
//	shell.ShowAndRun()
//
// Load runs the whole pipeline once: open the file, decode the PCM frames
// (formats/wav), downmix to mono and scale into [-1, 1] (signal), and
// normalize so the peak absolute value is exactly 1.0.
//
// # Packages
//
//   - signal: the in-memory Buffer, downmix, normalization, time axis
//   - formats/wav: PCM 16-bit WAV decoding (go-audio) and encoding
//   - render: the amplitude-vs-time line plot and PNG export (gonum/plot)
//   - playback: speaker playback of the source file (beep)
//   - ui: the fyne window with the two action buttons
//
// # Error Handling
//
// Errors are sentinel values defined next to the code that raises them, and
// are always wrapped with context:
//
//	_, err := wavescope.Load("silence.wav")
//	if errors.Is(err, signal.ErrEmptySignal) {
//	    fmt.Println("file is all zeros, nothing to show")
//	}
//
// A load failure is surfaced before any rendering happens; the binary in
// cmd/wavescope logs it and exits instead of opening a window over missing
// data.
package wavescope
