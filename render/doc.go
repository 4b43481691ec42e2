// SPDX-License-Identifier: EPL-2.0

// Package render draws the waveform line plot and exports it as PNG.
// Plotting is done with gonum.org/v1/plot; the figure is fixed: blue
// amplitude-vs-time line, grid, "Time [s]" / "Amplitude" labels and the
// "Sound Wave" title.
package render
