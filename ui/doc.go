// SPDX-License-Identifier: EPL-2.0

// Package ui wires the rendered waveform and the two user actions into a
// fyne window.
package ui
