// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/wavescope/wavescope/signal"
)

// Canvas size of the rendered figure, matching a 10x4 inch plot.
const (
	Width  = 10 * vg.Inch
	Height = 4 * vg.Inch
)

// Waveform owns a single line plot bound to one signal buffer. The figure is
// built once by New and only read afterwards, by Image and the PNG exporters.
type Waveform struct {
	p *plot.Plot
}

// New builds the amplitude-vs-time line plot for buf: a blue line over a
// grid, with fixed axis labels and title. Construction has no side effects.
func New(buf *signal.Buffer) (*Waveform, error) {
	if buf == nil || len(buf.Samples) == 0 {
		return nil, ErrNoSignal
	}

	axis := buf.TimeAxis()
	xys := make(plotter.XYs, len(buf.Samples))
	for i, s := range buf.Samples {
		xys[i].X = axis[i]
		xys[i].Y = s
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}

	p := plot.New()
	p.Title.Text = "Sound Wave"
	p.X.Label.Text = "Time [s]"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())
	p.Add(line)

	return &Waveform{p: p}, nil
}

// Image rasterizes the figure at the default canvas size for embedding in
// the window.
func (w *Waveform) Image() image.Image {
	c := vgimg.New(Width, Height)
	w.p.Draw(draw.New(c))

	return c.Image()
}

// WritePNG serializes the current figure as PNG to out.
func (w *Waveform) WritePNG(out io.Writer) error {
	wt, err := w.p.WriterTo(Width, Height, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}

	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("write png: %w", err)
	}

	return nil
}

// ExportPNG writes the figure to a new file at path.
func (w *Waveform) ExportPNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := w.WritePNG(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
