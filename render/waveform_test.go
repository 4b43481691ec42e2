// SPDX-License-Identifier: EPL-2.0

package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavescope/wavescope/signal"
)

func testBuffer(t *testing.T) *signal.Buffer {
	t.Helper()

	buf, err := signal.FromPCM16([]int16{0, 16000, -16000, 8000, -8000, 0}, 8000, 1)
	if err != nil {
		t.Fatalf("FromPCM16() error = %v", err)
	}

	if err := buf.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	return buf
}

func TestNew_NoSignal(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, ErrNoSignal) {
		t.Errorf("New(nil) error = %v, want ErrNoSignal", err)
	}

	if _, err := New(&signal.Buffer{Rate: 8000}); !errors.Is(err, ErrNoSignal) {
		t.Errorf("New(empty) error = %v, want ErrNoSignal", err)
	}
}

func TestImage(t *testing.T) {
	t.Parallel()

	wave, err := New(testBuffer(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	img := wave.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Errorf("Image() bounds = %v, want non-empty", bounds)
	}
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	wave, err := New(testBuffer(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := new(bytes.Buffer)
	if err := wave.WritePNG(out); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	if out.Len() == 0 {
		t.Fatal("WritePNG() wrote nothing")
	}

	img, err := png.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}

	if img.Bounds().Dx() <= 0 {
		t.Error("decoded PNG has no width")
	}
}

func TestExportPNG(t *testing.T) {
	t.Parallel()

	wave, err := New(testBuffer(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "waveform.png")
	if err := wave.ExportPNG(path); err != nil {
		t.Fatalf("ExportPNG() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	if info.Size() == 0 {
		t.Error("exported file is empty")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	if _, err := png.Decode(f); err != nil {
		t.Errorf("exported file is not decodable PNG: %v", err)
	}
}

func TestExportPNG_BadPath(t *testing.T) {
	t.Parallel()

	wave, err := New(testBuffer(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "waveform.png")
	if err := wave.ExportPNG(path); err == nil {
		t.Error("ExportPNG() succeeded on unwritable path, want error")
	}
}
