// SPDX-License-Identifier: EPL-2.0

package wavescope_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wavescope/wavescope"
	"github.com/wavescope/wavescope/formats/wav"
	"github.com/wavescope/wavescope/signal"
)

// Example_load demonstrates the load pipeline: a WAV file on disk becomes a
// normalized display buffer.
func Example_load() {
	dir, err := os.MkdirTemp("", "wavescope")
	if err != nil {
		fmt.Printf("tempdir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	// Write a tiny fixture file; the peak sample is -400
	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("create error: %v\n", err)
		return
	}
	wav.WriteWAV16(f, 8000, 1, []int16{100, -200, 300, -400})
	f.Close()

	buf, err := wavescope.Load(path)
	if err != nil {
		fmt.Printf("load error: %v\n", err)
		return
	}

	fmt.Printf("rate: %d Hz\n", buf.Rate)
	fmt.Printf("samples: %d\n", len(buf.Samples))
	fmt.Printf("normalized peak: %.1f\n", buf.Samples[3])
	// Output:
	// rate: 8000 Hz
	// samples: 4
	// normalized peak: -1.0
}

// Example_silentFile shows the defined outcome for an all-zero file: a typed
// error instead of a NaN-filled buffer.
func Example_silentFile() {
	dir, err := os.MkdirTemp("", "wavescope")
	if err != nil {
		fmt.Printf("tempdir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "silence.wav")
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("create error: %v\n", err)
		return
	}
	wav.WriteWAV16(f, 8000, 1, make([]int16, 8000))
	f.Close()

	_, err = wavescope.Load(path)
	fmt.Println(errors.Is(err, signal.ErrEmptySignal))
	// Output: true
}
