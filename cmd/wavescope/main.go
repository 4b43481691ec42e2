// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/wavescope/wavescope"
	"github.com/wavescope/wavescope/playback"
	"github.com/wavescope/wavescope/render"
	"github.com/wavescope/wavescope/ui"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: wavescope [WAV_FILE]")
		os.Exit(2)
	}

	path := wavescope.DefaultAudioPath
	if len(os.Args) == 2 {
		path = os.Args[1]
	}

	buf, err := wavescope.Load(path)
	if err != nil {
		log.Fatalf("load audio: %v", err)
	}

	wave, err := render.New(buf)
	if err != nil {
		log.Fatalf("render waveform: %v", err)
	}

	a := app.New()
	shell := ui.New(a, wave, playback.New(), path)
	shell.ShowAndRun()
}
