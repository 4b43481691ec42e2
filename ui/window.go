// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/wavescope/wavescope/render"
)

// Player is the playback dependency of the shell. *playback.Player
// satisfies it.
type Player interface {
	// Play blocks until the file at path has finished playing.
	Play(path string) error
}

// Shell is the application window: the rendered waveform above the export
// and playback buttons. It has no state of its own beyond the disabled play
// button while audio is audible.
type Shell struct {
	win       fyne.Window
	wave      *render.Waveform
	player    Player
	audioPath string

	saveBtn *widget.Button
	playBtn *widget.Button
}

// New builds the shell window around an already rendered waveform. audioPath
// is the file played back on request; it is fixed for the lifetime of the
// window.
func New(a fyne.App, wave *render.Waveform, player Player, audioPath string) *Shell {
	s := &Shell{
		win:       a.NewWindow("Sound Wave"),
		wave:      wave,
		player:    player,
		audioPath: audioPath,
	}

	plotImg := canvas.NewImageFromImage(wave.Image())
	plotImg.FillMode = canvas.ImageFillContain
	plotImg.SetMinSize(fyne.NewSize(800, 320))

	s.saveBtn = widget.NewButton("Save Full Image", s.onSaveImage)
	s.playBtn = widget.NewButton("Play Audio", s.onPlayAudio)

	buttons := container.NewHBox(s.saveBtn, s.playBtn)
	s.win.SetContent(container.NewBorder(nil, buttons, nil, nil, plotImg))
	s.win.Resize(fyne.NewSize(1000, 460))

	return s
}

// ShowAndRun shows the window and blocks in the event loop until it closes.
func (s *Shell) ShowAndRun() {
	s.win.ShowAndRun()
}

func (s *Shell) onSaveImage() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.win)
			return
		}
		s.exportTo(wc)
	}, s.win)
	d.SetFileName("waveform.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

// exportTo serializes the figure to wc. A nil writer means the save dialog
// was cancelled: nothing is written and nothing is reported.
func (s *Shell) exportTo(wc fyne.URIWriteCloser) {
	if wc == nil {
		return
	}
	defer wc.Close()

	if err := s.wave.WritePNG(wc); err != nil {
		log.Printf("save image failed: %v", err)
		dialog.ShowError(fmt.Errorf("save image: %w", err), s.win)
		return
	}

	log.Printf("image saved: %s", wc.URI().Path())
}

// onPlayAudio starts playback on a worker goroutine so the event loop keeps
// running; the play button stays disabled until the completion signal.
func (s *Shell) onPlayAudio() {
	s.playBtn.Disable()

	go func() {
		err := s.player.Play(s.audioPath)

		fyne.Do(func() {
			s.playBtn.Enable()
			if err != nil {
				log.Printf("playback failed: %v", err)
				dialog.ShowError(fmt.Errorf("play audio: %w", err), s.win)
			}
		})
	}()
}
