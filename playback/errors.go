package playback

import "errors"

var (
	ErrBusy = errors.New("playback already in progress")
)
