package render

import "errors"

var (
	ErrNoSignal = errors.New("no signal to plot")
)
