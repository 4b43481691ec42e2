package signal

import "errors"

var (
	ErrEmptySignal     = errors.New("signal is silent, nothing to normalize")
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrChannelMismatch = errors.New("pcm length must be multiple of channels")
)
