package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrNoData                = errors.New("WAV file has no sample data")
	ErrInvalidChannelCount   = errors.New("channel count must be positive")
)
