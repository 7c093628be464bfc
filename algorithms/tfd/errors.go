package tfd

import "errors"

var (
	ErrEmptySignal         = errors.New("signal is empty")
	ErrEmptyWindow         = errors.New("window is empty")
	ErrWindowTooLong       = errors.New("window is longer than the signal")
	ErrFFTLengthTooShort   = errors.New("fft length is shorter than the window")
	ErrEvenSmoothingWindow = errors.New("smoothing window length must be odd")
	ErrUnknownMethod       = errors.New("unknown distribution method")
)
