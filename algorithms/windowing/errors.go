package windowing

import "errors"

var (
	ErrInvalidSize  = errors.New("window size must be > 0")
	ErrUnknownType  = errors.New("unknown window type")
	ErrInvalidSigma = errors.New("gaussian sigma must be > 0")
	ErrInvalidAlpha = errors.New("tukey alpha must be in [0, 1]")
	ErrInvalidBeta  = errors.New("kaiser beta must be >= 0")
)
