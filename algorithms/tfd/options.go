package tfd

import (
	"fmt"

	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
	"github.com/RyanBlaney/sonido-tfd/logging"
)

// Option configures a distribution call
type Option func(*options)

type options struct {
	fftLength int
	backend   spectral.Backend
	workers   int
	logger    logging.Logger
}

// WithFFTLength sets the number of frequency bins. Zero means the signal
// length.
func WithFFTLength(n int) Option {
	return func(o *options) {
		o.fftLength = n
	}
}

// WithBackend selects the FFT implementation
func WithBackend(b spectral.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithWorkers spreads time columns over n goroutines. Values below 2 keep the
// computation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(signalLength int, opts []Option) (*options, error) {
	o := &options{
		backend: spectral.BackendGoDSP,
		workers: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.fftLength < 0 {
		return nil, fmt.Errorf("fft length must be >= 0: %d", o.fftLength)
	}
	if o.fftLength == 0 {
		o.fftLength = signalLength
	}
	if o.logger == nil {
		o.logger = logging.WithFields(logging.Fields{"component": "tfd"})
	}
	return o, nil
}

// validate checks the preconditions shared by the windowed distributions
func validate(x []complex128, w []float64, o *options) error {
	if len(x) == 0 {
		return ErrEmptySignal
	}
	if len(w) == 0 {
		return ErrEmptyWindow
	}
	if len(w) > len(x) {
		return fmt.Errorf("%w: window %d, signal %d", ErrWindowTooLong, len(w), len(x))
	}
	if o.fftLength < len(w) {
		return fmt.Errorf("%w: fft %d, window %d", ErrFFTLengthTooShort, o.fftLength, len(w))
	}
	return nil
}

func (o *options) logComputed(method Method, n, windowSize int) {
	o.logger.Debug("computed distribution", logging.Fields{
		"method":        string(method),
		"signal_length": n,
		"window_size":   windowSize,
		"fft_length":    o.fftLength,
		"backend":       o.backend.String(),
		"workers":       o.workers,
	})
}
