// Package analysis selects and runs time-frequency distributions by name,
// the way an interactive viewer switches between them.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
	"github.com/RyanBlaney/sonido-tfd/algorithms/tfd"
	"github.com/RyanBlaney/sonido-tfd/analysis/config"
	"github.com/RyanBlaney/sonido-tfd/logging"
)

// Summary describes a computed distribution
type Summary struct {
	Method        tfd.Method `json:"method"`
	TimeSamples   int        `json:"time_samples"`
	FreqBins      int        `json:"freq_bins"`
	PeakTime      int        `json:"peak_time"`
	PeakBin       int        `json:"peak_bin"`
	PeakFrequency float64    `json:"peak_frequency"` // cycles per sample
	PeakMagnitude float64    `json:"peak_magnitude"`
	Energy        float64    `json:"energy"`
	Concentration float64    `json:"concentration"`
	RenyiEntropy  float64    `json:"renyi_entropy"`
	// MeanPeakFrequency is the average per-column peak frequency weighted by
	// column peak magnitude
	MeanPeakFrequency float64 `json:"mean_peak_frequency"`
}

// Analyzer computes distributions with a fixed configuration
type Analyzer struct {
	config *config.Config
	window []float64
	smooth []float64
	opts   []tfd.Option
	logger logging.Logger
}

// NewAnalyzer validates the config and prepares the windows
func NewAnalyzer(cfg *config.Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	smooth, err := cfg.SmoothingWindow()
	if err != nil {
		return nil, err
	}
	backend, err := spectral.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{
		"component": "tfd_analyzer",
	})

	return &Analyzer{
		config: cfg,
		window: window,
		smooth: smooth,
		opts: []tfd.Option{
			tfd.WithFFTLength(cfg.FFTLength),
			tfd.WithBackend(backend),
			tfd.WithWorkers(cfg.Workers),
			tfd.WithLogger(logger),
		},
		logger: logger,
	}, nil
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() *config.Config {
	return a.config
}

// Methods lists the available distributions in display order
func (a *Analyzer) Methods() []tfd.Method {
	return tfd.Methods()
}

// Compute runs the named distribution on x
func (a *Analyzer) Compute(method tfd.Method, x []complex128) (*tfd.Distribution, error) {
	var (
		d   *tfd.Distribution
		err error
	)

	switch method {
	case tfd.MethodSTFT:
		d, err = tfd.STFT(x, a.window, a.opts...)
	case tfd.MethodSM:
		d, err = tfd.SM(x, a.window, a.smooth, a.opts...)
	case tfd.MethodPWD:
		d, err = tfd.PWD(x, a.window, a.opts...)
	case tfd.MethodWD:
		d, err = tfd.WD(x, a.opts...)
	default:
		return nil, fmt.Errorf("%w: %q", tfd.ErrUnknownMethod, method)
	}

	if err != nil {
		a.logger.Error(err, "distribution failed", logging.Fields{
			"method":        string(method),
			"signal_length": len(x),
		})
		return nil, fmt.Errorf("%s: %w", method.Title(), err)
	}
	return d, nil
}

// Image returns the magnitude of the non-negative frequency half
func (a *Analyzer) Image(method tfd.Method, x []complex128) (*mat.Dense, error) {
	d, err := a.Compute(method, x)
	if err != nil {
		return nil, err
	}
	return d.PositiveHalf(), nil
}

// Summarize computes the distribution and reduces it to scalar descriptors
func (a *Analyzer) Summarize(method tfd.Method, x []complex128) (*Summary, error) {
	d, err := a.Compute(method, x)
	if err != nil {
		return nil, err
	}
	return Summarize(d), nil
}

// Summarize reduces a distribution to scalar descriptors
func Summarize(d *tfd.Distribution) *Summary {
	s := &Summary{
		Method:        d.Method,
		TimeSamples:   d.Len(),
		FreqBins:      d.Bins(),
		Energy:        d.Energy(),
		Concentration: tfd.Concentration(d),
		RenyiEntropy:  tfd.RenyiEntropy(d, 3),
	}

	freqs := make([]float64, d.Len())
	weights := make([]float64, d.Len())
	for n := range d.Data {
		k := d.PeakBin(n)
		v := d.Column(n)[k]
		freqs[n] = d.Frequency(k)
		weights[n] = v

		if v > s.PeakMagnitude {
			s.PeakMagnitude = v
			s.PeakTime = n
			s.PeakBin = k
		}
	}
	s.PeakFrequency = d.Frequency(s.PeakBin)

	if s.PeakMagnitude > 0 {
		s.MeanPeakFrequency = stat.Mean(freqs, weights)
	}
	return s
}
