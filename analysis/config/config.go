package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
	"github.com/RyanBlaney/sonido-tfd/algorithms/windowing"
	"github.com/RyanBlaney/sonido-tfd/logging"
)

var ErrInvalidConfig = errors.New("invalid analysis config")

// Config controls how distributions are computed
type Config struct {
	// Signal
	SignalLength int `json:"signal_length"`

	// Analysis window
	WindowType string `json:"window_type"` // "hann", "hamming", "rectangular", ...
	WindowSize int    `json:"window_size"`
	Periodic   bool   `json:"periodic,omitempty"`

	// S-method smoothing window, odd length
	SmoothingType string `json:"smoothing_type"`
	SmoothingSize int    `json:"smoothing_size"`

	// Execution
	FFTLength int    `json:"fft_length,omitempty"` // 0 = signal length
	Backend   string `json:"backend"`              // "go-dsp" or "gonum"
	Workers   int    `json:"workers"`

	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a 64-sample Hann analysis window and a rectangular
// smoothing window of 3 bins. A 3-point Hann smoothing window is [0 1 0],
// which reduces the S-method to the spectrogram, so it is not the default.
func DefaultConfig() *Config {
	return &Config{
		SignalLength:  256,
		WindowType:    "hann",
		WindowSize:    64,
		SmoothingType: "rectangular",
		SmoothingSize: 3,
		Backend:       spectral.BackendGoDSP.String(),
		Workers:       1,
		LogLevel:      "info",
	}
}

// Load reads a JSON config file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values the distributions would reject
func (c *Config) Validate() error {
	if c.SignalLength <= 0 {
		return fmt.Errorf("%w: signal_length must be > 0, got %d", ErrInvalidConfig, c.SignalLength)
	}
	if c.WindowSize <= 0 || c.WindowSize > c.SignalLength {
		return fmt.Errorf("%w: window_size must be in [1,%d], got %d", ErrInvalidConfig, c.SignalLength, c.WindowSize)
	}
	if c.SmoothingSize <= 0 || c.SmoothingSize%2 == 0 {
		return fmt.Errorf("%w: smoothing_size must be odd and > 0, got %d", ErrInvalidConfig, c.SmoothingSize)
	}
	if c.FFTLength != 0 && c.FFTLength < c.WindowSize {
		return fmt.Errorf("%w: fft_length %d shorter than window_size %d", ErrInvalidConfig, c.FFTLength, c.WindowSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := windowing.ParseType(c.WindowType); err != nil {
		return fmt.Errorf("%w: window_type: %w", ErrInvalidConfig, err)
	}
	if _, err := windowing.ParseType(c.SmoothingType); err != nil {
		return fmt.Errorf("%w: smoothing_type: %w", ErrInvalidConfig, err)
	}
	if _, err := spectral.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Window builds the analysis window
func (c *Config) Window() ([]float64, error) {
	typ, err := windowing.ParseType(c.WindowType)
	if err != nil {
		return nil, err
	}

	var opts []windowing.Option
	if c.Periodic {
		opts = append(opts, windowing.WithPeriodic())
	}
	w, err := windowing.New(typ, c.WindowSize, opts...)
	if err != nil {
		return nil, err
	}
	return w.Coefficients(), nil
}

// SmoothingWindow builds the S-method frequency window
func (c *Config) SmoothingWindow() ([]float64, error) {
	typ, err := windowing.ParseType(c.SmoothingType)
	if err != nil {
		return nil, err
	}
	w, err := windowing.New(typ, c.SmoothingSize)
	if err != nil {
		return nil, err
	}
	return w.Coefficients(), nil
}
