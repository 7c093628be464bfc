package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tfd/algorithms/signals"
	"github.com/RyanBlaney/sonido-tfd/algorithms/tfd"
	"github.com/RyanBlaney/sonido-tfd/analysis/config"
	"github.com/RyanBlaney/sonido-tfd/logging"
)

func quietLogger(t *testing.T) {
	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(nil)
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })
}

func TestAnalyzerMethodsInDisplayOrder(t *testing.T) {
	a, err := NewAnalyzer(nil)
	require.NoError(t, err)

	titles := []string{}
	for _, m := range a.Methods() {
		titles = append(titles, m.Title())
	}
	assert.Equal(t, []string{"STFT", "S-method", "PWD", "WD"}, titles)
	assert.Equal(t, 64, a.Config().WindowSize)
}

func TestAnalyzerSinusoid(t *testing.T) {
	quietLogger(t)

	a, err := NewAnalyzer(config.DefaultConfig())
	require.NoError(t, err)

	x, err := signals.ComplexSinusoid(256, 0.125)
	require.NoError(t, err)

	for _, method := range a.Methods() {
		t.Run(string(method), func(t *testing.T) {
			s, err := a.Summarize(method, x)
			require.NoError(t, err)

			assert.Equal(t, method, s.Method)
			assert.Equal(t, 256, s.TimeSamples)
			assert.Equal(t, 256, s.FreqBins)
			assert.InDelta(t, 0.125, s.PeakFrequency, 1e-9)
			assert.InDelta(t, 0.125, s.MeanPeakFrequency, 1e-3)
			assert.Greater(t, s.Energy, 0.0)
			assert.Greater(t, s.Concentration, 0.0)
			assert.LessOrEqual(t, s.Concentration, 1.0)
		})
	}
}

func TestAnalyzerWindowTypes(t *testing.T) {
	quietLogger(t)

	x, err := signals.ComplexSinusoid(256, 0.125)
	require.NoError(t, err)

	for _, name := range []string{"hamming", "blackman-harris", "tukey", "kaiser", "welch"} {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.WindowType = name

			a, err := NewAnalyzer(cfg)
			require.NoError(t, err)

			s, err := a.Summarize(tfd.MethodSTFT, x)
			require.NoError(t, err)
			assert.InDelta(t, 0.125, s.PeakFrequency, 1e-9)
		})
	}
}

func TestAnalyzerImage(t *testing.T) {
	quietLogger(t)

	a, err := NewAnalyzer(nil)
	require.NoError(t, err)

	x, err := signals.LinearChirp(256, 0.05, 0.2)
	require.NoError(t, err)

	img, err := a.Image(tfd.MethodSM, x)
	require.NoError(t, err)
	r, c := img.Dims()
	assert.Equal(t, 256, r)
	assert.Equal(t, 128, c)
}

func TestAnalyzerErrors(t *testing.T) {
	quietLogger(t)

	a, err := NewAnalyzer(nil)
	require.NoError(t, err)

	x, err := signals.ComplexSinusoid(32, 0.1)
	require.NoError(t, err)

	_, err = a.Compute(tfd.MethodSTFT, x)
	assert.ErrorIs(t, err, tfd.ErrWindowTooLong)

	_, err = a.Compute(tfd.Method("cw"), x)
	assert.ErrorIs(t, err, tfd.ErrUnknownMethod)

	_, err = a.Compute(tfd.MethodWD, nil)
	assert.ErrorIs(t, err, tfd.ErrEmptySignal)

	cfg := config.DefaultConfig()
	cfg.SmoothingSize = 2
	_, err = NewAnalyzer(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestAnalyzerGonumBackendMatches(t *testing.T) {
	quietLogger(t)

	x, err := signals.SinusoidalFM(256, 0.15, 0.05, 1.0/128)
	require.NoError(t, err)

	godsp, err := NewAnalyzer(nil)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Backend = "gonum"
	cfg.Workers = 4
	gonum, err := NewAnalyzer(cfg)
	require.NoError(t, err)

	for _, method := range tfd.Methods() {
		a, err := godsp.Summarize(method, x)
		require.NoError(t, err)
		b, err := gonum.Summarize(method, x)
		require.NoError(t, err)

		assert.InDelta(t, a.Concentration, b.Concentration, 1e-9, method)
		assert.InDelta(t, a.Energy, b.Energy, 1e-6*a.Energy, method)
	}
}
