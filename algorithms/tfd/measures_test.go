package tfd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-tfd/algorithms/signals"
)

func TestConcentrationBounds(t *testing.T) {
	single := newDistribution(MethodWD, 4, 8, 2)
	single.Data[1][3] = 5
	assert.InDelta(t, 1.0/32, Concentration(single), 1e-15)

	flat := newDistribution(MethodSTFT, 4, 8, 1)
	for n := range flat.Data {
		for k := range flat.Data[n] {
			flat.Data[n][k] = 2i
		}
	}
	assert.InDelta(t, 1.0, Concentration(flat), 1e-12)

	assert.Zero(t, Concentration(newDistribution(MethodSTFT, 2, 2, 1)))
}

func TestRenyiEntropy(t *testing.T) {
	single := newDistribution(MethodWD, 4, 8, 2)
	single.Data[0][0] = 1
	assert.InDelta(t, 0.0, RenyiEntropy(single, 3), 1e-12)

	flat := newDistribution(MethodSTFT, 4, 8, 1)
	for n := range flat.Data {
		for k := range flat.Data[n] {
			flat.Data[n][k] = 1
		}
	}
	assert.InDelta(t, 5.0, RenyiEntropy(flat, 3), 1e-12)

	assert.True(t, math.IsNaN(RenyiEntropy(flat, 1)))
}

func TestToneMoreConcentratedThanNoise(t *testing.T) {
	tone, err := signals.ComplexSinusoid(128, 0.125)
	require.NoError(t, err)
	noise, err := signals.Noise(128, 1, 7)
	require.NoError(t, err)
	w := hanning(t, 33)

	toneSpec, err := STFT(tone, w)
	require.NoError(t, err)
	noiseSpec, err := STFT(noise, w)
	require.NoError(t, err)
	assert.Less(t, Concentration(toneSpec), 0.5*Concentration(noiseSpec))

	tonePWD, err := PWD(tone, w)
	require.NoError(t, err)
	noisePWD, err := PWD(noise, w)
	require.NoError(t, err)
	assert.Less(t, Concentration(tonePWD), 0.5*Concentration(noisePWD))
	assert.Less(t, RenyiEntropy(tonePWD, 3), RenyiEntropy(noisePWD, 3))
}

func TestNormalize(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 4, 2, 0})
	n := Normalize(m)
	assert.Equal(t, []float64{0.25, 1, 0.5, 0}, n.RawMatrix().Data)
	assert.Equal(t, 4.0, m.At(0, 1))

	zero := mat.NewDense(1, 2, nil)
	assert.Equal(t, []float64{0, 0}, Normalize(zero).RawMatrix().Data)
}

func TestLogPower(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{1, 10, 0})
	lp := LogPower(m, -60)
	assert.InDelta(t, 0.0, lp.At(0, 0), 1e-12)
	assert.InDelta(t, 20.0, lp.At(0, 1), 1e-12)
	assert.InDelta(t, -60.0, lp.At(0, 2), 1e-12)
}
