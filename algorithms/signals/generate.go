// Package signals generates the deterministic test signals used to exercise
// time-frequency distributions. Frequencies are normalised, in cycles per
// sample, so 0.5 is the Nyquist rate.
package signals

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/mjibson/go-dsp/dsputils"

	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
)

var (
	ErrInvalidLength   = errors.New("signal length must be > 0")
	ErrLengthMismatch  = errors.New("signals must have the same length")
	ErrIndexOutOfRange = errors.New("sample index out of range")
	ErrUnknownSignal   = errors.New("unknown signal")
)

func checkLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

// Impulse returns a unit sample at index at
func Impulse(n, at int) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if at < 0 || at >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, at, n)
	}
	x := make([]complex128, n)
	x[at] = 1
	return x, nil
}

// ComplexSinusoid returns exp(j*2*pi*freq*i)
func ComplexSinusoid(n int, freq float64) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	x := make([]complex128, n)
	for i := range x {
		x[i] = cmplx.Exp(complex(0, 2*math.Pi*freq*float64(i)))
	}
	return x, nil
}

// RealSinusoid returns cos(2*pi*freq*i)
func RealSinusoid(n int, freq float64) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * freq * float64(i))
	}
	return FromReal(x), nil
}

// LinearChirp returns a complex chirp whose instantaneous frequency moves
// linearly from f0 at the first sample to f1 at the last
func LinearChirp(n int, f0, f1 float64) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	rate := 0.0
	if n > 1 {
		rate = (f1 - f0) / float64(n-1)
	}
	x := make([]complex128, n)
	for i := range x {
		t := float64(i)
		x[i] = cmplx.Exp(complex(0, 2*math.Pi*(f0*t+0.5*rate*t*t)))
	}
	return x, nil
}

// SinusoidalFM returns a complex tone whose instantaneous frequency is
// centre + deviation*sin(2*pi*modFreq*i)
func SinusoidalFM(n int, centre, deviation, modFreq float64) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if modFreq == 0 {
		return ComplexSinusoid(n, centre)
	}
	x := make([]complex128, n)
	for i := range x {
		t := float64(i)
		phase := 2*math.Pi*centre*t + deviation/modFreq*(1-math.Cos(2*math.Pi*modFreq*t))
		x[i] = cmplx.Exp(complex(0, phase))
	}
	return x, nil
}

// GaussianAtom returns a complex tone at freq under a Gaussian envelope
// centred on sample at with standard deviation width samples
func GaussianAtom(n int, at, width, freq float64) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("atom width must be > 0: %f", width)
	}
	x := make([]complex128, n)
	for i := range x {
		t := float64(i)
		env := math.Exp(-0.5 * math.Pow((t-at)/width, 2))
		x[i] = complex(env, 0) * cmplx.Exp(complex(0, 2*math.Pi*freq*t))
	}
	return x, nil
}

// Noise returns complex white Gaussian noise with the given standard
// deviation per component, reproducible for a given seed
func Noise(n int, sigma float64, seed int64) ([]complex128, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(sigma*rng.NormFloat64(), sigma*rng.NormFloat64())
	}
	return x, nil
}

// Sum adds equal-length signals sample by sample
func Sum(parts ...[]complex128) ([]complex128, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: 0", ErrInvalidLength)
	}
	n := len(parts[0])
	if err := checkLength(n); err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	for _, p := range parts {
		if len(p) != n {
			return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(p), n)
		}
		for i, v := range p {
			out[i] += v
		}
	}
	return out, nil
}

// FromReal lifts a real signal to complex samples
func FromReal(x []float64) []complex128 {
	return dsputils.ToComplex(x)
}

// Analytic returns the analytic signal of x: the negative-frequency half of
// the spectrum is removed and the positive half doubled, so the real part
// reproduces x.
func Analytic(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	f := spectral.NewFFT(spectral.BackendGoDSP)
	spec := f.ComputeReal(x)

	for k := 1; k < n; k++ {
		switch {
		case 2*k < n:
			spec[k] *= 2
		case 2*k > n:
			spec[k] = 0
		}
	}
	return f.ComputeInverse(spec)
}
