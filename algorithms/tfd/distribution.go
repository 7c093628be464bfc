// Package tfd computes time-frequency distributions of discrete-time signals:
// the short-time Fourier transform, the Wigner distribution, the pseudo
// Wigner distribution and the S-method.
//
// Every distribution is returned as a Distribution indexed [time][frequency].
// The time axis always has the length of the input signal. The frequency
// axis is zero-centred: bin L/2 holds DC, lower bins hold negative
// frequencies.
package tfd

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Method names a distribution
type Method string

const (
	MethodSTFT Method = "stft"
	MethodSM   Method = "sm"
	MethodPWD  Method = "pwd"
	MethodWD   Method = "wd"
)

// Methods returns the supported methods in display order
func Methods() []Method {
	return []Method{MethodSTFT, MethodSM, MethodPWD, MethodWD}
}

// Title returns the display name of the method
func (m Method) Title() string {
	switch m {
	case MethodSTFT:
		return "STFT"
	case MethodSM:
		return "S-method"
	case MethodPWD:
		return "PWD"
	case MethodWD:
		return "WD"
	default:
		return string(m)
	}
}

// ParseMethod resolves a method name or title
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stft":
		return MethodSTFT, nil
	case "sm", "s-method", "smethod":
		return MethodSM, nil
	case "pwd", "pseudo-wigner":
		return MethodPWD, nil
	case "wd", "wigner":
		return MethodWD, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Distribution holds a complex time-frequency distribution
type Distribution struct {
	Method Method
	// Data is indexed [time][frequency]
	Data [][]complex128
	// FFTLength is the number of frequency bins
	FFTLength int
	// LagScale is 2 for Wigner-type distributions, whose kernel runs over
	// the doubled lag, and 1 otherwise
	LagScale int
}

func newDistribution(method Method, n, fftLength, lagScale int) *Distribution {
	data := make([][]complex128, n)
	for i := range data {
		data[i] = make([]complex128, fftLength)
	}
	return &Distribution{
		Method:    method,
		Data:      data,
		FFTLength: fftLength,
		LagScale:  lagScale,
	}
}

// Len returns the number of time samples
func (d *Distribution) Len() int {
	return len(d.Data)
}

// Bins returns the number of frequency bins
func (d *Distribution) Bins() int {
	return d.FFTLength
}

// Frequency returns the normalised frequency (cycles per sample) of bin k
func (d *Distribution) Frequency(k int) float64 {
	return float64(k-d.FFTLength/2) / float64(d.FFTLength*d.LagScale)
}

// Bin returns the bin nearest to a normalised frequency, wrapping frequencies
// outside the representable band
func (d *Distribution) Bin(freq float64) int {
	l := d.FFTLength
	k := int(math.Round(freq*float64(l*d.LagScale))) + l/2
	return ((k % l) + l) % l
}

// Column returns the magnitudes at time n
func (d *Distribution) Column(n int) []float64 {
	col := make([]float64, d.FFTLength)
	for k, v := range d.Data[n] {
		col[k] = cmplx.Abs(v)
	}
	return col
}

// PeakBin returns the frequency bin with the largest magnitude at time n
func (d *Distribution) PeakBin(n int) int {
	return floats.MaxIdx(d.Column(n))
}

// Magnitude returns |D| as a (time x frequency) matrix
func (d *Distribution) Magnitude() *mat.Dense {
	m := mat.NewDense(d.Len(), d.FFTLength, nil)
	for n, row := range d.Data {
		for k, v := range row {
			m.Set(n, k, cmplx.Abs(v))
		}
	}
	return m
}

// PositiveHalf returns the magnitude of the non-negative frequency bins,
// (time x (L - L/2)), the slice that is usually displayed
func (d *Distribution) PositiveHalf() *mat.Dense {
	half := d.FFTLength / 2
	m := mat.NewDense(d.Len(), d.FFTLength-half, nil)
	for n, row := range d.Data {
		for k, v := range row[half:] {
			m.Set(n, k, cmplx.Abs(v))
		}
	}
	return m
}

// Energy returns the sum of magnitudes over the whole plane
func (d *Distribution) Energy() float64 {
	var total float64
	for n := range d.Data {
		total += floats.Sum(d.Column(n))
	}
	return total
}
