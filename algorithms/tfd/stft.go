package tfd

import (
	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
)

// STFT computes the short-time Fourier transform
//
//	STFT(n, k) = sum_m w(m) x(n+m) e^{-j2*pi*m*k/L}
//
// with the lag m running over the window about its centre tap (index
// len(w)/2). Samples outside the signal count as zero, so every time index
// from 0 to len(x)-1 gets a column.
func STFT(x []complex128, w []float64, opts ...Option) (*Distribution, error) {
	o, err := applyOptions(len(x), opts)
	if err != nil {
		return nil, err
	}
	if err := validate(x, w, o); err != nil {
		return nil, err
	}

	d := stft(x, w, o)
	o.logComputed(MethodSTFT, len(x), len(w))
	return d, nil
}

func stft(x []complex128, w []float64, o *options) *Distribution {
	n := len(x)
	l := o.fftLength
	centre := len(w) / 2
	d := newDistribution(MethodSTFT, n, l, 1)

	o.forEachColumn(n, func(s *columnScratch, col int) {
		clear(s.buf)
		for i, c := range w {
			idx := col + i - centre
			if idx < 0 || idx >= n {
				continue
			}
			s.buf[wrap(i-centre, l)] = x[idx] * complex(c, 0)
		}
		d.Data[col] = spectral.Shift(s.fft.Compute(s.buf))
	})

	return d
}

// wrap maps a signed lag onto a circular buffer of length l
func wrap(lag, l int) int {
	return ((lag % l) + l) % l
}
