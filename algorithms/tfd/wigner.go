package tfd

import (
	"math/cmplx"

	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
)

// WD computes the Wigner distribution
//
//	WD(n, k) = sum_m x(n+m) x*(n-m) e^{-j2*pi*m*k/L}
//
// The lag range at each instant is bounded by the signal support and by
// |m| < L/2. Because the kernel advances over the doubled lag, bin k maps to
// normalised frequency (k - L/2) / (2L).
func WD(x []complex128, opts ...Option) (*Distribution, error) {
	o, err := applyOptions(len(x), opts)
	if err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	n := len(x)
	l := o.fftLength
	maxLag := (l - 1) / 2
	d := newDistribution(MethodWD, n, l, 2)

	o.forEachColumn(n, func(s *columnScratch, col int) {
		clear(s.buf)
		limit := min(col, n-1-col, maxLag)
		for lag := -limit; lag <= limit; lag++ {
			s.buf[wrap(lag, l)] = x[col+lag] * cmplx.Conj(x[col-lag])
		}
		d.Data[col] = spectral.Shift(s.fft.Compute(s.buf))
	})

	o.logComputed(MethodWD, n, 0)
	return d, nil
}

// PWD computes the pseudo Wigner distribution
//
//	PWD(n, k) = sum_m w(m) w*(-m) x(n+m) x*(n-m) e^{-j2*pi*m*k/L}
//
// where w is indexed about its centre tap and vanishes outside its support.
// The lag window smooths along frequency, suppressing the cross-terms of
// components that lie further apart in time than the window length.
func PWD(x []complex128, w []float64, opts ...Option) (*Distribution, error) {
	o, err := applyOptions(len(x), opts)
	if err != nil {
		return nil, err
	}
	if err := validate(x, w, o); err != nil {
		return nil, err
	}

	n := len(x)
	l := o.fftLength
	kernel := lagKernel(w)
	half := len(w) / 2
	d := newDistribution(MethodPWD, n, l, 2)

	o.forEachColumn(n, func(s *columnScratch, col int) {
		clear(s.buf)
		for lag := -half; lag <= half; lag++ {
			g := kernel[lag+half]
			if g == 0 {
				continue
			}
			a, b := col+lag, col-lag
			if a < 0 || a >= n || b < 0 || b >= n {
				continue
			}
			s.buf[wrap(lag, l)] += complex(g, 0) * x[a] * cmplx.Conj(x[b])
		}
		d.Data[col] = spectral.Shift(s.fft.Compute(s.buf))
	})

	o.logComputed(MethodPWD, n, len(w))
	return d, nil
}

// lagKernel returns w(m)w(-m) for m in [-len(w)/2, len(w)/2]
func lagKernel(w []float64) []float64 {
	half := len(w) / 2
	at := func(lag int) float64 {
		i := lag + half
		if i < 0 || i >= len(w) {
			return 0
		}
		return w[i]
	}

	kernel := make([]float64, 2*half+1)
	for lag := -half; lag <= half; lag++ {
		kernel[lag+half] = at(lag) * at(-lag)
	}
	return kernel
}
