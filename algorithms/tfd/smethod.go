package tfd

import (
	"fmt"
	"math/cmplx"
)

// SM computes the S-method
//
//	SM(n, k) = sum_{i=-Ld..Ld} P(i) STFT(n, k+i) STFT*(n, k-i)
//
// where p has odd length 2Ld+1 and is indexed about its centre. Bins outside
// the frequency axis count as zero. With Ld = 0 the result is the
// spectrogram; as Ld grows it approaches the pseudo Wigner distribution
// while cross-terms between components more than 2Ld bins apart stay out.
func SM(x []complex128, w, p []float64, opts ...Option) (*Distribution, error) {
	o, err := applyOptions(len(x), opts)
	if err != nil {
		return nil, err
	}
	if err := validate(x, w, o); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("smoothing: %w", ErrEmptyWindow)
	}
	if len(p)%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenSmoothingWindow, len(p))
	}

	spec := stft(x, w, o)

	n := len(x)
	l := o.fftLength
	ld := len(p) / 2
	d := newDistribution(MethodSM, n, l, 1)

	o.forEachColumn(n, func(_ *columnScratch, col int) {
		s := spec.Data[col]
		out := d.Data[col]
		for k := range l {
			var acc complex128
			for i := -ld; i <= ld; i++ {
				a, b := k+i, k-i
				if a < 0 || a >= l || b < 0 || b >= l {
					continue
				}
				acc += complex(p[i+ld], 0) * s[a] * cmplx.Conj(s[b])
			}
			out[k] = acc
		}
	})

	o.logComputed(MethodSM, n, len(w))
	return d, nil
}
