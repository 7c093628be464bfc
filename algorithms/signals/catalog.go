package signals

import (
	"fmt"
	"strings"
)

// Named pairs a signal with the name it is listed under
type Named struct {
	Name        string
	Description string
	Samples     []complex128
}

// Catalog returns the standard set of test signals of length n, in a stable
// order. n must be at least 16.
func Catalog(n int) ([]Named, error) {
	if n < 16 {
		return nil, fmt.Errorf("%w: catalog needs at least 16 samples, got %d", ErrInvalidLength, n)
	}
	fn := float64(n)

	type entry struct {
		name, desc string
		gen        func() ([]complex128, error)
	}
	entries := []entry{
		{"sinusoid", "exp(j*2*pi*0.125*n)", func() ([]complex128, error) {
			return ComplexSinusoid(n, 0.125)
		}},
		{"chirp", "linear chirp 0.05 -> 0.2", func() ([]complex128, error) {
			return LinearChirp(n, 0.05, 0.2)
		}},
		{"fm", "sinusoidal FM around 0.125", func() ([]complex128, error) {
			return SinusoidalFM(n, 0.125, 0.06, 2/fn)
		}},
		{"two-tones", "exp(j*2*pi*0.05*n) + exp(j*2*pi*0.2*n)", func() ([]complex128, error) {
			a, err := ComplexSinusoid(n, 0.05)
			if err != nil {
				return nil, err
			}
			b, err := ComplexSinusoid(n, 0.2)
			if err != nil {
				return nil, err
			}
			return Sum(a, b)
		}},
		{"atoms", "two Gaussian atoms at n/4 and 3n/4", func() ([]complex128, error) {
			a, err := GaussianAtom(n, fn/4, fn/32, 0.125)
			if err != nil {
				return nil, err
			}
			b, err := GaussianAtom(n, 3*fn/4, fn/32, 0.125)
			if err != nil {
				return nil, err
			}
			return Sum(a, b)
		}},
		{"impulse", "delta(n - N/2)", func() ([]complex128, error) {
			return Impulse(n, n/2)
		}},
	}

	out := make([]Named, 0, len(entries))
	for _, e := range entries {
		x, err := e.gen()
		if err != nil {
			return nil, fmt.Errorf("signal %s: %w", e.name, err)
		}
		out = append(out, Named{Name: e.name, Description: e.desc, Samples: x})
	}
	return out, nil
}

// Lookup returns the catalog signal with the given name
func Lookup(name string, n int) (Named, error) {
	all, err := Catalog(n)
	if err != nil {
		return Named{}, err
	}
	for _, s := range all {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Named{}, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}
