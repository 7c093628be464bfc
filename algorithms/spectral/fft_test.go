package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertComplexNear(t *testing.T, want, got []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.LessOrEqual(t, cmplx.Abs(want[i]-got[i]), eps, "index %d: want %v got %v", i, want[i], got[i])
	}
}

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for m, v := range x {
			acc += v * cmplx.Exp(complex(0, -2*math.Pi*float64(k*m)/float64(n)))
		}
		out[k] = acc
	}
	return out
}

func TestBackendsAgreeWithDFT(t *testing.T) {
	for _, n := range []int{1, 5, 8, 12, 64} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(math.Sin(0.3*float64(i)), math.Cos(1.7*float64(i)))
		}
		want := naiveDFT(x)

		for _, backend := range []Backend{BackendGoDSP, BackendGonum} {
			t.Run(backend.String(), func(t *testing.T) {
				f := NewFFT(backend)
				assertComplexNear(t, want, f.Compute(x), 1e-9)
				assertComplexNear(t, x, f.ComputeInverse(f.Compute(x)), 1e-9)
			})
		}
	}
}

func TestComputeReal(t *testing.T) {
	x := []float64{1, 2, 3, 4, 0, -1}
	want := naiveDFT([]complex128{1, 2, 3, 4, 0, -1})

	for _, backend := range []Backend{BackendGoDSP, BackendGonum} {
		f := NewFFT(backend)
		assertComplexNear(t, want, f.ComputeReal(x), 1e-9)
	}
}

func TestEmptyInput(t *testing.T) {
	f := NewFFT(BackendGonum)
	assert.Empty(t, f.Compute(nil))
	assert.Empty(t, f.ComputeReal(nil))
	assert.Empty(t, f.ComputeInverse(nil))
}

func TestShift(t *testing.T) {
	even := []complex128{0, 1, 2, 3}
	assert.Equal(t, []complex128{2, 3, 0, 1}, Shift(even))

	odd := []complex128{0, 1, 2, 3, 4}
	assert.Equal(t, []complex128{3, 4, 0, 1, 2}, Shift(odd))
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("gonum")
	require.NoError(t, err)
	assert.Equal(t, BackendGonum, b)

	b, err = ParseBackend("")
	require.NoError(t, err)
	assert.Equal(t, BackendGoDSP, b)

	_, err = ParseBackend("fftw")
	assert.Error(t, err)
}
