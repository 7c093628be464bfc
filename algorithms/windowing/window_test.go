package windowing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHanningConvention(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 8, 63, 64} {
		w, err := Hanning(n)
		require.NoError(t, err)
		require.Len(t, w, n)

		for i := range w {
			want := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
			assert.InDelta(t, want, w[i], 1e-12, "n=%d i=%d", n, i)
		}
		assert.Zero(t, w[0], "n=%d first sample", n)
		assert.Zero(t, w[n-1], "n=%d last sample", n)
	}
}

func TestHanningOddPeak(t *testing.T) {
	w, err := Hanning(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, w)

	w, err = Hanning(65)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w[32], 1e-15)
}

func TestHanningSingleSample(t *testing.T) {
	w, err := Hanning(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, w)
}

func TestWindowsSymmetricAndBounded(t *testing.T) {
	for _, typ := range Types() {
		for _, n := range []int{1, 2, 5, 16, 31, 64} {
			w, err := New(typ, n)
			require.NoError(t, err, "%v n=%d", typ, n)

			c := w.Coefficients()
			require.Len(t, c, n)
			for i := range c {
				assert.Equal(t, c[i], c[n-1-i], "%v n=%d i=%d", typ, n, i)
				assert.GreaterOrEqual(t, c[i], 0.0)
				assert.LessOrEqual(t, c[i], 1.0)
				assert.False(t, math.IsNaN(c[i]))
			}
		}
	}
}

func TestPeriodicForm(t *testing.T) {
	periodic, err := New(TypeHann, 8, WithPeriodic())
	require.NoError(t, err)
	assert.False(t, periodic.Symmetric())

	longer, err := Hanning(9)
	require.NoError(t, err)

	assert.InDeltaSlice(t, longer[:8], periodic.Coefficients(), 1e-15)
	assert.InDelta(t, 1.0, periodic.Coefficients()[4], 1e-15)
}

func TestGaussianSigma(t *testing.T) {
	narrow, err := New(TypeGaussian, 33, WithSigma(0.2))
	require.NoError(t, err)
	wide, err := New(TypeGaussian, 33, WithSigma(0.8))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, narrow.Coefficients()[16], 1e-12)
	assert.Less(t, narrow.Coefficients()[4], wide.Coefficients()[4])

	_, err = New(TypeGaussian, 33, WithSigma(0))
	assert.ErrorIs(t, err, ErrInvalidSigma)
}

func TestNewErrors(t *testing.T) {
	_, err := New(TypeHann, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Hanning(-3)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(Type(99), 8)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"hann", TypeHann},
		{"Hanning", TypeHann},
		{" hamming ", TypeHamming},
		{"rect", TypeRectangular},
		{"triangle", TypeBartlett},
		{"blackman", TypeBlackman},
		{"gauss", TypeGaussian},
		{"Blackman-Harris", TypeBlackmanHarris},
		{"tukey", TypeTukey},
		{"kaiser", TypeKaiser},
		{"welch", TypeWelch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseType("parzen")
	assert.ErrorIs(t, err, ErrUnknownType)

	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
}

func TestTukeyAlpha(t *testing.T) {
	rect, err := New(TypeTukey, 16, WithAlpha(0))
	require.NoError(t, err)
	assert.Equal(t, mustCoefficients(t, TypeRectangular, 16), rect.Coefficients())

	hann, err := New(TypeTukey, 17, WithAlpha(1))
	require.NoError(t, err)
	assert.InDeltaSlice(t, mustCoefficients(t, TypeHann, 17), hann.Coefficients(), 1e-12)

	half, err := New(TypeTukey, 33)
	require.NoError(t, err)
	c := half.Coefficients()
	assert.Zero(t, c[0])
	assert.Equal(t, 1.0, c[16])
	assert.Equal(t, 1.0, c[12])

	_, err = New(TypeTukey, 16, WithAlpha(1.5))
	assert.ErrorIs(t, err, ErrInvalidAlpha)
}

func TestKaiserBeta(t *testing.T) {
	flat, err := New(TypeKaiser, 16, WithBeta(0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, mustCoefficients(t, TypeRectangular, 16), flat.Coefficients(), 1e-15)

	narrow, err := New(TypeKaiser, 33, WithBeta(12))
	require.NoError(t, err)
	wide, err := New(TypeKaiser, 33, WithBeta(2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, narrow.Coefficients()[16], 1e-12)
	assert.Less(t, narrow.Coefficients()[4], wide.Coefficients()[4])

	// I0(8.6) = 750.46...
	def, err := New(TypeKaiser, 33)
	require.NoError(t, err)
	assert.InDelta(t, 1/750.46, def.Coefficients()[0], 1e-6)

	_, err = New(TypeKaiser, 16, WithBeta(-1))
	assert.ErrorIs(t, err, ErrInvalidBeta)
}

func TestWelchParabola(t *testing.T) {
	w, err := New(TypeWelch, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.75, 1, 0.75, 0}, w.Coefficients(), 1e-15)
}

func TestBlackmanHarrisEdges(t *testing.T) {
	c := mustCoefficients(t, TypeBlackmanHarris, 65)
	assert.InDelta(t, 6e-5, c[0], 1e-6)
	assert.InDelta(t, 1.0, c[32], 1e-12)
}

func mustCoefficients(t *testing.T, typ Type, n int) []float64 {
	t.Helper()
	w, err := New(typ, n)
	require.NoError(t, err)
	return w.Coefficients()
}
