package windowing

import (
	"fmt"
	"math"
	"strings"

	dspwindow "github.com/mjibson/go-dsp/window"
	gonumwindow "gonum.org/v1/gonum/dsp/window"
)

// Type identifies a window shape
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBartlett
	TypeBlackman
	TypeGaussian
	TypeBlackmanHarris
	TypeTukey
	TypeKaiser
	TypeWelch
)

const (
	// DefaultGaussianSigma is the Gaussian standard deviation relative to
	// the half-length of the window
	DefaultGaussianSigma = 0.4
	// DefaultTukeyAlpha is the tapered fraction of a Tukey window
	DefaultTukeyAlpha = 0.5
	// DefaultKaiserBeta gives sidelobes near -90 dB
	DefaultKaiserBeta = 8.6
)

var typeNames = map[Type]string{
	TypeRectangular:    "rectangular",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBartlett:       "bartlett",
	TypeBlackman:       "blackman",
	TypeGaussian:       "gaussian",
	TypeBlackmanHarris: "blackman-harris",
	TypeTukey:          "tukey",
	TypeKaiser:         "kaiser",
	TypeWelch:          "welch",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// Types returns every supported window type in declaration order
func Types() []Type {
	return []Type{
		TypeRectangular, TypeHann, TypeHamming, TypeBartlett, TypeBlackman,
		TypeGaussian, TypeBlackmanHarris, TypeTukey, TypeKaiser, TypeWelch,
	}
}

// ParseType resolves a window name. "hanning" and "triangle" are accepted as
// aliases.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "boxcar":
		return TypeRectangular, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "bartlett", "triangle":
		return TypeBartlett, nil
	case "blackman":
		return TypeBlackman, nil
	case "gaussian", "gauss":
		return TypeGaussian, nil
	case "blackman-harris", "blackmanharris", "blackman_harris":
		return TypeBlackmanHarris, nil
	case "tukey", "tapered-cosine":
		return TypeTukey, nil
	case "kaiser":
		return TypeKaiser, nil
	case "welch":
		return TypeWelch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Window holds the coefficients of a tapering sequence.
//
// The default form is symmetric (w[n] == w[size-1-n]), normalised so the
// formula runs over size-1 intervals. The periodic form used for spectral
// analysis is the first size samples of the symmetric window of size+1.
type Window struct {
	typ          Type
	size         int
	symmetric    bool
	sigma        float64
	alpha        float64
	beta         float64
	coefficients []float64
}

// Option configures window generation
type Option func(*Window)

// WithPeriodic selects the periodic (DFT-even) form
func WithPeriodic() Option {
	return func(w *Window) {
		w.symmetric = false
	}
}

// WithSigma sets the Gaussian standard deviation relative to the half-length
func WithSigma(sigma float64) Option {
	return func(w *Window) {
		w.sigma = sigma
	}
}

// WithAlpha sets the tapered fraction of a Tukey window, in [0, 1]. Zero
// gives a rectangular window and one a Hann window.
func WithAlpha(alpha float64) Option {
	return func(w *Window) {
		w.alpha = alpha
	}
}

// WithBeta sets the Kaiser shape parameter
func WithBeta(beta float64) Option {
	return func(w *Window) {
		w.beta = beta
	}
}

// New generates a window of the given type and size
func New(typ Type, size int, opts ...Option) (*Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if _, ok := typeNames[typ]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}

	w := &Window{
		typ:       typ,
		size:      size,
		symmetric: true,
		sigma:     DefaultGaussianSigma,
		alpha:     DefaultTukeyAlpha,
		beta:      DefaultKaiserBeta,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	switch {
	case typ == TypeGaussian && w.sigma <= 0:
		return nil, fmt.Errorf("%w: %f", ErrInvalidSigma, w.sigma)
	case typ == TypeTukey && (w.alpha < 0 || w.alpha > 1):
		return nil, fmt.Errorf("%w: %f", ErrInvalidAlpha, w.alpha)
	case typ == TypeKaiser && w.beta < 0:
		return nil, fmt.Errorf("%w: %f", ErrInvalidBeta, w.beta)
	}

	w.generate()
	return w, nil
}

// Hanning returns the symmetric Hann window of the given length:
//
//	w[n] = 0.5 * (1 - cos(2*pi*n / (length-1))),  n = 0..length-1
//
// Both edge samples are zero and odd lengths peak at exactly 1 in the centre.
// A length of 1 yields [1].
func Hanning(length int) ([]float64, error) {
	w, err := New(TypeHann, length)
	if err != nil {
		return nil, err
	}
	return w.coefficients, nil
}

// Rectangular returns an all-ones window of the given length
func Rectangular(length int) ([]float64, error) {
	w, err := New(TypeRectangular, length)
	if err != nil {
		return nil, err
	}
	return w.coefficients, nil
}

func (w *Window) generate() {
	if w.size == 1 {
		w.coefficients = []float64{1}
		return
	}

	n := w.size
	if !w.symmetric {
		n++
	}

	coeffs := w.symmetricCoefficients(n)

	// Mirror the first half so symmetry holds bit for bit
	for i := 0; i < n/2; i++ {
		coeffs[n-1-i] = coeffs[i]
	}
	for i, c := range coeffs {
		coeffs[i] = min(max(c, 0), 1)
	}

	w.coefficients = coeffs[:w.size]
}

func (w *Window) symmetricCoefficients(n int) []float64 {
	switch w.typ {
	case TypeHann:
		return dspwindow.Hann(n)
	case TypeHamming:
		return dspwindow.Hamming(n)
	case TypeBartlett:
		return dspwindow.Bartlett(n)
	case TypeBlackman:
		return gonumwindow.Blackman(ones(n))
	case TypeGaussian:
		return gonumwindow.Gaussian{Sigma: w.sigma}.Transform(ones(n))
	case TypeBlackmanHarris:
		return gonumwindow.BlackmanHarris(ones(n))
	case TypeTukey:
		return gonumwindow.Tukey{Alpha: w.alpha}.Transform(ones(n))
	case TypeKaiser:
		return kaiser(n, w.beta)
	case TypeWelch:
		return welch(n)
	default:
		return dspwindow.Rectangular(n)
	}
}

func ones(n int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = 1
	}
	return seq
}

// kaiser returns the symmetric Kaiser window I0(beta*sqrt(1-r^2))/I0(beta)
// with r running from -1 to 1
func kaiser(n int, beta float64) []float64 {
	coeffs := make([]float64, n)
	norm := besselI0(beta)
	for i := range coeffs {
		r := 2*float64(i)/float64(n-1) - 1
		coeffs[i] = besselI0(beta*math.Sqrt(max(0, 1-r*r))) / norm
	}
	return coeffs
}

// besselI0 evaluates the zero-order modified Bessel function of the first
// kind by its power series
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	for k := 1; k < 50; k++ {
		h := x / (2 * float64(k))
		term *= h * h
		sum += term
		if term < 1e-12*sum {
			break
		}
	}
	return sum
}

// welch returns the parabolic window 1 - r^2 with r running from -1 to 1
func welch(n int) []float64 {
	coeffs := make([]float64, n)
	half := float64(n-1) / 2
	for i := range coeffs {
		r := (float64(i) - half) / half
		coeffs[i] = 1 - r*r
	}
	return coeffs
}

// Coefficients returns a copy of the window coefficients
func (w *Window) Coefficients() []float64 {
	coeffs := make([]float64, len(w.coefficients))
	copy(coeffs, w.coefficients)
	return coeffs
}

// Size returns the window size
func (w *Window) Size() int {
	return w.size
}

// Type returns the window type
func (w *Window) Type() Type {
	return w.typ
}

// Symmetric reports whether the window uses the symmetric form
func (w *Window) Symmetric() bool {
	return w.symmetric
}
