package spectral

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation
type Backend int

const (
	// BackendGoDSP uses mjibson/go-dsp, which handles any length
	BackendGoDSP Backend = iota
	// BackendGonum uses gonum's CmplxFFT with plans cached per length
	BackendGonum
)

func (b Backend) String() string {
	switch b {
	case BackendGoDSP:
		return "go-dsp"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend resolves a backend name
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "go-dsp", "godsp":
		return BackendGoDSP, nil
	case "gonum":
		return BackendGonum, nil
	}
	return 0, fmt.Errorf("unknown fft backend %q", name)
}

// FFT provides Fast Fourier Transform functionality.
// Forward transforms are unnormalised with the e^{-j} kernel on both
// backends; inverse transforms carry the 1/N factor.
type FFT struct {
	backend Backend

	mu    sync.Mutex
	plans map[int]*fourier.CmplxFFT
}

// NewFFT creates a new FFT calculator
func NewFFT(backend Backend) *FFT {
	return &FFT{
		backend: backend,
		plans:   make(map[int]*fourier.CmplxFFT),
	}
}

// Backend returns the configured backend
func (f *FFT) Backend() Backend {
	return f.backend
}

// Compute computes the forward transform of a complex sequence
func (f *FFT) Compute(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	if f.backend == BackendGonum {
		return f.plan(len(x)).Coefficients(nil, x)
	}
	return fft.FFT(x)
}

// ComputeReal computes the forward transform of a real sequence
func (f *FFT) ComputeReal(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	if f.backend == BackendGonum {
		in := make([]complex128, len(x))
		for i, v := range x {
			in[i] = complex(v, 0)
		}
		return f.plan(len(x)).Coefficients(nil, in)
	}
	return fft.FFTReal(x)
}

// ComputeInverse computes the inverse transform
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	if f.backend == BackendGonum {
		out := f.plan(len(x)).Sequence(nil, x)
		scale := complex(1/float64(len(x)), 0)
		for i := range out {
			out[i] *= scale
		}
		return out
	}
	return fft.IFFT(x)
}

// plan returns the cached gonum plan for length n. CmplxFFT keeps internal
// work buffers, so a plan must not be shared between goroutines; callers
// running in parallel hold their own FFT.
func (f *FFT) plan(n int) *fourier.CmplxFFT {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.plans[n]
	if !ok {
		p = fourier.NewCmplxFFT(n)
		f.plans[n] = p
	}
	return p
}

// Shift reorders a spectrum so the zero-frequency bin sits at index len/2:
// out[i] = in[(i - len/2) mod len]
func Shift(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	half := n / 2
	for i := range out {
		out[i] = x[(i-half+n)%n]
	}
	return out
}
