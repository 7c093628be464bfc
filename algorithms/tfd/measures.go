package tfd

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Concentration returns the normalised Stankovic concentration measure
//
//	M = (sum sqrt(|D| / E))^2 / (N * L),  E = sum |D|
//
// It lies in (0, 1]: a single non-zero cell gives 1/(N*L), a flat plane gives 1.
// An all-zero distribution returns 0.
func Concentration(d *Distribution) float64 {
	energy := d.Energy()
	if energy == 0 {
		return 0
	}

	var acc float64
	for n := range d.Data {
		for _, v := range d.Column(n) {
			acc += math.Sqrt(v / energy)
		}
	}
	return acc * acc / float64(d.Len()*d.FFTLength)
}

// RenyiEntropy returns the order-alpha Renyi entropy in bits of the
// normalised magnitude plane. alpha = 3 is the customary choice for
// time-frequency distributions.
func RenyiEntropy(d *Distribution, alpha float64) float64 {
	if alpha == 1 || alpha <= 0 {
		return math.NaN()
	}

	values := make([]float64, 0, d.Len()*d.FFTLength)
	for n := range d.Data {
		values = append(values, d.Column(n)...)
	}

	total := floats.Sum(values)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, values)

	var acc float64
	for _, v := range values {
		acc += math.Pow(v, alpha)
	}
	return math.Log2(acc) / (1 - alpha)
}

// Normalize scales a magnitude image so its largest value is 1. An all-zero
// image is returned unchanged.
func Normalize(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.CloneFrom(m)

	peak := mat.Max(&out)
	if peak > 0 {
		out.Scale(1/peak, &out)
	}
	return &out
}

// LogPower converts a magnitude image to 10*log10(|D|^2) with a floor in dB
func LogPower(m *mat.Dense, floorDB float64) *mat.Dense {
	floor := math.Pow(10, floorDB/10.0)

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return 10 * math.Log10(max(v*v, floor))
	}, m)
	return &out
}
