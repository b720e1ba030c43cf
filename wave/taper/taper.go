// Package taper builds edge tapers that bring a finite waveform smoothly to
// zero before it is transformed to the frequency domain.
//
// Truncated numerical-relativity data start with junk radiation and end
// abruptly, and the periodic extension a discrete Fourier transform assumes
// turns both edges into broadband artefacts. A taper suppresses them at the
// cost of the first and last few cycles.
package taper

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrInvalidLength   = errors.New("taper: length must be positive")
	ErrInvalidFraction = errors.New("taper: fraction out of range")
	ErrLengthMismatch  = errors.New("taper: signal and coefficients differ in length")
)

// Tukey returns the n-point Tukey (cosine-tapered) window. alpha is the
// tapered fraction of the whole window, split evenly between the edges:
// alpha = 0 is rectangular and alpha = 1 is Hann.
func Tukey(n int, alpha float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if !(alpha >= 0 && alpha <= 1) {
		return nil, fmt.Errorf("%w: tukey alpha must be in [0,1]: %f", ErrInvalidFraction, alpha)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = tukeyAt(position(i, n), alpha)
	}
	return out, nil
}

func tukeyAt(x, alpha float64) float64 {
	if alpha == 0 {
		return 1
	}
	half := 0.5 * alpha
	switch {
	case x < half:
		return 0.5 * (1 - math.Cos(math.Pi*x/half))
	case x > 1-half:
		return 0.5 * (1 - math.Cos(math.Pi*(1-x)/half))
	default:
		return 1
	}
}

// Planck returns the n-point Planck-taper window of McKechan, Robinson and
// Sathyaprakash, Class. Quantum Grav. 27 (2010) 084020. eps in [0, 0.5] is
// the tapered fraction at each edge. The taper is C-infinity and is exactly
// 0 at the end points and 1 on the plateau.
func Planck(n int, eps float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if !(eps >= 0 && eps <= 0.5) {
		return nil, fmt.Errorf("%w: planck eps must be in [0,0.5]: %f", ErrInvalidFraction, eps)
	}

	out := make([]float64, n)
	for i := range out {
		x := position(i, n)
		out[i] = planckAt(math.Min(x, 1-x), eps)
	}
	return out, nil
}

// planckAt evaluates the rising edge at distance x in [0, 0.5] from the
// nearer end.
func planckAt(x, eps float64) float64 {
	switch {
	case x >= eps:
		return 1
	case x <= 0:
		return 0
	}
	z := eps/x + eps/(x-eps)
	if z > 700 {
		return 0
	}
	return 1 / (math.Exp(z) + 1)
}

// position maps sample i of n to [0, 1], end points included.
func position(i, n int) float64 {
	if n == 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Apply returns signal multiplied sample by sample with coeffs.
func Apply(signal []complex128, coeffs []float64) ([]complex128, error) {
	if len(signal) != len(coeffs) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(signal), len(coeffs))
	}

	n := len(signal)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range signal {
		re[i], im[i] = real(v), imag(v)
	}
	vecmath.MulBlockInPlace(re, coeffs)
	vecmath.MulBlockInPlace(im, coeffs)

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}
