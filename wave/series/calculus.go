package series

import (
	"fmt"
	"math"
)

// Diff1 returns dy/dt using second-order finite differences.
//
// Interior points use the three-point centred stencil for non-uniform
// spacing; the end points use second-order one-sided stencils. With only two
// samples both ends fall back to the forward difference.
func Diff1(t, y []float64) ([]float64, error) {
	n := len(t)
	if n != len(y) {
		return nil, fmt.Errorf("%w: time=%d values=%d", ErrLengthMismatch, n, len(y))
	}

	if n < 2 {
		return nil, ErrTooShort
	}

	out := make([]float64, n)
	if n == 2 {
		d := (y[1] - y[0]) / (t[1] - t[0])
		out[0], out[1] = d, d
		return out, nil
	}

	for i := 1; i < n-1; i++ {
		h1 := t[i] - t[i-1]
		h2 := t[i+1] - t[i]
		out[i] = -h2/(h1*(h1+h2))*y[i-1] +
			(h2-h1)/(h1*h2)*y[i] +
			h1/(h2*(h1+h2))*y[i+1]
	}

	h1 := t[1] - t[0]
	h2 := t[2] - t[1]
	out[0] = -(2*h1+h2)/(h1*(h1+h2))*y[0] +
		(h1+h2)/(h1*h2)*y[1] -
		h1/(h2*(h1+h2))*y[2]

	h1 = t[n-2] - t[n-3]
	h2 = t[n-1] - t[n-2]
	out[n-1] = h2/(h1*(h1+h2))*y[n-3] -
		(h1+h2)/(h1*h2)*y[n-2] +
		(2*h2+h1)/(h2*(h1+h2))*y[n-1]

	return out, nil
}

// Diff1Complex applies [Diff1] to the real and imaginary parts of y.
func Diff1Complex(t []float64, y []complex128) ([]complex128, error) {
	re := make([]float64, len(y))
	im := make([]float64, len(y))
	for i, v := range y {
		re[i] = real(v)
		im[i] = imag(v)
	}

	dre, err := Diff1(t, re)
	if err != nil {
		return nil, err
	}

	dim, err := Diff1(t, im)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(y))
	for i := range out {
		out[i] = complex(dre[i], dim[i])
	}
	return out, nil
}

// CumTrapz returns the cumulative trapezoid integral of y over t with the
// first element fixed at zero.
func CumTrapz(t, y []float64) ([]float64, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf("%w: time=%d values=%d", ErrLengthMismatch, len(t), len(y))
	}

	if len(t) == 0 {
		return nil, ErrEmptySeries
	}

	out := make([]float64, len(y))
	for i := 1; i < len(y); i++ {
		out[i] = out[i-1] + 0.5*(t[i]-t[i-1])*(y[i]+y[i-1])
	}
	return out, nil
}

// Unwrap removes 2*pi jumps between consecutive phase samples.
func Unwrap(p []float64) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}

	out[0] = p[0]
	offset := 0.0
	for i := 1; i < len(p); i++ {
		d := p[i] - p[i-1]
		if d > math.Pi || d < -math.Pi {
			offset -= 2 * math.Pi * math.Round(d/(2*math.Pi))
		}
		out[i] = p[i] + offset
	}
	return out
}
