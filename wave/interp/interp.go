package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	errEmptySamples     = errors.New("interp: sample points must not be empty")
	errMismatchedLength = errors.New("interp: sample points and values must have same length")
)

// Linear interpolates (xp, fp) at x. xp must be increasing.
func Linear(xp, fp []float64, x float64) float64 {
	n := len(xp)
	if n == 0 {
		return 0
	}
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}

	// First index with xp[j] > x, so xp[j-1] <= x < xp[j].
	j := sort.Search(n, func(i int) bool { return xp[i] > x })
	return lerp(xp[j-1], xp[j], fp[j-1], fp[j], x)
}

// Resample evaluates (xp, fp) at every x. Queries are processed with a
// forward cursor that restarts when a query falls below the current
// bracket, so resampling onto a sorted grid is linear in len(x)+len(xp)
// and unsorted queries stay correct.
func Resample(x, xp, fp []float64) ([]float64, error) {
	if err := validate(xp, len(fp)); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	n := len(xp)
	j := 1
	for i, q := range x {
		switch {
		case q <= xp[0]:
			out[i] = fp[0]
			continue
		case q >= xp[n-1]:
			out[i] = fp[n-1]
			continue
		}

		if q < xp[j-1] {
			j = 1
		}
		for xp[j] <= q {
			j++
		}
		out[i] = lerp(xp[j-1], xp[j], fp[j-1], fp[j], q)
	}
	return out, nil
}

// ResampleComplex is [Resample] applied to the real and imaginary parts of fp.
func ResampleComplex(x, xp []float64, fp []complex128) ([]complex128, error) {
	if err := validate(xp, len(fp)); err != nil {
		return nil, err
	}

	re := make([]float64, len(fp))
	im := make([]float64, len(fp))
	for i, v := range fp {
		re[i] = real(v)
		im[i] = imag(v)
	}

	rre, err := Resample(x, xp, re)
	if err != nil {
		return nil, err
	}
	rim, err := Resample(x, xp, im)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	for i := range out {
		out[i] = complex(rre[i], rim[i])
	}
	return out, nil
}

// Shifted returns xp+delta, the usual way to express a time shift of a
// series before resampling it.
func Shifted(xp []float64, delta float64) []float64 {
	out := make([]float64, len(xp))
	for i, v := range xp {
		out[i] = v + delta
	}
	return out
}

func validate(xp []float64, nfp int) error {
	if len(xp) == 0 {
		return errEmptySamples
	}
	if len(xp) != nfp {
		return fmt.Errorf("%w: %d vs %d", errMismatchedLength, len(xp), nfp)
	}
	return nil
}

func lerp(x0, x1, y0, y1, x float64) float64 {
	frac := (x - x0) / (x1 - x0)
	return y0 + frac*(y1-y0)
}
