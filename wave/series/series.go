package series

import (
	"fmt"
	"math"
	"math/cmplx"
)

// TimeSeries is an ordered sequence of complex samples.
//
// Time must be strictly increasing and have the same length as Values.
// Use [TimeSeries.Validate] to check this before handing data to routines
// that rely on it.
type TimeSeries struct {
	Time   []float64
	Values []complex128
}

// New builds a validated TimeSeries from separate real and imaginary
// columns, the layout waveform files usually carry.
func New(t, re, im []float64) (TimeSeries, error) {
	if len(t) != len(re) || len(t) != len(im) {
		return TimeSeries{}, fmt.Errorf("%w: time=%d re=%d im=%d", ErrLengthMismatch, len(t), len(re), len(im))
	}

	ts := TimeSeries{
		Time:   append([]float64(nil), t...),
		Values: make([]complex128, len(t)),
	}
	for i := range t {
		ts.Values[i] = complex(re[i], im[i])
	}

	if err := ts.Validate(); err != nil {
		return TimeSeries{}, err
	}

	return ts, nil
}

// Len returns the sample count.
func (s TimeSeries) Len() int { return len(s.Time) }

// Validate checks the length and monotonicity invariants.
func (s TimeSeries) Validate() error {
	if len(s.Time) == 0 {
		return ErrEmptySeries
	}

	if len(s.Time) != len(s.Values) {
		return fmt.Errorf("%w: time=%d values=%d", ErrLengthMismatch, len(s.Time), len(s.Values))
	}

	for i := 1; i < len(s.Time); i++ {
		if !(s.Time[i] > s.Time[i-1]) {
			return fmt.Errorf("%w: t[%d]=%g, t[%d]=%g", ErrNonMonotonic, i-1, s.Time[i-1], i, s.Time[i])
		}
	}

	return nil
}

// UniformStep returns the constant sample spacing of the series.
//
// Every step must match the first one within relTol (relative). relTol = 0
// demands exact equality, which is rarely what callers want for grids read
// from text files.
func (s TimeSeries) UniformStep(relTol float64) (float64, error) {
	return UniformStep(s.Time, relTol)
}

// UniformStep returns the constant spacing of t, see [TimeSeries.UniformStep].
func UniformStep(t []float64, relTol float64) (float64, error) {
	if relTol < 0 {
		return 0, ErrInvalidTolerance
	}

	if len(t) < 2 {
		return 0, ErrTooShort
	}

	dt := t[1] - t[0]
	if dt <= 0 {
		return 0, fmt.Errorf("%w: t[0]=%g, t[1]=%g", ErrNonMonotonic, t[0], t[1])
	}

	for i := 2; i < len(t); i++ {
		step := t[i] - t[i-1]
		if math.Abs(step-dt) > relTol*dt {
			return 0, fmt.Errorf("%w: step %d is %g, first step %g", ErrNonUniform, i, step, dt)
		}
	}

	return dt, nil
}

// Real returns the real parts of the samples.
func (s TimeSeries) Real() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = real(v)
	}
	return out
}

// Imag returns the imaginary parts of the samples.
func (s TimeSeries) Imag() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = imag(v)
	}
	return out
}

// Amplitude returns |z| for every sample.
func (s TimeSeries) Amplitude() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = cmplx.Abs(v)
	}
	return out
}

// Phase returns the unwrapped phase with the waveform sign convention
// phi = -unwrap(arg z), so a z = A exp(-i phi) signal has increasing phi.
func (s TimeSeries) Phase() []float64 {
	arg := make([]float64, len(s.Values))
	for i, v := range s.Values {
		arg[i] = cmplx.Phase(v)
	}

	out := Unwrap(arg)
	for i := range out {
		out[i] = -out[i]
	}
	return out
}

// Frequency returns d(Phase)/dt using [Diff1].
func (s TimeSeries) Frequency() ([]float64, error) {
	return Diff1(s.Time, s.Phase())
}

// Clone returns a deep copy.
func (s TimeSeries) Clone() TimeSeries {
	return TimeSeries{
		Time:   append([]float64(nil), s.Time...),
		Values: append([]complex128(nil), s.Values...),
	}
}

// SameGrid reports whether a and b hold bitwise identical sample times.
func SameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
