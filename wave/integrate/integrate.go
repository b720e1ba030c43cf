package integrate

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Integration errors.
var (
	ErrEmptyInput    = errors.New("integrate: signal must not be empty")
	ErrInvalidStep   = errors.New("integrate: sample spacing must be > 0")
	ErrInvalidCutoff = errors.New("integrate: cutoff frequency must be > 0")
	ErrWrongKind     = errors.New("integrate: mode does not carry Psi4")
)

// FixedFreq1 returns the time integral of signal using fixed-frequency
// integration with the given cutoff. The output has the length and spacing
// of the input.
func FixedFreq1(signal []complex128, cutoff, dt float64) ([]complex128, error) {
	if err := validate(signal, cutoff, dt); err != nil {
		return nil, err
	}

	return transform(signal, dt, func(f float64, x complex128) complex128 {
		f = clamp(f, cutoff)
		// X / (i 2 pi f)
		return complex(0, -1) * x / complex(2*math.Pi*f, 0)
	})
}

// FixedFreq2 returns the double time integral of signal, see [FixedFreq1].
func FixedFreq2(signal []complex128, cutoff, dt float64) ([]complex128, error) {
	if err := validate(signal, cutoff, dt); err != nil {
		return nil, err
	}

	return transform(signal, dt, func(f float64, x complex128) complex128 {
		w := 2 * math.Pi * clamp(f, cutoff)
		return -x / complex(w*w, 0)
	})
}

// Differentiate returns the spectral time derivative i*2*pi*f*X of signal.
//
// For content above the cutoff it inverts [FixedFreq1]. The Nyquist bin of
// an even-length signal is treated as a negative frequency.
func Differentiate(signal []complex128, dt float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidStep, dt)
	}

	return transform(signal, dt, func(f float64, x complex128) complex128 {
		return complex(0, 2*math.Pi*f) * x
	})
}

// Frequencies returns the bin frequencies of an n-point transform with
// spacing dt: 0, 1/(n dt), ..., followed by the negative frequencies.
func Frequencies(n int, dt float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * dt)
	half := (n - 1) / 2
	for k := range out {
		if k <= half {
			out[k] = float64(k) * scale
		} else {
			out[k] = float64(k-n) * scale
		}
	}
	return out
}

// Cutoff returns the fixed-frequency cutoff for an (l,m) mode given the
// initial GW frequency f0: 2*f0/max(1,|m|).
func Cutoff(f0 float64, m int) float64 {
	am := m
	if am < 0 {
		am = -am
	}
	return 2 * f0 / float64(max(1, am))
}

func validate(signal []complex128, cutoff, dt float64) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if !(dt > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidStep, dt)
	}
	if !(cutoff > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidCutoff, cutoff)
	}
	return nil
}

// clamp moves f to ±cutoff when |f| < cutoff, keeping its sign. Zero maps
// to +cutoff.
func clamp(f, cutoff float64) float64 {
	switch {
	case f >= 0 && f < cutoff:
		return cutoff
	case f < 0 && f > -cutoff:
		return -cutoff
	default:
		return f
	}
}

// transform applies op to every frequency bin of signal and returns the
// inverse transform.
func transform(signal []complex128, dt float64, op func(f float64, x complex128) complex128) ([]complex128, error) {
	n := len(signal)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("integrate: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, signal); err != nil {
		return nil, fmt.Errorf("integrate: forward FFT failed: %w", err)
	}

	f := Frequencies(n, dt)
	for k := range freq {
		freq[k] = op(f[k], freq[k])
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, freq); err != nil {
		return nil, fmt.Errorf("integrate: inverse FFT failed: %w", err)
	}
	return out, nil
}
