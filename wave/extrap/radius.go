package extrap

import (
	"errors"
	"fmt"
	"math"
)

// Extrapolation errors.
var (
	ErrEmptyInput       = errors.New("extrap: input must not be empty")
	ErrLengthMismatch   = errors.New("extrap: time and value lengths differ")
	ErrInvalidRadius    = errors.New("extrap: extraction radius must be positive")
	ErrInvalidMode      = errors.New("extrap: invalid (l, m) mode")
	ErrInvalidOrder     = errors.New("extrap: convergence order must be positive")
	ErrNoSamples        = errors.New("extrap: no samples")
	ErrInvalidReference = errors.New("extrap: reference index out of range")
	ErrDegenerateRatio  = errors.New("extrap: spacing ratio is one")
)

// ToInfiniteRadius extrapolates the (l, m) mode of r*Psi4 extracted at
// radius r0 to null infinity. madm is the ADM mass of the spacetime.
//
// The time integral is a running sum of psi4_i * (t_i - t_{i-1}) with a
// zero first step, so the first output sample carries no integral term.
func ToInfiniteRadius(t []float64, psi4 []complex128, r0 float64, l, m int, madm float64) ([]complex128, error) {
	if len(psi4) == 0 {
		return nil, ErrEmptyInput
	}
	if len(t) != len(psi4) {
		return nil, fmt.Errorf("%w: %d times, %d samples", ErrLengthMismatch, len(t), len(psi4))
	}
	if !(r0 > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, r0)
	}
	if l < 2 || m < -l || m > l {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidMode, l, m)
	}

	rA := r0 * math.Pow(1+madm/(2*r0), 2)
	c := 1 - 2*madm/rA
	k := complex(float64((l-1)*(l+2))/(2*rA), 0)

	out := make([]complex128, len(psi4))
	var sum complex128
	for i, v := range psi4 {
		if i > 0 {
			sum += v * complex(t[i]-t[i-1], 0)
		}
		out[i] = complex(c, 0) * (v - k*sum)
	}
	return out, nil
}
