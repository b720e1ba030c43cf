package binary

import (
	"errors"
	"fmt"
	"math"
)

// Binary parameter errors.
var (
	ErrInvalidMass      = errors.New("binary: masses must be positive")
	ErrInsideHorizon    = errors.New("binary: radius must exceed 2M")
	ErrInvalidRatio     = errors.New("binary: symmetric mass ratio must lie in (0, 1/4]")
	ErrUnsupportedFit   = errors.New("binary: no fit for this multipole")
	ErrInvalidMultipole = errors.New("binary: multipole index must be at least 1")
)

// QToNu returns the symmetric mass ratio of mass ratio q.
func QToNu(q float64) float64 {
	return q / ((1 + q) * (1 + q))
}

// NuToQ returns the mass ratio q >= 1 of symmetric mass ratio nu. It is
// +Inf for nu <= 0.
func NuToQ(nu float64) float64 {
	if nu <= 0 {
		return math.Inf(1)
	}
	return (1 + math.Sqrt(1-4*nu) - 2*nu) / (2 * nu)
}

// Fractions are the mass fractions X_i = m_i/M of a binary, ordered so
// that X1 >= X2.
type Fractions struct {
	X1, X2 float64
	M      float64
	Q      float64
	Nu     float64
}

// MassFractions returns the mass fractions of m1 and m2, swapping them if
// m2 is the heavier.
func MassFractions(m1, m2 float64) (Fractions, error) {
	if !(m1 > 0) || !(m2 > 0) {
		return Fractions{}, fmt.Errorf("%w: m1=%g m2=%g", ErrInvalidMass, m1, m2)
	}
	if m2 > m1 {
		m1, m2 = m2, m1
	}
	m := m1 + m2
	x1, x2 := m1/m, m2/m
	return Fractions{X1: x1, X2: x2, M: m, Q: m1 / m2, Nu: x1 * x2}, nil
}

// RetardedTime maps coordinate time t at areal radius r to the retarded
// time u = t - r_*, with the tortoise coordinate
//
//	r_* = r + 2M ln(r/(2M) - 1)
func RetardedTime(t []float64, r, m float64) ([]float64, error) {
	if !(m > 0) {
		return nil, fmt.Errorf("%w: M=%g", ErrInvalidMass, m)
	}
	if !(r > 2*m) {
		return nil, fmt.Errorf("%w: r=%g M=%g", ErrInsideHorizon, r, m)
	}
	rs := r + 2*m*math.Log(r/(2*m)-1)
	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = v - rs
	}
	return out, nil
}

// CLM is the leading-order mass dependence c_{l+e}(x1, x2) of the
// Newtonian (l, m) waveform, e = (l+m) mod 2. l >= 2 and |m| <= l.
func CLM(l, m int, x1, x2 float64) float64 {
	p := l + (l+m)%2 - 1
	s := 1.0
	if m%2 != 0 {
		s = -1
	}
	return math.Pow(x2, float64(p)) + s*math.Pow(x1, float64(p))
}

// RWZNorm is the normalization between Regge-Wheeler-Zerilli functions
// and strain modes, sqrt((l+2)(l+1)l(l-1)).
func RWZNorm(l int) float64 {
	return math.Sqrt(float64((l + 2) * (l + 1) * l * (l - 1)))
}

// BindingEnergy returns the reduced binding energy and the dimensionless
// orbital angular momentum of a binary of total mass m and symmetric mass
// ratio nu after radiating erad and jrad:
//
//	E_b = ((M_ADM - E_rad)/M - 1)/nu
//	j   = (J_ADM - J_rad)/(M^2 nu)
func BindingEnergy(nu, m, madm, jadm, erad, jrad float64) (eb, j float64) {
	eb = ((madm-erad)/m - 1) / nu
	j = (jadm - jrad) / (m * m * nu)
	return eb, j
}
