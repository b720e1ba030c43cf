package compose

import (
	"fmt"
	"math"
	"math/cmplx"
)

// MaxL is the largest multipole index the factorial table supports.
const MaxL = 84

var factorial [2*MaxL + 1]float64

func init() {
	factorial[0] = 1
	for i := 1; i < len(factorial); i++ {
		factorial[i] = factorial[i-1] * float64(i)
	}
}

// WignerD returns the Wigner-d function d^l_{m,s}(theta).
//
// It is zero when |m| > l or |s| > l and NaN when l exceeds [MaxL].
func WignerD(l, m, s int, theta float64) float64 {
	if l > MaxL {
		return math.NaN()
	}
	if l < 0 || m < -l || m > l || s < -l || s > l {
		return 0
	}

	c := math.Cos(0.5 * theta)
	sn := math.Sin(0.5 * theta)
	norm := math.Sqrt(factorial[l+m] * factorial[l-m] * factorial[l+s] * factorial[l-s])

	ki := max(0, m-s)
	kf := min(l+m, l-s)

	var sum float64
	for k := ki; k <= kf; k++ {
		term := ipow(c, 2*l+m-s-2*k) * ipow(sn, 2*k+s-m)
		term /= factorial[k] * factorial[l+m-k] * factorial[l-s-k] * factorial[s-m+k]
		if k%2 == 1 {
			term = -term
		}
		sum += term
	}
	return norm * sum
}

// SpinWeightedYlm returns the spin-weighted spherical harmonic sY_lm at
// polar angle theta and azimuth phi:
//
//	sY_lm = (-1)^s sqrt((2l+1)/(4 pi)) d^l_{m,-s}(theta) exp(i m phi)
func SpinWeightedYlm(s, l, m int, theta, phi float64) (complex128, error) {
	if l < 0 || m < -l || m > l {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidMode, l, m)
	}
	if l > MaxL {
		return 0, fmt.Errorf("%w: l = %d exceeds %d", ErrInvalidMode, l, MaxL)
	}

	c := math.Sqrt(float64(2*l+1) / (4 * math.Pi))
	if s%2 != 0 {
		c = -c
	}
	d := c * WignerD(l, m, -s, theta)
	return complex(d, 0) * cmplx.Exp(complex(0, float64(m)*phi)), nil
}

// ipow is x^n for n >= 0, with 0^0 = 1.
func ipow(x float64, n int) float64 {
	r := 1.0
	for ; n > 0; n-- {
		r *= x
	}
	return r
}
