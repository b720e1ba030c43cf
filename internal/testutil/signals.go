package testutil

import (
	"math"
	"math/cmplx"
)

// UniformGrid returns n times t0, t0+dt, ...
func UniformGrid(t0, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + dt*float64(i)
	}
	return out
}

// QuadraticPhase returns phi(t) = phi0 + omega*t + 0.5*chirp*t^2 on t.
// The shape mimics an inspiral phase and makes time shifts identifiable.
func QuadraticPhase(t []float64, phi0, omega, chirp float64) []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		out[i] = phi0 + omega*x + 0.5*chirp*x*x
	}
	return out
}

// Harmonic returns amp*exp(-i*2*pi*f*t) sampled on t, a single
// periodic component that circular spectral routines treat exactly when f
// falls on a bin.
func Harmonic(t []float64, amp, f float64) []complex128 {
	out := make([]complex128, len(t))
	for i, x := range t {
		out[i] = complex(amp, 0) * cmplx.Exp(complex(0, -2*math.Pi*f*x))
	}
	return out
}

// Zeros returns n complex zeros.
func Zeros(n int) []complex128 {
	return make([]complex128, n)
}
