// Package integrate recovers strain from curvature data by fixed-frequency
// integration in the frequency domain (Reisswig & Pollney, Class. Quantum
// Grav. 28 (2011) 195015).
//
// Time-domain integration of Psi4 amplifies low-frequency noise and
// integration constants into secular drifts. Dividing by i*2*pi*f in the
// frequency domain avoids the drift, but diverges at f = 0. The fixed
// frequency method clamps every bin with |f| < cutoff to ±cutoff before the
// division:
//
//	h(t) = IFFT( -FFT(psi4) / (2*pi*f_c)^2 ),  f_c = sign(f) * max(|f|, cutoff)
//
// The cutoff is physical, not numerical: roughly twice the initial orbital
// frequency divided by max(1, |m|), see [Cutoff].
//
// # Usage
//
//	h, err := integrate.FixedFreq2(psi4, cutoff, dt)
//
// For a whole bundle of Psi4 modes:
//
//	strain, err := integrate.StrainBundle(ctx, psi4Bundle)
//
// Inputs must be uniformly sampled; the routines do not resample.
package integrate
