// Package compose sums multipolar strain modes into the two polarizations
// observed by a detector at a given distance and sky orientation.
//
// Modes are given in geometric units rescaled by the total mass M, as
// amplitude A_lm(t) and phase phi_lm(t) with h_lm = A_lm exp(-i phi_lm).
// The observed strain is
//
//	h_+ - i h_x = (M/D) sum_lm h_lm  -2Y_lm(iota, phi)
//
// with M in metres and D the luminosity distance. Time is converted to
// seconds with M.
//
// Spin-weighted spherical harmonics are built from Wigner-d functions,
// following Ajith et al., arXiv:0709.0093.
//
// # Usage
//
//	pol, err := compose.Strain(modes, 60, 100, math.Pi/3, 0, compose.WithNegativeModes())
//
// Distances are in megaparsecs unless [WithDistanceUnit] says otherwise.
package compose
