// Package interp resamples sampled data onto new abscissae by piecewise
// linear interpolation.
//
// The semantics match the common scientific convention: sample points xp
// must be increasing, queries inside [xp[0], xp[n-1]] are interpolated
// linearly between the bracketing samples, and queries outside the range
// return the nearest end value. No extrapolation is performed.
//
// [Resample] and [ResampleComplex] work on arbitrary (non-uniform) grids and
// are what the alignment and extrapolation packages use to bring series with
// different time bases onto a common one.
package interp
