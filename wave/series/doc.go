// Package series provides the waveform data model shared by the analysis
// packages: uniformly or non-uniformly sampled complex time series, the
// (l,m) multipole key, per-mode properties, and ordered mode bundles.
//
// Every type in this package is treated as a value. Operations return new
// slices and never modify their inputs, so a [Bundle] produced by one
// transformation can be handed to several others without copying.
//
// # Grids
//
// A [TimeSeries] requires strictly increasing, duplicate-free sample times.
// Routines that work in the frequency domain additionally require a constant
// step; [TimeSeries.UniformStep] reports that step or [ErrNonUniform].
//
// # Calculus helpers
//
// [Diff1] and [CumTrapz] are second-order finite-difference and cumulative
// trapezoid rules valid on non-uniform grids. They back the derived views
// [TimeSeries.Frequency] and the energetics integrals.
package series
