// Package align compares two phase evolutions by finding the time shift tau
// and phase offset dphi that bring them together.
//
// Three tools are provided, from closed form to iterative:
//
//   - [PhaseOffset]: the dphi minimising the rectangular-window chi^2 for a
//     fixed shift; this is the window-weighted mean phase difference.
//   - [TimeAndPhase]: a grid search over tau in steps of the sampling
//     interval, with dphi solved in closed form at every step.
//   - [MinPhaseDiffL2]: a Nelder-Mead refinement of (dt, dphi) that
//     minimises the L2 phase distance over a time window.
//
// The grid search returns the global minimum on its grid. The simplex
// refinement may stop in a local minimum; seed it with the grid result.
package align
