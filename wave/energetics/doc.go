// Package energetics computes the energy and angular momentum radiated in
// gravitational waves from a multipolar strain.
//
// For every mode (l, m) the fluxes are
//
//	dE/dt = |dh/dt|^2 / (16 pi)
//	dJ/dt = m Im(h conj(dh/dt)) / (16 pi)
//
// and their cumulative time integrals. Modes with m != 0 count twice, which
// accounts for the -m partner when only m >= 0 is supplied. Sums are taken
// over l for each m, then over m.
//
// # Usage
//
//	rec, err := energetics.Compute(h, hdot)
//	budget, err := energetics.Normalize(rec, energetics.Binary{M1: 1.35, M2: 1.35, MADM: 2.678, JADM: 7.859})
//
// All series must share one time grid. A mismatch is an error: the fluxes
// are never silently truncated to a common length.
package energetics
