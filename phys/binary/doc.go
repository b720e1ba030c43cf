// Package binary collects relations between the parameters of a compact
// binary: mass ratios, retarded time on a Schwarzschild background,
// Newtonian multipole mass factors and tidal polarizability combinations.
//
// Conventions: m1 >= m2, q = m1/m2 >= 1, nu = m1 m2 / M^2. Tidal parameter
// Lambda1 belongs to the primary.
package binary
