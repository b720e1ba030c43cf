// Package units describes systems of units by their length, time and mass
// units, and provides the physical constants used to convert simulation
// output in geometric units (c = G = M_sun = 1) to SI.
//
// A [System] is absolute when its base units are read as SI values, or a
// transformation when read relative to another system; [System.Div] builds
// the latter from two of the former.
//
// # Usage
//
//	cu := units.Cactus
//	km := 1e3 / cu.Length()       // one kilometre in code units
//	hz := units.FreqToHz(0.05, 2.7) // dimensionless M*f to Hz
package units
