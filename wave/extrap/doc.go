// Package extrap extrapolates waveforms to infinite extraction radius and to
// infinite resolution.
//
// [ToInfiniteRadius] applies the perturbative correction of Lousto et al.,
// Phys. Rev. D 82, 104057 (2010), in the form used by Kiuchi et al.,
// Phys. Rev. D 96, 084060 (2017):
//
//	r_A       = r0 (1 + M/(2 r0))^2
//	psi4_inf  = (1 - 2M/r_A) (psi4 - (l-1)(l+2)/(2 r_A) * int psi4 dt)
//
// [Richardson] combines datasets computed at several grid spacings h under
// the assumption y(h) = y_inf + C h^p.
//
// # Usage
//
//	inf, err := extrap.ToInfiniteRadius(t, rpsi4, 400, 2, 2, 2.7)
//
//	res, err := extrap.Richardson(2, []extrap.Sample{low, mid, high}, 0, true)
//
// Datasets passed to [Richardson] need not share a time grid; each partner
// is linearly resampled onto the grid it is compared against.
package extrap
