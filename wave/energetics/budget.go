package energetics

import (
	"errors"
	"fmt"
)

// ErrInvalidBinary is returned for non-positive component masses.
var ErrInvalidBinary = errors.New("energetics: component masses must be positive")

// ColumnHeader names the columns returned by [Columns].
const ColumnHeader = "J_orb:0 E_b:1 u/M:2 E_rad:3 J_rad:4 t:5"

// Binary describes the initial data of a compact binary.
type Binary struct {
	M1, M2 float64
	MADM   float64
	JADM   float64
}

// Budget is the binding energy per reduced mass and the orbital angular
// momentum per m1*m2, as functions of time.
type Budget struct {
	Eb   []float64
	Jorb []float64
}

// Normalize converts the radiated totals of rec into a binding-energy
// budget:
//
//	E_b   = (M_ADM - E_rad - m1 - m2) / (m1 m2 / (m1 + m2))
//	J_orb = (J_ADM - J_rad) / (m1 m2)
func Normalize(rec *Record, bin Binary) (Budget, error) {
	if !(bin.M1 > 0) || !(bin.M2 > 0) {
		return Budget{}, fmt.Errorf("%w: m1=%g m2=%g", ErrInvalidBinary, bin.M1, bin.M2)
	}

	mu := bin.M1 * bin.M2 / (bin.M1 + bin.M2)
	q := bin.M1 * bin.M2
	n := len(rec.Total.Energy)

	out := Budget{Eb: make([]float64, n), Jorb: make([]float64, n)}
	for i := range n {
		out.Eb[i] = (bin.MADM - rec.Total.Energy[i] - bin.M1 - bin.M2) / mu
		out.Jorb[i] = (bin.JADM - rec.Total.AngMom[i]) / q
	}
	return out, nil
}

// Columns lays out b and rec as the columns of [ColumnHeader]. u is the
// retarded time in units of the total mass, one value per sample.
func Columns(b Budget, rec *Record, u []float64) ([][]float64, error) {
	n := len(rec.Time)
	for _, c := range []struct {
		name string
		v    []float64
	}{{"J_orb", b.Jorb}, {"E_b", b.Eb}, {"u/M", u}} {
		if len(c.v) != n {
			return nil, fmt.Errorf("%w: column %s has %d samples, grid has %d", ErrGridMismatch, c.name, len(c.v), n)
		}
	}
	return [][]float64{
		b.Jorb,
		b.Eb,
		u,
		rec.Total.Energy,
		rec.Total.AngMom,
		rec.Time,
	}, nil
}
