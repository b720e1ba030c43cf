package energetics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gw/wave/series"
	"github.com/cwbudde/algo-vecmath"
)

// Energetics errors.
var (
	ErrGridMismatch = errors.New("energetics: modes do not share a time grid")
	ErrMissingMode  = errors.New("energetics: mode has no derivative partner")
	ErrNoModes      = errors.New("energetics: no modes")
)

const fluxNorm = 1 / (16 * math.Pi)

// ModeFlux holds fluxes and their time integrals on the record's grid.
type ModeFlux struct {
	EnergyFlux []float64
	Energy     []float64
	AngMomFlux []float64
	AngMom     []float64
}

// Record is the radiated energy and angular momentum of a bundle.
//
// Modes holds the unweighted contribution of every (l, m). ByM holds the
// sum over l for each m including the factor 2 for m != 0. Total is the
// sum of ByM.
type Record struct {
	Time  []float64
	Modes map[series.ModeKey]ModeFlux
	ByM   map[int]ModeFlux
	Total ModeFlux
}

// Compute returns the energetics of the strain modes h with time
// derivatives hdot. Every key of h must be present in hdot. A nil or empty
// h, or a nil hdot, gives [ErrNoModes].
func Compute(h, hdot *series.Bundle) (*Record, error) {
	if h == nil || h.Len() == 0 || hdot == nil {
		return nil, ErrNoModes
	}

	keys := h.Keys()
	first, _ := h.Get(keys[0])
	t := first.Series.Time
	n := len(t)

	rec := &Record{
		Time:  append([]float64(nil), t...),
		Modes: make(map[series.ModeKey]ModeFlux, len(keys)),
		ByM:   make(map[int]ModeFlux),
		Total: newFlux(n),
	}

	for _, key := range keys {
		hm, _ := h.Get(key)
		dm, ok := hdot.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingMode, key)
		}
		if !series.SameGrid(t, hm.Series.Time) || !series.SameGrid(t, dm.Series.Time) {
			return nil, fmt.Errorf("%w: mode %v", ErrGridMismatch, key)
		}
		if len(hm.Series.Values) != n || len(dm.Series.Values) != n {
			return nil, fmt.Errorf("%w: mode %v has %d/%d samples, grid has %d",
				ErrGridMismatch, key, len(hm.Series.Values), len(dm.Series.Values), n)
		}

		f, err := modeFlux(t, key.M, hm.Series, dm.Series)
		if err != nil {
			return nil, fmt.Errorf("mode %v: %w", key, err)
		}
		rec.Modes[key] = f

		acc, ok := rec.ByM[key.M]
		if !ok {
			acc = newFlux(n)
			rec.ByM[key.M] = acc
		}
		acc.accumulate(f, multiplicity(key.M), n)
	}

	for _, m := range h.MValues() {
		rec.Total.accumulate(rec.ByM[m], 1, n)
	}
	return rec, nil
}

// ComputeFromStrain derives dh/dt of every mode of h with [series.Diff1]
// and calls [Compute].
func ComputeFromStrain(h *series.Bundle) (*Record, error) {
	if h == nil || h.Len() == 0 {
		return nil, ErrNoModes
	}

	var hdot series.Bundle
	for _, m := range h.Modes() {
		d, err := series.Diff1Complex(m.Series.Time, m.Series.Values)
		if err != nil {
			return nil, fmt.Errorf("mode %v: %w", m.Key, err)
		}
		s := series.TimeSeries{Time: m.Series.Time, Values: d}
		if err := hdot.Add(m.WithSeries(m.Props.Kind, s)); err != nil {
			return nil, err
		}
	}
	return Compute(h, &hdot)
}

// multiplicity is 2 for m != 0, counting the -m mode.
func multiplicity(m int) float64 {
	if m == 0 {
		return 1
	}
	return 2
}

func newFlux(n int) ModeFlux {
	return ModeFlux{
		EnergyFlux: make([]float64, n),
		Energy:     make([]float64, n),
		AngMomFlux: make([]float64, n),
		AngMom:     make([]float64, n),
	}
}

// accumulate adds w*src to f.
func (f ModeFlux) accumulate(src ModeFlux, w float64, n int) {
	tmp := make([]float64, n)
	for _, p := range [...]struct{ dst, src []float64 }{
		{f.EnergyFlux, src.EnergyFlux},
		{f.Energy, src.Energy},
		{f.AngMomFlux, src.AngMomFlux},
		{f.AngMom, src.AngMom},
	} {
		vecmath.ScaleBlock(tmp, p.src, w)
		vecmath.AddBlockInPlace(p.dst, tmp)
	}
}

func modeFlux(t []float64, m int, h, hdot series.TimeSeries) (ModeFlux, error) {
	n := len(t)
	hr, hi := h.Real(), h.Imag()
	dr, di := hdot.Real(), hdot.Imag()

	pow := make([]float64, n)
	vecmath.Power(pow, dr, di)
	edot := make([]float64, n)
	vecmath.ScaleBlock(edot, pow, fluxNorm)

	// Im(h conj(hdot)) = hi*dr - hr*di
	a := make([]float64, n)
	b := make([]float64, n)
	vecmath.MulBlock(a, hi, dr)
	vecmath.MulBlock(b, hr, di)
	for i := range a {
		a[i] -= b[i]
	}
	jdot := make([]float64, n)
	vecmath.ScaleBlock(jdot, a, float64(m)*fluxNorm)

	e, err := series.CumTrapz(t, edot)
	if err != nil {
		return ModeFlux{}, err
	}
	j, err := series.CumTrapz(t, jdot)
	if err != nil {
		return ModeFlux{}, err
	}
	return ModeFlux{EnergyFlux: edot, Energy: e, AngMomFlux: jdot, AngMom: j}, nil
}
