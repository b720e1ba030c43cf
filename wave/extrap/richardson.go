package extrap

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-gw/wave/interp"
)

// Sample is one dataset of a convergence study, computed at grid spacing H.
type Sample struct {
	H      float64
	Time   []float64
	Values []float64
}

// Result holds one extrapolated series per Richardson step, the residual of
// that step against its partner, and the grid both live on.
type Result struct {
	Extrapolated [][]float64
	Residuals    [][]float64
	Time         [][]float64
}

func (r *Result) append(t, ye, res []float64) {
	r.Time = append(r.Time, t)
	r.Extrapolated = append(r.Extrapolated, ye)
	r.Residuals = append(r.Residuals, res)
}

// Richardson performs Richardson extrapolation of order p.
//
// With wrtRef set, every sample other than samples[kref] is combined with
// the reference, coarsest first:
//
//	s  = (h_ref/h_k)^p
//	ye = (s y_k - y_ref)/(s - 1),  residual ye - y_ref
//
// with y_k resampled on the reference grid. Otherwise samples are taken in
// the given order as increasing resolution, and each consecutive pair is
// combined on the grid of the coarser one:
//
//	f  = (h_k/h_{k+1})^p
//	ye = (f y_{k+1} - y_k)/(f - 1),  residual ye - y_k
//
// kref is ignored when wrtRef is false.
func Richardson(p float64, samples []Sample, kref int, wrtRef bool) (Result, error) {
	if !(p > 0) {
		return Result{}, fmt.Errorf("%w: %g", ErrInvalidOrder, p)
	}
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}
	for i, s := range samples {
		if len(s.Time) != len(s.Values) {
			return Result{}, fmt.Errorf("%w: sample %d has %d times, %d values", ErrLengthMismatch, i, len(s.Time), len(s.Values))
		}
		if len(s.Time) == 0 {
			return Result{}, fmt.Errorf("%w: sample %d", ErrEmptyInput, i)
		}
	}

	if wrtRef {
		if kref < 0 || kref >= len(samples) {
			return Result{}, fmt.Errorf("%w: %d of %d", ErrInvalidReference, kref, len(samples))
		}
		return againstReference(p, samples, kref)
	}
	return pairwise(p, samples)
}

func againstReference(p float64, samples []Sample, kref int) (Result, error) {
	order := make([]int, 0, len(samples)-1)
	for i := range samples {
		if i != kref {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return samples[order[a]].H > samples[order[b]].H
	})

	ref := samples[kref]
	var out Result
	for _, k := range order {
		s := math.Pow(ref.H/samples[k].H, p)
		ye, res, err := combine(s, samples[k], ref)
		if err != nil {
			return Result{}, fmt.Errorf("sample %d: %w", k, err)
		}
		out.append(append([]float64(nil), ref.Time...), ye, res)
	}
	return out, nil
}

func pairwise(p float64, samples []Sample) (Result, error) {
	var out Result
	for k := 0; k+1 < len(samples); k++ {
		f := math.Pow(samples[k].H/samples[k+1].H, p)
		ye, res, err := combine(f, samples[k+1], samples[k])
		if err != nil {
			return Result{}, fmt.Errorf("samples %d/%d: %w", k, k+1, err)
		}
		out.append(append([]float64(nil), samples[k].Time...), ye, res)
	}
	return out, nil
}

// combine returns (s*y - base)/(s-1) and its difference to base, with y
// resampled on the grid of base.
func combine(s float64, y, base Sample) ([]float64, []float64, error) {
	if s == 1 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, nil, fmt.Errorf("%w: h = %g and %g", ErrDegenerateRatio, y.H, base.H)
	}

	yt, err := interp.Resample(base.Time, y.Time, y.Values)
	if err != nil {
		return nil, nil, err
	}

	d := 1 / (s - 1)
	ye := make([]float64, len(base.Values))
	res := make([]float64, len(base.Values))
	for i, b := range base.Values {
		ye[i] = (s*yt[i] - b) * d
		res[i] = ye[i] - b
	}
	return ye, res, nil
}
