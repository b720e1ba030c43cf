package align

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gw/wave/interp"
)

// Alignment errors.
var (
	ErrTooShort       = errors.New("align: at least two samples are required")
	ErrLengthMismatch = errors.New("align: time and phase lengths differ")
	ErrInvalidWindow  = errors.New("align: invalid alignment window")
)

// Result is the outcome of a time and phase alignment.
type Result struct {
	Tau      float64
	DeltaPhi float64
	Chi2     float64
}

// PhaseOffset returns the dphi minimising
//
//	chi^2 = sum_i w_i [phiAShifted_i - phiB_i - dphi]^2 dt,  w_i = 1 for 0 <= t_i < tf
//
// on the common grid t, where phiAShifted is phiA already evaluated at
// t+tau. The result is the weighted mean of the difference. A window
// containing no samples, a grid shorter than two points or slices of
// different lengths give NaN.
func PhaseOffset(t []float64, tf float64, phiAShifted, phiB []float64) float64 {
	if len(t) < 2 || len(phiAShifted) != len(t) || len(phiB) != len(t) {
		return math.NaN()
	}
	dt := t[1] - t[0]

	var num, den float64
	for i, x := range t {
		if x < 0 || x >= tf {
			continue
		}
		num += (phiAShifted[i] - phiB[i]) * dt
		den += dt
	}
	return num / den
}

// TimeAndPhase aligns (tA, phiA) to (tB, phiB) on the common grid t.
//
// Shifts tau = i*dt for i in [-N, N], N = floor(tauMax/dt), dt = t[1]-t[0],
// are tried in ascending order. For each, phiA is resampled at t+tau,
// dphi comes from [PhaseOffset], and chi^2 is the window-weighted squared
// residual. The first minimum wins ties. If phiA(t) = phiB(t-tau0) + dphi0
// the result is (tau0, dphi0).
func TimeAndPhase(t []float64, tf, tauMax float64, tA, phiA, tB, phiB []float64) (Result, error) {
	if len(t) < 2 {
		return Result{}, ErrTooShort
	}
	if len(tA) != len(phiA) || len(tB) != len(phiB) {
		return Result{}, fmt.Errorf("%w: a=%d/%d b=%d/%d", ErrLengthMismatch, len(tA), len(phiA), len(tB), len(phiB))
	}

	dt := t[1] - t[0]
	if !(dt > 0) {
		return Result{}, fmt.Errorf("%w: grid step %g", ErrInvalidWindow, dt)
	}
	if !(tf > 0) {
		return Result{}, fmt.Errorf("%w: final time %g", ErrInvalidWindow, tf)
	}
	// tauMax/dt can land just below an integer when dt carries rounding.
	n := int(math.Floor(tauMax/dt + 1e-9))
	if n < 1 {
		return Result{}, fmt.Errorf("%w: tau_max %g below grid step %g", ErrInvalidWindow, tauMax, dt)
	}
	if !hasWindowSamples(t, tf) {
		return Result{}, fmt.Errorf("%w: no samples in [0, %g)", ErrInvalidWindow, tf)
	}

	resB, err := interp.Resample(t, tB, phiB)
	if err != nil {
		return Result{}, err
	}

	best := Result{Chi2: math.Inf(1)}
	for i := -n; i <= n; i++ {
		tau := float64(i) * dt
		// phiA(t+tau) is phiA sampled on the grid tA-tau.
		resA, err := interp.Resample(t, interp.Shifted(tA, -tau), phiA)
		if err != nil {
			return Result{}, err
		}

		dphi := PhaseOffset(t, tf, resA, resB)
		chi2 := windowedChi2(t, tf, dt, resA, resB, dphi)
		if chi2 < best.Chi2 {
			best = Result{Tau: tau, DeltaPhi: dphi, Chi2: chi2}
		}
	}

	if math.IsInf(best.Chi2, 1) {
		return Result{}, fmt.Errorf("%w: chi^2 is not finite for any shift", ErrInvalidWindow)
	}
	return best, nil
}

func hasWindowSamples(t []float64, tf float64) bool {
	for _, x := range t {
		if x >= 0 && x < tf {
			return true
		}
	}
	return false
}

func windowedChi2(t []float64, tf, dt float64, a, b []float64, dphi float64) float64 {
	var sum float64
	for i, x := range t {
		if x < 0 || x >= tf {
			continue
		}
		d := a[i] - b[i] - dphi
		sum += d * d
	}
	return sum * dt
}

// UnwrapShift returns the multiple of pi s = pi*round(dp(t0)/pi) so that
// dp(t0) - s lies within pi/2 of zero. dp is interpolated at t0 on x.
func UnwrapShift(x, dp []float64, t0 float64) float64 {
	dp0 := interp.Linear(x, dp, t0)
	return math.Pi * math.Round(dp0/math.Pi)
}
