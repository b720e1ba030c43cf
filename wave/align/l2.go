package align

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gw/wave/interp"
	"gonum.org/v1/gonum/optimize"
)

const (
	defaultTolerance       = 1e-9
	defaultMaxIterations   = 400
	defaultStallIterations = 20
)

// L2Result is the outcome of [MinPhaseDiffL2].
type L2Result struct {
	// Resampled is p2 shifted by DeltaT and DeltaPhi, on t1.
	Resampled []float64
	DeltaPhi  float64
	DeltaT    float64
	// Residual is p1 - Resampled.
	Residual []float64
	// Cost is the L2 distance at the returned point.
	Cost float64
	// Converged is false when the iteration budget ran out first.
	Converged bool
}

type l2Config struct {
	guess    [2]float64
	tol      float64
	maxIters int
}

// Option configures [MinPhaseDiffL2].
type Option func(*l2Config)

// WithGuess sets the initial (dt, dphi). The default is (0, 0).
func WithGuess(dt, dphi float64) Option {
	return func(c *l2Config) {
		c.guess = [2]float64{dt, dphi}
	}
}

// WithTolerance sets the absolute cost tolerance used to stop the simplex.
func WithTolerance(tol float64) Option {
	return func(c *l2Config) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

// WithMaxIterations bounds the number of simplex iterations.
func WithMaxIterations(n int) Option {
	return func(c *l2Config) {
		if n > 0 {
			c.maxIters = n
		}
	}
}

// MinPhaseDiffL2 finds the time shift dt and phase shift dphi minimising
//
//	sum over window[0] <= t1 <= window[1] of (p1 - p2(t1 + dt) - dphi)^2
//
// integrated with the unit-spacing trapezoid rule, where p2(t1+dt) is p2
// resampled on t1 from the grid t2-dt. The minimiser is Nelder-Mead and may
// settle in a local minimum; when the iteration budget is exhausted the best
// point found is returned without error.
func MinPhaseDiffL2(t1, p1, t2, p2 []float64, window [2]float64, opts ...Option) (L2Result, error) {
	if len(t1) != len(p1) || len(t2) != len(p2) {
		return L2Result{}, fmt.Errorf("%w: 1=%d/%d 2=%d/%d", ErrLengthMismatch, len(t1), len(p1), len(t2), len(p2))
	}
	if len(t1) < 2 || len(t2) < 2 {
		return L2Result{}, ErrTooShort
	}

	lo, hi := windowIndices(t1, window)
	if hi-lo < 2 {
		return L2Result{}, fmt.Errorf("%w: fewer than two samples in [%g, %g]", ErrInvalidWindow, window[0], window[1])
	}

	cfg := l2Config{tol: defaultTolerance, maxIters: defaultMaxIterations}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	shifted := make([]float64, len(t2))
	cost := func(x []float64) float64 {
		for i, v := range t2 {
			shifted[i] = v - x[0]
		}
		p2i, err := interp.Resample(t1[lo:hi], shifted, p2)
		if err != nil {
			return math.Inf(1)
		}
		var sum float64
		prev := p1[lo] - p2i[0] - x[1]
		prev *= prev
		for i := 1; i < len(p2i); i++ {
			d := p1[lo+i] - p2i[i] - x[1]
			d *= d
			sum += 0.5 * (prev + d)
			prev = d
		}
		return sum
	}

	problem := optimize.Problem{Func: cost}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.tol,
			Iterations: defaultStallIterations,
		},
		MajorIterations: cfg.maxIters,
	}

	res, err := optimize.Minimize(problem, cfg.guess[:], settings, &optimize.NelderMead{})
	if res == nil {
		return L2Result{}, fmt.Errorf("align: simplex minimisation failed: %w", err)
	}

	dt, dphi := res.X[0], res.X[1]
	p2i, err := interp.Resample(t1, interp.Shifted(t2, -dt), p2)
	if err != nil {
		return L2Result{}, err
	}

	out := L2Result{
		Resampled: make([]float64, len(t1)),
		Residual:  make([]float64, len(t1)),
		DeltaPhi:  dphi,
		DeltaT:    dt,
		Cost:      res.F,
		Converged: converged(res.Status),
	}
	for i := range t1 {
		out.Resampled[i] = p2i[i] + dphi
		out.Residual[i] = p1[i] - out.Resampled[i]
	}
	return out, nil
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.FunctionConvergence, optimize.MethodConverge:
		return true
	default:
		return false
	}
}

// windowIndices returns [lo, hi) such that window[0] <= t[i] <= window[1]
// for lo <= i < hi. t must be increasing.
func windowIndices(t []float64, window [2]float64) (int, int) {
	lo := 0
	for lo < len(t) && t[lo] < window[0] {
		lo++
	}
	hi := lo
	for hi < len(t) && t[hi] <= window[1] {
		hi++
	}
	return lo, hi
}
