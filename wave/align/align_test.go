package align

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gw/internal/testutil"
)

func TestPhaseOffsetRecoversConstantShift(t *testing.T) {
	tt := testutil.UniformGrid(0, 0.5, 400)
	phiB := testutil.QuadraticPhase(tt, 0.1, 0.2, 0.003)
	phiA := make([]float64, len(phiB))
	for i, p := range phiB {
		phiA[i] = p + 0.73
	}

	got := PhaseOffset(tt, 150, phiA, phiB)
	if math.Abs(got-0.73) > 1e-12 {
		t.Fatalf("PhaseOffset = %v, want 0.73", got)
	}
}

func TestPhaseOffsetIgnoresSamplesOutsideWindow(t *testing.T) {
	tt := []float64{-1, 0, 1, 2, 3}
	a := []float64{100, 1, 1, 1, -50}
	b := []float64{0, 0, 0, 0, 0}

	if got := PhaseOffset(tt, 3, a, b); got != 1 {
		t.Fatalf("PhaseOffset = %v, want 1", got)
	}
	if got := PhaseOffset(tt, -5, a, b); !math.IsNaN(got) {
		t.Fatalf("PhaseOffset over empty window = %v, want NaN", got)
	}
}

func TestTimeAndPhaseRecoversShift(t *testing.T) {
	const (
		dt   = 0.1
		tau0 = 1.3
		dph0 = 0.4
	)
	tt := testutil.UniformGrid(-20, dt, 2201)
	phiB := testutil.QuadraticPhase(tt, 0, 0.3, 0.004)

	shifted := make([]float64, len(tt))
	for i, x := range tt {
		shifted[i] = x - tau0
	}
	phiA := testutil.QuadraticPhase(shifted, 0, 0.3, 0.004)
	for i := range phiA {
		phiA[i] += dph0
	}

	res, err := TimeAndPhase(tt, 150, 5, tt, phiA, tt, phiB)
	if err != nil {
		t.Fatalf("TimeAndPhase error: %v", err)
	}
	if math.Abs(res.Tau-tau0) > dt {
		t.Fatalf("tau = %v, want %v within %v", res.Tau, tau0, dt)
	}
	if math.Abs(res.DeltaPhi-dph0) > 1e-6 {
		t.Fatalf("dphi = %v, want %v", res.DeltaPhi, dph0)
	}
	if res.Chi2 > 1e-12 {
		t.Fatalf("chi2 = %v, want ~0", res.Chi2)
	}
}

func TestTimeAndPhaseReachesTauMax(t *testing.T) {
	const dt = 0.1
	// Starting at -20 makes t[1]-t[0] slightly above 0.1.
	tt := testutil.UniformGrid(-20, dt, 2201)
	phiB := testutil.QuadraticPhase(tt, 0, 0.3, 0.004)

	for _, tc := range []struct {
		tau0, tauMax float64
	}{
		{2, 2},
		{5, 5},
		{4.91, 5},
		{-2, 2},
	} {
		shifted := make([]float64, len(tt))
		for i, x := range tt {
			shifted[i] = x - tc.tau0
		}
		phiA := testutil.QuadraticPhase(shifted, 0, 0.3, 0.004)

		res, err := TimeAndPhase(tt, 150, tc.tauMax, tt, phiA, tt, phiB)
		if err != nil {
			t.Fatalf("tau0=%v: TimeAndPhase error: %v", tc.tau0, err)
		}
		if math.Abs(res.Tau-tc.tau0) > dt+1e-12 {
			t.Fatalf("tau0=%v tauMax=%v: tau = %v, more than one step off", tc.tau0, tc.tauMax, res.Tau)
		}
	}
}

func TestTimeAndPhaseTieBreakFirstMinimum(t *testing.T) {
	tt := testutil.UniformGrid(0, 1, 50)
	flat := make([]float64, len(tt))

	res, err := TimeAndPhase(tt, 30, 3, tt, flat, tt, flat)
	if err != nil {
		t.Fatalf("TimeAndPhase error: %v", err)
	}
	if res.Tau != -3 {
		t.Fatalf("tau = %v, want -3 (first of equal minima)", res.Tau)
	}
}

func TestPhaseOffsetLengthMismatch(t *testing.T) {
	tt := []float64{0, 1, 2}
	if got := PhaseOffset(tt, 3, []float64{1, 1}, []float64{0, 0, 0}); !math.IsNaN(got) {
		t.Fatalf("PhaseOffset = %v, want NaN", got)
	}
	if got := PhaseOffset(tt, 3, []float64{1, 1, 1}, []float64{0}); !math.IsNaN(got) {
		t.Fatalf("PhaseOffset = %v, want NaN", got)
	}
}

func TestTimeAndPhaseErrors(t *testing.T) {
	tt := testutil.UniformGrid(0, 1, 10)
	p := make([]float64, 10)

	tests := []struct {
		name   string
		grid   []float64
		tf     float64
		tauMax float64
		phiA   []float64
		want   error
	}{
		{"short grid", []float64{0}, 5, 2, p, ErrTooShort},
		{"length", tt, 5, 2, p[:3], ErrLengthMismatch},
		{"tau below step", tt, 5, 0.5, p, ErrInvalidWindow},
		{"empty window", tt, -1, 2, p, ErrInvalidWindow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TimeAndPhase(tc.grid, tc.tf, tc.tauMax, tt, tc.phiA, tt, p)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMinPhaseDiffL2(t *testing.T) {
	const (
		dt0   = 0.8
		dphi0 = -0.25
	)
	tt := testutil.UniformGrid(0, 0.05, 2001)
	p2 := testutil.QuadraticPhase(tt, 0.1, 0.3, 0.01)

	ahead := make([]float64, len(tt))
	for i, x := range tt {
		ahead[i] = x + dt0
	}
	p1 := testutil.QuadraticPhase(ahead, 0.1, 0.3, 0.01)
	for i := range p1 {
		p1[i] += dphi0
	}

	res, err := MinPhaseDiffL2(tt, p1, tt, p2, [2]float64{10, 80}, WithGuess(0.5, 0))
	if err != nil {
		t.Fatalf("MinPhaseDiffL2 error: %v", err)
	}
	if math.Abs(res.DeltaT-dt0) > 1e-3 {
		t.Fatalf("DeltaT = %v, want %v", res.DeltaT, dt0)
	}
	if math.Abs(res.DeltaPhi-dphi0) > 1e-3 {
		t.Fatalf("DeltaPhi = %v, want %v", res.DeltaPhi, dphi0)
	}
	if len(res.Residual) != len(tt) || len(res.Resampled) != len(tt) {
		t.Fatalf("output lengths %d/%d, want %d", len(res.Residual), len(res.Resampled), len(tt))
	}
	for i, x := range tt {
		if x < 10 || x > 80 {
			continue
		}
		if math.Abs(res.Residual[i]) > 1e-2 {
			t.Fatalf("residual[%d] = %v at t=%v", i, res.Residual[i], x)
		}
	}
}

func TestMinPhaseDiffL2IterationLimit(t *testing.T) {
	tt := testutil.UniformGrid(0, 0.05, 2001)
	p2 := testutil.QuadraticPhase(tt, 0.1, 0.3, 0.01)
	ahead := make([]float64, len(tt))
	for i, x := range tt {
		ahead[i] = x + 0.8
	}
	p1 := testutil.QuadraticPhase(ahead, 0.1, 0.3, 0.01)
	window := [2]float64{10, 80}

	full, err := MinPhaseDiffL2(tt, p1, tt, p2, window, WithTolerance(1e-10))
	if err != nil {
		t.Fatalf("MinPhaseDiffL2 error: %v", err)
	}
	limited, err := MinPhaseDiffL2(tt, p1, tt, p2, window, WithMaxIterations(1))
	if err != nil {
		t.Fatalf("MinPhaseDiffL2 error: %v", err)
	}
	if limited.Converged {
		t.Fatal("one iteration reported convergence")
	}
	if full.Cost > limited.Cost {
		t.Fatalf("full cost %v above limited cost %v", full.Cost, limited.Cost)
	}
}

func TestMinPhaseDiffL2Errors(t *testing.T) {
	tt := testutil.UniformGrid(0, 1, 10)
	p := make([]float64, 10)

	if _, err := MinPhaseDiffL2(tt, p[:4], tt, p, [2]float64{0, 5}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := MinPhaseDiffL2(tt, p, tt, p, [2]float64{20, 30}); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestUnwrapShift(t *testing.T) {
	x := []float64{0, 1, 2}
	dp := []float64{6.0, 6.5, 7.0}
	got := UnwrapShift(x, dp, 1)
	if math.Abs(got-2*math.Pi) > 1e-15 {
		t.Fatalf("UnwrapShift = %v, want 2*pi", got)
	}
}
