package integrate

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-gw/wave/series"
	"github.com/cwbudde/algo-gw/wave/taper"
	"golang.org/x/sync/errgroup"
)

const defaultUniformTolerance = 1e-6

type config struct {
	cutoff      float64
	uniformTol  float64
	concurrency int
	window      func(n int) ([]float64, error)
}

// Option configures strain recovery.
type Option func(*config)

// WithCutoff overrides the cutoff derived from the mode's initial frequency.
func WithCutoff(cutoff float64) Option {
	return func(c *config) {
		if cutoff > 0 {
			c.cutoff = cutoff
		}
	}
}

// WithUniformTolerance sets the relative tolerance used to accept a time
// grid as uniformly sampled.
func WithUniformTolerance(tol float64) Option {
	return func(c *config) {
		if tol >= 0 {
			c.uniformTol = tol
		}
	}
}

// WithTaper multiplies Psi4 by a Tukey window with tapered fraction alpha
// before integration. alpha = 0 disables the taper. The window is applied
// to Psi4 only; the recovered strain is not windowed a second time.
func WithTaper(alpha float64) Option {
	return func(c *config) {
		if alpha == 0 {
			c.window = nil
			return
		}
		c.window = func(n int) ([]float64, error) { return taper.Tukey(n, alpha) }
	}
}

// WithPlanckTaper is [WithTaper] with a Planck-taper window of edge
// fraction eps. eps = 0 disables the taper.
func WithPlanckTaper(eps float64) Option {
	return func(c *config) {
		if eps == 0 {
			c.window = nil
			return
		}
		c.window = func(n int) ([]float64, error) { return taper.Planck(n, eps) }
	}
}

// WithConcurrency limits how many modes [StrainBundle] integrates at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		uniformTol:  defaultUniformTolerance,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// StrainFromPsi4 double-integrates a Psi4 mode into a strain mode.
//
// The cutoff is [Cutoff] of the mode's initial frequency unless
// [WithCutoff] is given. The time grid must be uniform.
func StrainFromPsi4(mode series.Mode, opts ...Option) (series.Mode, error) {
	return strainFromPsi4(mode, applyOptions(opts))
}

func strainFromPsi4(mode series.Mode, cfg config) (series.Mode, error) {
	if mode.Props.Kind != series.KindPsi4 {
		return series.Mode{}, fmt.Errorf("%w: mode %v is %v", ErrWrongKind, mode.Key, mode.Props.Kind)
	}

	dt, err := mode.Series.UniformStep(cfg.uniformTol)
	if err != nil {
		return series.Mode{}, fmt.Errorf("mode %v: %w", mode.Key, err)
	}

	cutoff := cfg.cutoff
	if cutoff == 0 {
		cutoff = Cutoff(mode.Props.InitFrequency, mode.Key.M)
	}

	psi4 := mode.Series.Values
	if cfg.window != nil {
		w, err := cfg.window(len(psi4))
		if err != nil {
			return series.Mode{}, fmt.Errorf("mode %v: %w", mode.Key, err)
		}
		if psi4, err = taper.Apply(psi4, w); err != nil {
			return series.Mode{}, fmt.Errorf("mode %v: %w", mode.Key, err)
		}
	}

	h, err := FixedFreq2(psi4, cutoff, dt)
	if err != nil {
		return series.Mode{}, fmt.Errorf("mode %v: %w", mode.Key, err)
	}

	out := series.TimeSeries{
		Time:   append([]float64(nil), mode.Series.Time...),
		Values: h,
	}
	return mode.WithSeries(series.KindStrain, out), nil
}

// StrainBundle applies [StrainFromPsi4] to every mode of b.
//
// Modes are integrated concurrently; the first failure cancels the rest and
// is returned. The result keeps the key order of b.
func StrainBundle(ctx context.Context, b *series.Bundle, opts ...Option) (*series.Bundle, error) {
	cfg := applyOptions(opts)
	modes := b.Modes()
	out := make([]series.Mode, len(modes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, m := range modes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := strainFromPsi4(m, cfg)
			if err != nil {
				return err
			}
			out[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series.NewBundle(out...)
}
