package main

import (
	"fmt"

	"github.com/cwbudde/algo-gw/internal/wavefile"
	"github.com/cwbudde/algo-gw/wave/extrap"
	"github.com/cwbudde/algo-gw/wave/integrate"
	"github.com/cwbudde/algo-gw/wave/series"
	"github.com/spf13/cobra"
)

type strainFlags struct {
	in, out string
	l, m    int
	f0      float64
	cutoff  float64
	radius  float64
	mass    float64
	taper   float64
	planck  float64
	extrap  bool
}

func newStrainCmd() *cobra.Command {
	var f strainFlags
	cmd := &cobra.Command{
		Use:   "strain",
		Short: "recover strain from a Psi4 mode by fixed-frequency integration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStrain(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "Psi4 column file (t, Re, Im)")
	cmd.Flags().StringVar(&f.out, "out", "-", "output file")
	cmd.Flags().IntVar(&f.l, "l", 2, "multipole l")
	cmd.Flags().IntVar(&f.m, "m", 2, "multipole m")
	cmd.Flags().Float64Var(&f.f0, "f0", 0, "initial GW frequency (geometric units)")
	cmd.Flags().Float64Var(&f.cutoff, "cutoff", 0, "integration cutoff; default 2 f0 / max(1,|m|)")
	cmd.Flags().Float64Var(&f.radius, "radius", 0, "extraction radius")
	cmd.Flags().Float64Var(&f.mass, "mass", 1, "ADM mass")
	cmd.Flags().Float64Var(&f.taper, "taper", 0, "Tukey taper fraction applied to Psi4 before integration")
	cmd.Flags().Float64Var(&f.planck, "planck", 0, "Planck taper edge fraction; overrides --taper")
	cmd.Flags().BoolVar(&f.extrap, "extrap", false, "extrapolate Psi4 to infinite radius first")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runStrain(cmd *cobra.Command, f strainFlags) error {
	cols, err := wavefile.ReadFile(f.in)
	if err != nil {
		return err
	}
	s, err := wavefile.Series(cols, 0, 1, 2)
	if err != nil {
		return fmt.Errorf("%s: %w", f.in, err)
	}

	key := series.ModeKey{L: f.l, M: f.m}
	if f.extrap {
		v, err := extrap.ToInfiniteRadius(s.Time, s.Values, f.radius, f.l, f.m, f.mass)
		if err != nil {
			return err
		}
		s.Values = v
	}

	mode, err := series.NewMode(key, series.Props{
		Kind:          series.KindPsi4,
		Radius:        f.radius,
		Mass:          f.mass,
		InitFrequency: f.f0,
	}, s)
	if err != nil {
		return err
	}

	var opts []integrate.Option
	if f.cutoff > 0 {
		opts = append(opts, integrate.WithCutoff(f.cutoff))
	}
	if f.taper > 0 {
		opts = append(opts, integrate.WithTaper(f.taper))
	}
	if f.planck > 0 {
		opts = append(opts, integrate.WithPlanckTaper(f.planck))
	}
	h, err := integrate.StrainFromPsi4(mode, opts...)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("l=%d m=%d r=%g M=%g\nt:0 Re(h):1 Im(h):2", f.l, f.m, f.radius, f.mass)
	return output(cmd, f.out, header, h.Series.Time, h.Series.Real(), h.Series.Imag())
}
