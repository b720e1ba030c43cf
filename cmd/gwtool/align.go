package main

import (
	"fmt"

	"github.com/cwbudde/algo-gw/internal/wavefile"
	"github.com/cwbudde/algo-gw/wave/align"
	"github.com/spf13/cobra"
)

type alignFlags struct {
	a, b   string
	tf     float64
	tauMax float64
	window []float64
}

func newAlignCmd() *cobra.Command {
	var f alignFlags
	cmd := &cobra.Command{
		Use:   "align",
		Short: "find the time shift and phase offset between two waveforms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlign(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.a, "a", "", "first column file (t, Re, Im)")
	cmd.Flags().StringVar(&f.b, "b", "", "second column file (t, Re, Im)")
	cmd.Flags().Float64Var(&f.tf, "tf", 0, "end of the alignment window [0, tf)")
	cmd.Flags().Float64Var(&f.tauMax, "tau-max", 0, "largest time shift tried")
	cmd.Flags().Float64SliceVar(&f.window, "refine", nil, "refine with an L2 fit over window lo,hi")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func runAlign(cmd *cobra.Command, f alignFlags) error {
	var tt, phase [2][]float64
	for i, path := range []string{f.a, f.b} {
		cols, err := wavefile.ReadFile(path)
		if err != nil {
			return err
		}
		s, err := wavefile.Series(cols, 0, 1, 2)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tt[i], phase[i] = s.Time, s.Phase()
	}

	res, err := align.TimeAndPhase(tt[1], f.tf, f.tauMax, tt[0], phase[0], tt[1], phase[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tau\t%g\ndphi\t%g\nchi2\t%g\n", res.Tau, res.DeltaPhi, res.Chi2)

	if len(f.window) == 0 {
		return nil
	}
	if len(f.window) != 2 {
		return fmt.Errorf("--refine wants lo,hi, got %v", f.window)
	}
	l2, err := align.MinPhaseDiffL2(tt[1], phase[1], tt[0], phase[0],
		[2]float64{f.window[0], f.window[1]},
		align.WithGuess(res.Tau, -res.DeltaPhi))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "l2_dt\t%g\nl2_dphi\t%g\nl2_cost\t%g\nconverged\t%v\n", l2.DeltaT, l2.DeltaPhi, l2.Cost, l2.Converged)
	return nil
}
