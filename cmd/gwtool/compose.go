package main

import (
	"fmt"

	"github.com/cwbudde/algo-gw/internal/config"
	"github.com/cwbudde/algo-gw/internal/wavefile"
	"github.com/cwbudde/algo-gw/wave/compose"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newComposeCmd() *cobra.Command {
	var (
		path string
		plot bool
	)
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "sum amplitude/phase modes into h+ and hx in SI units",
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := config.Load(path)
			if err != nil {
				return err
			}
			if plot {
				job.Output.Plot = true
			}
			return runCompose(cmd, job)
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "job file")
	cmd.Flags().BoolVar(&plot, "plot", false, "print an ascii preview of h+")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runCompose(cmd *cobra.Command, job *config.Job) error {
	modes := make([]compose.ModeAmpPhase, 0, len(job.Modes))
	for _, mf := range job.Modes {
		cols, err := wavefile.ReadFile(mf.Path)
		if err != nil {
			return err
		}
		if len(cols) < 3 {
			return fmt.Errorf("%s: want columns t, amplitude, phase", mf.Path)
		}
		modes = append(modes, compose.ModeAmpPhase{
			Key:       mf.Key(),
			Time:      cols[0],
			Amplitude: cols[1],
			Phase:     cols[2],
		})
	}

	var opts []compose.Option
	if job.Compose.NegativeModes {
		opts = append(opts, compose.WithNegativeModes())
	}
	pol, err := compose.Strain(modes, job.Source.Mass, job.Compose.Distance,
		job.Compose.Inclination, job.Compose.Phi, opts...)
	if err != nil {
		return err
	}

	if job.Output.Plot {
		graph := asciigraph.Plot(pol.Plus,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("h+ at D=%g Mpc, M=%g Msun", job.Compose.Distance, job.Source.Mass)),
		)
		fmt.Fprintln(cmd.ErrOrStderr(), graph)
	}
	return output(cmd, job.Output.Path, "t[s]:0 h+:1 hx:2", pol.Time, pol.Plus, pol.Cross)
}
