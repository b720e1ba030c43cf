package main

import (
	"fmt"

	"github.com/cwbudde/algo-gw/internal/config"
	"github.com/cwbudde/algo-gw/internal/wavefile"
	"github.com/cwbudde/algo-gw/phys/binary"
	"github.com/cwbudde/algo-gw/wave/energetics"
	"github.com/cwbudde/algo-gw/wave/series"
	"github.com/spf13/cobra"
)

func newEnergeticsCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "energetics",
		Short: "radiated energy and angular momentum from strain modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := config.Load(path)
			if err != nil {
				return err
			}
			return runEnergetics(cmd, job)
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "job file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// loadStrain reads every mode file of job as (t, Re h, Im h).
func loadStrain(job *config.Job) (*series.Bundle, error) {
	props := series.Props{
		Kind:          series.KindStrain,
		Radius:        job.Source.Radius,
		Mass:          job.Source.Mass,
		InitFrequency: job.Source.InitFreq,
	}
	var b series.Bundle
	for _, mf := range job.Modes {
		cols, err := wavefile.ReadFile(mf.Path)
		if err != nil {
			return nil, err
		}
		s, err := wavefile.Series(cols, 0, 1, 2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mf.Path, err)
		}
		m, err := series.NewMode(mf.Key(), props, s)
		if err != nil {
			return nil, err
		}
		if err := b.Add(m); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

func runEnergetics(cmd *cobra.Command, job *config.Job) error {
	h, err := loadStrain(job)
	if err != nil {
		return err
	}
	rec, err := energetics.ComputeFromStrain(h)
	if err != nil {
		return err
	}
	budget, err := energetics.Normalize(rec, energetics.Binary{
		M1:   job.Binary.M1,
		M2:   job.Binary.M2,
		MADM: job.Binary.MADM,
		JADM: job.Binary.JADM,
	})
	if err != nil {
		return err
	}

	mass := job.Source.Mass
	u := make([]float64, len(rec.Time))
	if job.Source.Radius > 2*mass {
		if u, err = binary.RetardedTime(rec.Time, job.Source.Radius, mass); err != nil {
			return err
		}
	} else {
		copy(u, rec.Time)
	}
	for i := range u {
		u[i] /= mass
	}

	cols, err := energetics.Columns(budget, rec, u)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("r=%e\nM=%e\n%s", job.Source.Radius, mass, energetics.ColumnHeader)
	return output(cmd, job.Output.Path, header, cols...)
}
