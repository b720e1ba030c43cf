package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-gw/phys/units"
	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "print the geometric solar-mass unit system in SI and CGS",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cgs := units.Cactus.Div(units.CGS)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Quantity\tSI\tCGS")
			for _, row := range []struct {
				name    string
				si, cgs float64
			}{
				{"length", units.Cactus.Length(), cgs.Length()},
				{"time", units.Cactus.Time(), cgs.Time()},
				{"mass", units.Cactus.Mass(), cgs.Mass()},
				{"density", units.Cactus.Density(), cgs.Density()},
				{"energy", units.Cactus.Energy(), cgs.Energy()},
				{"angular momentum", units.Cactus.AngMom(), cgs.AngMom()},
				{"frequency", units.Cactus.Freq(), cgs.Freq()},
			} {
				fmt.Fprintf(w, "%s\t%.6e\t%.6e\n", row.name, row.si, row.cgs)
			}
			fmt.Fprintf(w, "1 km\t%.6e\tM_sun\n", units.KmCactus)
			fmt.Fprintf(w, "1 ms\t%.6e\tM_sun\n", units.MsCactus)
			return w.Flush()
		},
	}
}
