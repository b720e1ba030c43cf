// Command gwtool processes multipolar gravitational-wave data from plain
// column files.
//
// Usage:
//
//	gwtool <command> [flags]
//
// Examples:
//
//	gwtool strain --in psi4_l2_m2.txt --f0 0.0035 --m 2 --out h_l2_m2.txt
//	gwtool energetics --config job.yaml
//	gwtool align --a run1.txt --b run2.txt --tf 1500 --tau-max 50
//	gwtool compose --config job.yaml --plot
//	gwtool units
package main

import (
	"log"
	"os"

	"github.com/cwbudde/algo-gw/internal/wavefile"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gwtool: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gwtool",
		Short:         "multipolar gravitational-wave analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newStrainCmd(),
		newEnergeticsCmd(),
		newAlignCmd(),
		newComposeCmd(),
		newUnitsCmd(),
	)
	return root
}

// output resolves "-" to the command's stdout writer.
func output(cmd *cobra.Command, path, header string, cols ...[]float64) error {
	if path == "-" || path == "" {
		return wavefile.Write(cmd.OutOrStdout(), header, cols...)
	}
	return wavefile.WriteFile(path, header, cols...)
}
