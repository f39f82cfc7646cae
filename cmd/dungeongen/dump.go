package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	dumpFloor   int
	dumpNoColor bool
	dumpLegend  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print an ASCII map of each floor",
	RunE:  runDump,
}

func init() {
	addGenerationFlags(dumpCmd)
	dumpCmd.Flags().IntVar(&dumpFloor, "floor", -1, "Floor to display (-1 for all floors)")
	dumpCmd.Flags().BoolVar(&dumpNoColor, "no-color", false, "Disable colored output")
	dumpCmd.Flags().BoolVar(&dumpLegend, "legend", true, "Show legend")
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpNoColor {
		color.Disable()
	}

	d, err := buildDungeon(cmd)
	if err != nil {
		return err
	}
	if dumpFloor >= d.FloorCount() {
		return fmt.Errorf("floor %d does not exist, dungeon has %d floors", dumpFloor, d.FloorCount())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dungeon map (seed %d, %d floors)\n\n", d.Seed, d.FloorCount())
	for _, f := range d.Floors() {
		if dumpFloor >= 0 && f.Z != dumpFloor {
			continue
		}
		renderFloor(out, f, d.ArtifactRoom())
		fmt.Fprintln(out)
	}

	if dumpLegend {
		fmt.Fprint(out, legend())
	}
	return nil
}
