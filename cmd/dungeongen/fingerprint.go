package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print only the layout fingerprint",
	Long: `Print the hex digest identifying a generated dungeon. Two runs with the
same seed and catalog print the same fingerprint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDungeon(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.Fingerprint())
		return nil
	},
}

func init() {
	addGenerationFlags(fingerprintCmd)
}
