package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeongen/internal/config"
	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
)

var floorsCatalog string

var floorsCmd = &cobra.Command{
	Use:   "floors",
	Short: "Print how many floors a catalog produces",
	RunE: func(cmd *cobra.Command, args []string) error {
		if floorsCatalog != "" {
			cfg.Catalog.Source = config.SourceFile
			cfg.Catalog.Path = floorsCatalog
		}
		cat, err := loadCatalog(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d floors (%s)\n", dungeon.FloorCount(cat), cat.Counts())
		return nil
	},
}

func init() {
	floorsCmd.Flags().StringVar(&floorsCatalog, "catalog", "", "Catalog file or directory override")
}
