package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeongen/internal/config"
	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
)

var (
	seedFlag    int64
	catalogFlag string
	roomsFlag   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon and print a summary",
	Long: `Generate a dungeon from the configured seed and catalog, then print the
floor count, rooms and obstacles per floor, the artifact room and the
layout fingerprint. With --rooms every room is described with its contents.`,
	RunE: runGenerate,
}

func init() {
	addGenerationFlags(generateCmd)
	generateCmd.Flags().BoolVar(&roomsFlag, "rooms", false, "Describe every room and its contents")
}

// addGenerationFlags registers the flags shared by every command that builds
// a dungeon
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed override (default from config)")
	cmd.Flags().StringVar(&catalogFlag, "catalog", "", "Catalog file or directory override")
}

// buildDungeon applies flag overrides to the loaded configuration and runs
// generation
func buildDungeon(cmd *cobra.Command) (*dungeon.Dungeon, error) {
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if catalogFlag != "" {
		cfg.Catalog.Source = config.SourceFile
		cfg.Catalog.Path = catalogFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dungeon.Generate(ctx, cfg.DungeonConfig(), cat)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := buildDungeon(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fingerprint := d.Fingerprint()
	fmt.Fprintf(out, "Seed %d, %d floors, %dx%d grid\n", d.Seed, d.FloorCount(), d.Width, d.Height)

	for _, f := range d.Floors() {
		open := f.Reachable(false)
		sealed := f.Reachable(true)
		fmt.Fprintf(out, "Floor %d: %d rooms (%d on main path, %d branches), %d obstacles, %d/%d cells reachable before unlocking\n",
			f.Z, len(f.Rooms), len(f.MainPath), len(f.Branches()), len(f.Obstacles), sealed.Size(), open.Size())
		for _, o := range f.Obstacles {
			fmt.Fprintf(out, "  %s at %s %s needs %q from %s\n", o.Kind, o.Position, o.Direction, o.Requires, o.Solution)
		}
		if roomsFlag {
			for _, r := range f.Rooms {
				fmt.Fprint(out, r.Describe())
			}
		}
	}

	if room := d.ArtifactRoom(); room != nil {
		fmt.Fprintf(out, "Artifact room at %s: %s\n", room.Center(), room.Description)
	} else {
		fmt.Fprintln(out, "No artifact room placed")
	}
	fmt.Fprintf(out, "Fingerprint %s\n", fingerprint)

	logger.Report("Dungeon ready",
		"seed", d.Seed,
		"floors", d.FloorCount(),
		"obstacles", len(d.Obstacles()),
		"fingerprint", fingerprint)
	return nil
}
