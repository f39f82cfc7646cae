// Package main is the dungeongen command line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeongen/internal/config"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/telemetry"
)

var (
	configPath string
	logLevel   string

	cfg             *config.GeneratorConfig
	shutdownTracing func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "dungeongen",
	Short: "Seeded multi-floor dungeon generator",
	Long: `dungeongen builds multi-floor dungeons from a seed and a content catalog.
The same seed and catalog always produce the same dungeon.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dungeongen.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (DEBUG, INFO, WARNING, ERROR)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(floorsCmd)
	rootCmd.AddCommand(fingerprintCmd)
	rootCmd.AddCommand(catalogCmd)
}

// setup loads .env, logging, configuration and tracing before any command
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	logConfig, err := logger.LoadConfig(configPath)
	if logLevel != "" {
		logConfig.Level = logLevel
	}
	if initErr := logger.Initialize(logConfig); initErr != nil {
		return fmt.Errorf("failed to initialize logging: %w", initErr)
	}
	if err != nil {
		logger.Warning("Failed to load logging config, using defaults", "path", configPath, "error", err)
	}

	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	shutdownTracing, err = telemetry.Setup(cmd.Context(), cfg.Telemetry)
	if err != nil {
		logger.Warning("Telemetry setup failed, continuing without tracing", "error", err)
		shutdownTracing = nil
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if shutdownTracing == nil {
		return nil
	}
	if err := shutdownTracing(context.Background()); err != nil {
		logger.Warning("Error shutting down telemetry", "error", err)
	}
	return nil
}
