package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/config"
	"github.com/lawnchairsociety/dungeongen/internal/database"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
)

var (
	catalogPath string

	pushAddr   string
	pushPrefix string

	migrateDriver string
	migrateDSN    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Copy a file catalog into redis or a SQL database",
}

var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Store a file catalog in redis",
	RunE:  runCatalogPush,
}

var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the SQL schema and import a file catalog",
	Long: `Create the catalog tables in SQLite or PostgreSQL and replace their
contents with a file catalog. With --driver sqlite the DSN is the database
file path.`,
	RunE: runCatalogMigrate,
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file or directory (default: built-in catalog)")

	catalogPushCmd.Flags().StringVar(&pushAddr, "redis", "", "Redis address (default from config)")
	catalogPushCmd.Flags().StringVar(&pushPrefix, "prefix", "", "Key prefix (default from config)")

	catalogMigrateCmd.Flags().StringVar(&migrateDriver, "driver", "sqlite", "Database driver: sqlite or postgres")
	catalogMigrateCmd.Flags().StringVar(&migrateDSN, "dsn", "", "Connection string (default from config)")

	catalogCmd.AddCommand(catalogPushCmd)
	catalogCmd.AddCommand(catalogMigrateCmd)
}

// readFileCatalog loads the --catalog file, or the built-in catalog when none
// is given
func readFileCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	var src catalog.Source = builtinSource{}
	if catalogPath != "" {
		src = catalog.NewFileSource(catalogPath)
	}
	return catalog.Load(cmd.Context(), src)
}

func runCatalogPush(cmd *cobra.Command, args []string) error {
	c, err := readFileCatalog(cmd)
	if err != nil {
		return err
	}

	rc := cfg.Catalog.Redis
	if pushAddr != "" {
		rc.Addr = pushAddr
	}
	if pushPrefix != "" {
		rc.Prefix = pushPrefix
	}

	client := newRedisClient(rc)
	defer client.Close()

	src, err := catalog.NewRedisSource(&catalog.RedisConfig{Client: client, Prefix: rc.Prefix})
	if err != nil {
		return err
	}
	if err := src.Store(cmd.Context(), c); err != nil {
		return err
	}

	logger.Info("Catalog pushed", "target", src.Name(), "addr", rc.Addr)
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %s in %s\n", c.Counts(), src.Name())
	return nil
}

func runCatalogMigrate(cmd *cobra.Command, args []string) error {
	c, err := readFileCatalog(cmd)
	if err != nil {
		return err
	}

	dbConfig := cfg.Catalog.Database
	dbConfig.Driver = migrateDriver
	if migrateDSN != "" {
		if migrateDriver == config.SourceSQLite {
			dbConfig.SQLitePath = migrateDSN
		} else {
			dbConfig.DSN = migrateDSN
		}
	}

	db, err := database.OpenWithConfig(cmd.Context(), dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ImportCatalog(cmd.Context(), c); err != nil {
		return err
	}

	logger.Info("Catalog migrated", "target", db.Name())
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", c.Counts(), db.Name())
	return nil
}
