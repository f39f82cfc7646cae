// Package config loads the generator configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/database"
	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
	"github.com/lawnchairsociety/dungeongen/internal/telemetry"
)

// DefaultSeed is used when neither the file nor the environment sets one
const DefaultSeed int64 = 12345

// Catalog source kinds
const (
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("config: invalid configuration")

// GeneratorConfig holds everything needed to generate a dungeon.
type GeneratorConfig struct {
	Seed      int64            `yaml:"seed"`
	Grid      GridConfig       `yaml:"grid"`
	Catalog   CatalogConfig    `yaml:"catalog"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// GridConfig sets the size of every floor.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CatalogConfig selects where content definitions come from.
type CatalogConfig struct {
	// Source is one of "file", "sqlite", "postgres" or "redis".
	Source string `yaml:"source"`

	// Path is a YAML/JSON file or a directory of them. Empty uses the
	// built-in catalog. Only read for the file source.
	Path string `yaml:"path"`

	// Database is used by the sqlite and postgres sources. Its driver is
	// taken from Source.
	Database database.Config `yaml:"database"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds the redis catalog connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// DefaultConfig returns a GeneratorConfig using the built-in catalog.
func DefaultConfig() *GeneratorConfig {
	db := database.DefaultConfig("data/catalog.db")
	db.Postgres = database.DefaultPostgresConfig()
	db.Postgres.Database = "dungeongen"

	return &GeneratorConfig{
		Seed: DefaultSeed,
		Grid: GridConfig{
			Width:  dungeon.DefaultGridSize,
			Height: dungeon.DefaultGridSize,
		},
		Catalog: CatalogConfig{
			Source:   SourceFile,
			Database: db,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: catalog.DefaultRedisPrefix,
			},
		},
		Telemetry: telemetry.Config{
			ServiceName: "dungeongen",
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies the
// DUNGEON_SEED and DUNGEON_CATALOG environment overrides.
// A missing file yields the defaults; a malformed one yields the defaults
// along with the parse error.
func LoadConfig(path string) (*GeneratorConfig, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *GeneratorConfig) applyEnv() error {
	if seed := os.Getenv("DUNGEON_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid DUNGEON_SEED %q: %w", seed, err)
		}
		c.Seed = v
	}
	if path := os.Getenv("DUNGEON_CATALOG"); path != "" {
		c.Catalog.Source = SourceFile
		c.Catalog.Path = path
	}
	return nil
}

// Validate checks the configuration for values generation cannot use.
func (c *GeneratorConfig) Validate() error {
	if c.Grid.Width < dungeon.MinGridSize || c.Grid.Height < dungeon.MinGridSize {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalid, c.Grid.Width, c.Grid.Height, dungeon.MinGridSize, dungeon.MinGridSize)
	}

	switch c.Catalog.Source {
	case SourceFile:
	case SourceSQLite:
		if c.Catalog.Database.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite catalog needs database.sqlite_path", ErrInvalid)
		}
	case SourcePostgres:
		if c.Catalog.Database.Postgres.Host == "" || c.Catalog.Database.Postgres.Database == "" {
			return fmt.Errorf("%w: postgres catalog needs database.postgres host and database", ErrInvalid)
		}
	case SourceRedis:
		if c.Catalog.Redis.Addr == "" {
			return fmt.Errorf("%w: redis catalog needs redis.addr", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalid, c.Catalog.Source)
	}

	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		return fmt.Errorf("%w: telemetry enabled without a service name", ErrInvalid)
	}
	return nil
}

// DungeonConfig returns the generation parameters
func (c *GeneratorConfig) DungeonConfig() dungeon.Config {
	return dungeon.Config{
		Seed:   c.Seed,
		Width:  c.Grid.Width,
		Height: c.Grid.Height,
	}
}

// DatabaseConfig returns the SQL connection settings with the driver set
// from the catalog source
func (c *GeneratorConfig) DatabaseConfig() database.Config {
	db := c.Catalog.Database
	db.Driver = c.Catalog.Source
	return db
}
