package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/config"
	"github.com/lawnchairsociety/dungeongen/internal/database"
)

// builtinSource serves the compiled-in catalog
type builtinSource struct{}

func (builtinSource) Name() string { return "builtin" }

func (builtinSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	return catalog.Default(), nil
}

// openSource returns the catalog source the configuration selects. The
// returned close function releases any connection the source holds.
func openSource(ctx context.Context, c *config.GeneratorConfig) (catalog.Source, func() error, error) {
	noop := func() error { return nil }

	switch c.Catalog.Source {
	case config.SourceFile:
		if c.Catalog.Path == "" {
			return builtinSource{}, noop, nil
		}
		return catalog.NewFileSource(c.Catalog.Path), noop, nil

	case config.SourceSQLite, config.SourcePostgres:
		db, err := database.OpenWithConfig(ctx, c.DatabaseConfig())
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil

	case config.SourceRedis:
		client := newRedisClient(c.Catalog.Redis)
		src, err := catalog.NewRedisSource(&catalog.RedisConfig{
			Client: client,
			Prefix: c.Catalog.Redis.Prefix,
		})
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return src, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
}

func newRedisClient(rc config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
}

// loadCatalog opens the configured source and reads the catalog from it
func loadCatalog(ctx context.Context, c *config.GeneratorConfig) (*catalog.Catalog, error) {
	src, closeSource, err := openSource(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog source: %w", err)
	}
	defer closeSource()

	return catalog.Load(ctx, src)
}
