// Package database provides SQL persistence for content catalogs.
//
// The same schema runs on SQLite (modernc.org/sqlite) and PostgreSQL
// (lib/pq); dialect differences are isolated behind Dialect.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/lawnchairsociety/dungeongen/internal/logger"
)

// Database wraps the SQL connection and provides catalog persistence.
type Database struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
	name    string
}

// Open opens or creates the SQLite database at the given path.
func Open(ctx context.Context, path string) (*Database, error) {
	return OpenWithConfig(ctx, DefaultConfig(path))
}

// OpenWithConfig opens a database using the given configuration. The initial
// ping is retried with exponential backoff until ConnectTimeout elapses, so a
// PostgreSQL server that is still starting up does not fail the caller.
func OpenWithConfig(ctx context.Context, cfg Config) (*Database, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	name := "sqlite:" + cfg.SQLitePath
	if DialectType(cfg.Driver) == DialectPostgres {
		name = fmt.Sprintf("postgres:%s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)
		if cfg.DSN != "" {
			name = "postgres:dsn"
		}
	} else if cfg.DSN != "" {
		name = "sqlite:" + cfg.DSN
	} else if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), cfg.dataSourceName())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if DialectType(cfg.Driver) == DialectPostgres {
		pg := cfg.Postgres
		if pg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(pg.MaxOpenConns)
		}
		if pg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(pg.MaxIdleConns)
		}
		if pg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(pg.ConnMaxLifetime)
		}
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warning("Database not ready, retrying", "database", name, "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run init statement %q: %w", stmt, err)
		}
	}

	d := &Database{
		db:      db,
		dialect: dialect,
		qb:      NewQueryBuilder(dialect),
		name:    name,
	}

	if err := d.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Debug("Database opened", "database", name)
	return d, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// Dialect returns the SQL dialect in use.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// migrate creates the catalog schema if it doesn't exist.
func (d *Database) migrate(ctx context.Context) error {
	pk := d.dialect.PrimaryKey()
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS room_templates (
			id ` + pk + `,
			type TEXT NOT NULL,
			descriptions TEXT NOT NULL DEFAULT '[]',
			themes TEXT NOT NULL DEFAULT '[]'
		)`,

		`CREATE TABLE IF NOT EXISTS items (
			id ` + pk + `,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			value INTEGER NOT NULL DEFAULT 0,
			attack_bonus INTEGER NOT NULL DEFAULT 0,
			defense_bonus INTEGER NOT NULL DEFAULT 0,
			health_bonus INTEGER NOT NULL DEFAULT 0,
			status_effects TEXT NOT NULL DEFAULT '{}',
			status_effect TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS enemies (
			id ` + pk + `,
			name TEXT NOT NULL,
			health INTEGER NOT NULL,
			attack INTEGER NOT NULL,
			defense INTEGER NOT NULL,
			speed INTEGER NOT NULL DEFAULT 0,
			health_scaling INTEGER,
			attack_scaling INTEGER,
			defense_scaling INTEGER,
			min_floor INTEGER NOT NULL DEFAULT 0,
			exp_reward INTEGER NOT NULL DEFAULT 0,
			gold_min INTEGER NOT NULL DEFAULT 0,
			gold_max INTEGER NOT NULL DEFAULT 0,
			drops TEXT NOT NULL DEFAULT '[]'
		)`,

		`CREATE TABLE IF NOT EXISTS npcs (
			id ` + pk + `,
			name TEXT NOT NULL,
			health INTEGER NOT NULL,
			attack INTEGER NOT NULL,
			defense INTEGER NOT NULL,
			dialogues TEXT NOT NULL DEFAULT '[]',
			quests TEXT NOT NULL DEFAULT '[]'
		)`,

		`CREATE INDEX IF NOT EXISTS idx_items_type ON items(type)`,
		`CREATE INDEX IF NOT EXISTS idx_enemies_min_floor ON enemies(min_floor)`,
	}

	for _, m := range migrations {
		if _, err := d.db.ExecContext(ctx, m); err != nil {
			return err
		}
	}

	return nil
}
