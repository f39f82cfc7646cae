package database

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// Dialect Tests
// =============================================================================

func TestNewDialect(t *testing.T) {
	if _, ok := NewDialect(DialectSQLite).(*SQLiteDialect); !ok {
		t.Errorf("NewDialect(sqlite) = %T, want *SQLiteDialect", NewDialect(DialectSQLite))
	}
	if _, ok := NewDialect(DialectPostgres).(*PostgresDialect); !ok {
		t.Errorf("NewDialect(postgres) = %T, want *PostgresDialect", NewDialect(DialectPostgres))
	}
	// Unknown dialect should default to SQLite
	if _, ok := NewDialect("unknown").(*SQLiteDialect); !ok {
		t.Errorf("NewDialect(unknown) = %T, want *SQLiteDialect", NewDialect("unknown"))
	}
}

func TestDialect_DriverName(t *testing.T) {
	if got := (&SQLiteDialect{}).DriverName(); got != "sqlite" {
		t.Errorf("SQLite DriverName() = %q, want %q", got, "sqlite")
	}
	if got := (&PostgresDialect{}).DriverName(); got != "postgres" {
		t.Errorf("Postgres DriverName() = %q, want %q", got, "postgres")
	}
}

func TestDialect_Placeholder(t *testing.T) {
	tests := []struct {
		position   int
		wantSQLite string
		wantPG     string
	}{
		{1, "?", "$1"},
		{2, "?", "$2"},
		{10, "?", "$10"},
		{100, "?", "$100"},
	}
	sqlite, pg := &SQLiteDialect{}, &PostgresDialect{}
	for _, tt := range tests {
		if got := sqlite.Placeholder(tt.position); got != tt.wantSQLite {
			t.Errorf("SQLite Placeholder(%d) = %q, want %q", tt.position, got, tt.wantSQLite)
		}
		if got := pg.Placeholder(tt.position); got != tt.wantPG {
			t.Errorf("Postgres Placeholder(%d) = %q, want %q", tt.position, got, tt.wantPG)
		}
	}
}

func TestDialect_InitStatements(t *testing.T) {
	stmts := (&SQLiteDialect{}).InitStatements()
	expected := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	if len(stmts) != len(expected) {
		t.Fatalf("InitStatements() returned %d statements, want %d", len(stmts), len(expected))
	}
	for i, want := range expected {
		if stmts[i] != want {
			t.Errorf("InitStatements()[%d] = %q, want %q", i, stmts[i], want)
		}
	}

	if stmts := (&PostgresDialect{}).InitStatements(); len(stmts) != 0 {
		t.Errorf("Postgres InitStatements() = %v, want none", stmts)
	}
}

func TestDialect_PrimaryKey(t *testing.T) {
	if got := (&SQLiteDialect{}).PrimaryKey(); got != "INTEGER PRIMARY KEY AUTOINCREMENT" {
		t.Errorf("SQLite PrimaryKey() = %q", got)
	}
	if got := (&PostgresDialect{}).PrimaryKey(); got != "SERIAL PRIMARY KEY" {
		t.Errorf("Postgres PrimaryKey() = %q", got)
	}
}

func TestDialect_ClearTable(t *testing.T) {
	if got := (&SQLiteDialect{}).ClearTable("items"); got != "DELETE FROM items" {
		t.Errorf("SQLite ClearTable() = %q", got)
	}
	if got := (&PostgresDialect{}).ClearTable("items"); got != "TRUNCATE TABLE items RESTART IDENTITY" {
		t.Errorf("Postgres ClearTable() = %q", got)
	}
}

// =============================================================================
// QueryBuilder Tests
// =============================================================================

func TestQueryBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
		want    string
	}{
		{"sqlite unchanged", &SQLiteDialect{}, "SELECT * FROM items WHERE name = ? AND type = ?", "SELECT * FROM items WHERE name = ? AND type = ?"},
		{"postgres numbered", &PostgresDialect{}, "SELECT * FROM items WHERE name = ? AND type = ?", "SELECT * FROM items WHERE name = $1 AND type = $2"},
		{"empty query", &PostgresDialect{}, "", ""},
		{"no placeholders", &PostgresDialect{}, "SELECT COUNT(*) FROM npcs", "SELECT COUNT(*) FROM npcs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewQueryBuilder(tt.dialect).Build(tt.query); got != tt.want {
				t.Errorf("Build(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestQueryBuilder_Build_ManyPlaceholders(t *testing.T) {
	qb := NewQueryBuilder(&PostgresDialect{})
	got := qb.Build(strings.TrimSuffix(strings.Repeat("?,", 12), ","))
	if !strings.HasSuffix(got, "$12") || strings.Contains(got, "?") {
		t.Errorf("Build() = %q, want $1..$12", got)
	}
}

func TestQueryBuilder_Insert(t *testing.T) {
	got := NewQueryBuilder(&PostgresDialect{}).Insert("npcs", "name", "health", "quests")
	want := "INSERT INTO npcs (name, health, quests) VALUES ($1, $2, $3)"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}

	got = NewQueryBuilder(&SQLiteDialect{}).Insert("items", "name")
	want = "INSERT INTO items (name) VALUES (?)"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
}

// =============================================================================
// Config Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/tmp/catalog.db")
	if cfg.Driver != "sqlite" {
		t.Errorf("Driver = %q, want %q", cfg.Driver, "sqlite")
	}
	if cfg.SQLitePath != "/tmp/catalog.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("ConnectTimeout = %v, want 10s", cfg.ConnectTimeout)
	}
	if got := cfg.dataSourceName(); got != "/tmp/catalog.db" {
		t.Errorf("dataSourceName() = %q", got)
	}
}

func TestConfig_DSNOverride(t *testing.T) {
	cfg := Config{
		Driver:   "postgres",
		DSN:      "postgres://other@db:5432/x",
		Postgres: PostgresConfig{Host: "ignored", Port: 1},
	}
	if got := cfg.dataSourceName(); got != cfg.DSN {
		t.Errorf("dataSourceName() = %q, want %q", got, cfg.DSN)
	}

	cfg.DSN = ""
	if got := cfg.dataSourceName(); got != "postgres://ignored:1/?sslmode=disable" {
		t.Errorf("dataSourceName() = %q", got)
	}
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()
	if cfg.Host != "localhost" || cfg.Port != 5432 {
		t.Errorf("Host:Port = %s:%d, want localhost:5432", cfg.Host, cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want disable", cfg.SSLMode)
	}
	if cfg.MaxOpenConns != 10 || cfg.MaxIdleConns != 2 {
		t.Errorf("pool = %d/%d, want 10/2", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 5m", cfg.ConnMaxLifetime)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  PostgresConfig
		want string
	}{
		{
			name: "full credentials",
			cfg:  PostgresConfig{Host: "db", Port: 5433, User: "dungeon", Password: "p@ss", Database: "catalog", SSLMode: "require"},
			want: "postgres://dungeon:p%40ss@db:5433/catalog?sslmode=require",
		},
		{
			name: "no password defaults sslmode",
			cfg:  PostgresConfig{Host: "localhost", Port: 5432, User: "dungeon", Database: "catalog"},
			want: "postgres://dungeon@localhost:5432/catalog?sslmode=disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.want {
				t.Errorf("DSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialect_InterfaceCompliance(t *testing.T) {
	var _ Dialect = (*SQLiteDialect)(nil)
	var _ Dialect = (*PostgresDialect)(nil)
}
