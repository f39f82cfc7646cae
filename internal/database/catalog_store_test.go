package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// skipIfNoPostgres skips the test unless DUNGEON_TEST_POSTGRES is set.
// Connection settings come from DUNGEON_TEST_POSTGRES_{HOST,PORT,USER,PASSWORD,DATABASE}.
func skipIfNoPostgres(t *testing.T) Config {
	t.Helper()
	if os.Getenv("DUNGEON_TEST_POSTGRES") == "" {
		t.Skip("PostgreSQL not configured, set DUNGEON_TEST_POSTGRES=1 to run")
	}

	pg := DefaultPostgresConfig()
	if host := os.Getenv("DUNGEON_TEST_POSTGRES_HOST"); host != "" {
		pg.Host = host
	}
	if port := os.Getenv("DUNGEON_TEST_POSTGRES_PORT"); port != "" {
		fmt.Sscanf(port, "%d", &pg.Port)
	}
	pg.User = envOr("DUNGEON_TEST_POSTGRES_USER", "dungeon")
	pg.Password = envOr("DUNGEON_TEST_POSTGRES_PASSWORD", "dungeon")
	pg.Database = envOr("DUNGEON_TEST_POSTGRES_DATABASE", "dungeon_test")

	return Config{Driver: string(DialectPostgres), Postgres: pg}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intRef(n int) *int { return &n }

func sampleCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		RoomTemplates: []catalog.RoomTemplate{
			{Type: "library", Descriptions: []string{"Dusty shelves line the walls."}, Themes: []string{"arcane", "quiet"}},
			{Type: "garden"},
		},
		Items: []items.ItemDefinition{
			{Name: "Health Potion", Type: "consumable", Value: 25, HealthBonus: 20},
			{Name: "Golden Key", Type: "key", Value: 10, Description: "A shiny golden key."},
			{Name: "Venom Blade", Type: "weapon", Value: 40, AttackBonus: 6, StatusEffects: map[string]int{"poison": 3}},
		},
		Enemies: []npc.EnemyDefinition{
			{Name: "Goblin", Health: 30, Attack: 8, Defense: 3, Speed: 12, Drops: []string{"Rusty Dagger"}},
			{Name: "Troll", Health: 70, Attack: 15, Defense: 8, MinFloor: 2, HealthScaling: intRef(0), AttackScaling: intRef(4)},
		},
		NPCs: []npc.NPCDefinition{
			{
				Name: "Mysterious Hermit", Health: 50,
				Dialogues: []string{"Seek the rune.", "The relic lies below."},
				Quests:    []npc.QuestDefinition{{TargetItem: "Rune", Reward: "Magic Sword"}},
			},
		},
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range catalogTables {
		var count int
		err := db.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err, "table %s should exist", table)
		assert.Zero(t, count)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalog.db")
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
	assert.Equal(t, "sqlite:"+path, db.Name())
}

func TestLoad_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Load(context.Background())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestImportCatalog_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	want := sampleCatalog()

	require.NoError(t, db.ImportCatalog(ctx, want))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportCatalog_ReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.ImportCatalog(ctx, sampleCatalog()))
	replacement := &catalog.Catalog{
		Items: []items.ItemDefinition{{Name: "Silver Key", Type: "key", Value: 5}},
	}
	require.NoError(t, db.ImportCatalog(ctx, replacement))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestImportCatalog_Nil(t *testing.T) {
	db := setupTestDB(t)
	assert.Error(t, db.ImportCatalog(context.Background(), nil))
}

func TestLoad_PreservesScalingNulls(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.ImportCatalog(ctx, sampleCatalog()))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Enemies, 2)

	goblin, troll := got.Enemies[0], got.Enemies[1]
	assert.Nil(t, goblin.HealthScaling)
	require.NotNil(t, troll.HealthScaling)
	assert.Equal(t, 0, *troll.HealthScaling)
	assert.Equal(t, 4, *troll.AttackScaling)
	assert.Nil(t, troll.DefenseScaling)
}

func TestLoad_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.ImportCatalog(context.Background(), sampleCatalog()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := db.Load(ctx)
	assert.Error(t, err)
}

func TestCatalogLoad_ThroughSource(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.ImportCatalog(ctx, sampleCatalog()))

	c, err := catalog.Load(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"library", "garden"}, c.TemplateTypes())
	assert.Len(t, c.Keys(), 1)
}

func TestPostgres_RoundTrip(t *testing.T) {
	cfg := skipIfNoPostgres(t)
	ctx := context.Background()

	db, err := OpenWithConfig(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	want := sampleCatalog()
	require.NoError(t, db.ImportCatalog(ctx, want))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
