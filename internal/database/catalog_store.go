package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

var _ catalog.Source = (*Database)(nil)

// catalogTables lists the catalog tables in the order they are cleared and written.
var catalogTables = []string{"room_templates", "items", "enemies", "npcs"}

// Name identifies the database in logs.
func (d *Database) Name() string {
	return d.name
}

// Load reads the full catalog. Rows come back in insertion order.
func (d *Database) Load(ctx context.Context) (*catalog.Catalog, error) {
	c := &catalog.Catalog{}
	var err error

	if c.RoomTemplates, err = d.loadRoomTemplates(ctx); err != nil {
		return nil, fmt.Errorf("failed to load room templates: %w", err)
	}
	if c.Items, err = d.loadItems(ctx); err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if c.Enemies, err = d.loadEnemies(ctx); err != nil {
		return nil, fmt.Errorf("failed to load enemies: %w", err)
	}
	if c.NPCs, err = d.loadNPCs(ctx); err != nil {
		return nil, fmt.Errorf("failed to load npcs: %w", err)
	}

	if len(c.RoomTemplates)+len(c.Items)+len(c.Enemies)+len(c.NPCs) == 0 {
		return nil, catalog.ErrNotFound
	}
	return c, nil
}

// ImportCatalog replaces the stored catalog with c in a single transaction.
func (d *Database) ImportCatalog(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		return fmt.Errorf("catalog cannot be nil")
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range catalogTables {
		if _, err := tx.ExecContext(ctx, d.dialect.ClearTable(table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insertTemplate := d.qb.Insert("room_templates", "type", "descriptions", "themes")
	for _, t := range c.RoomTemplates {
		if _, err := tx.ExecContext(ctx, insertTemplate, t.Type, encodeJSON(t.Descriptions, "[]"), encodeJSON(t.Themes, "[]")); err != nil {
			return fmt.Errorf("failed to insert room template %s: %w", t.Type, err)
		}
	}

	insertItem := d.qb.Insert("items", "name", "description", "type", "value",
		"attack_bonus", "defense_bonus", "health_bonus", "status_effects", "status_effect")
	for _, def := range c.Items {
		if _, err := tx.ExecContext(ctx, insertItem, def.Name, def.Description, def.Type, def.Value,
			def.AttackBonus, def.DefenseBonus, def.HealthBonus, encodeJSON(def.StatusEffects, "{}"), def.StatusEffect); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", def.Name, err)
		}
	}

	insertEnemy := d.qb.Insert("enemies", "name", "health", "attack", "defense", "speed",
		"health_scaling", "attack_scaling", "defense_scaling", "min_floor",
		"exp_reward", "gold_min", "gold_max", "drops")
	for _, def := range c.Enemies {
		if _, err := tx.ExecContext(ctx, insertEnemy, def.Name, def.Health, def.Attack, def.Defense, def.Speed,
			nullableInt(def.HealthScaling), nullableInt(def.AttackScaling), nullableInt(def.DefenseScaling), def.MinFloor,
			def.ExpReward, def.GoldMin, def.GoldMax, encodeJSON(def.Drops, "[]")); err != nil {
			return fmt.Errorf("failed to insert enemy %s: %w", def.Name, err)
		}
	}

	insertNPC := d.qb.Insert("npcs", "name", "health", "attack", "defense", "dialogues", "quests")
	for _, def := range c.NPCs {
		if _, err := tx.ExecContext(ctx, insertNPC, def.Name, def.Health, def.Attack, def.Defense,
			encodeJSON(def.Dialogues, "[]"), encodeJSON(def.Quests, "[]")); err != nil {
			return fmt.Errorf("failed to insert npc %s: %w", def.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog import: %w", err)
	}

	logger.Info("Catalog imported", "database", d.name, "summary", c.Counts())
	return nil
}

func (d *Database) loadRoomTemplates(ctx context.Context) ([]catalog.RoomTemplate, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT type, descriptions, themes FROM room_templates ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.RoomTemplate
	for rows.Next() {
		var t catalog.RoomTemplate
		var descriptions, themes string
		if err := rows.Scan(&t.Type, &descriptions, &themes); err != nil {
			return nil, err
		}
		if t.Descriptions, err = decodeList[string](descriptions); err != nil {
			return nil, fmt.Errorf("room template %s descriptions: %w", t.Type, err)
		}
		if t.Themes, err = decodeList[string](themes); err != nil {
			return nil, fmt.Errorf("room template %s themes: %w", t.Type, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (d *Database) loadItems(ctx context.Context) ([]items.ItemDefinition, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT name, description, type, value, attack_bonus, defense_bonus,
		health_bonus, status_effects, status_effect FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []items.ItemDefinition
	for rows.Next() {
		var def items.ItemDefinition
		var effects string
		if err := rows.Scan(&def.Name, &def.Description, &def.Type, &def.Value, &def.AttackBonus,
			&def.DefenseBonus, &def.HealthBonus, &effects, &def.StatusEffect); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(effects), &def.StatusEffects); err != nil {
			return nil, fmt.Errorf("item %s status effects: %w", def.Name, err)
		}
		if len(def.StatusEffects) == 0 {
			def.StatusEffects = nil
		}
		out = append(out, def)
	}
	return out, rows.Err()
}

func (d *Database) loadEnemies(ctx context.Context) ([]npc.EnemyDefinition, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT name, health, attack, defense, speed, health_scaling,
		attack_scaling, defense_scaling, min_floor, exp_reward, gold_min, gold_max, drops
		FROM enemies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []npc.EnemyDefinition
	for rows.Next() {
		var def npc.EnemyDefinition
		var healthScaling, attackScaling, defenseScaling sql.NullInt64
		var drops string
		if err := rows.Scan(&def.Name, &def.Health, &def.Attack, &def.Defense, &def.Speed,
			&healthScaling, &attackScaling, &defenseScaling, &def.MinFloor,
			&def.ExpReward, &def.GoldMin, &def.GoldMax, &drops); err != nil {
			return nil, err
		}
		def.HealthScaling = intPtr(healthScaling)
		def.AttackScaling = intPtr(attackScaling)
		def.DefenseScaling = intPtr(defenseScaling)
		if def.Drops, err = decodeList[string](drops); err != nil {
			return nil, fmt.Errorf("enemy %s drops: %w", def.Name, err)
		}
		out = append(out, def)
	}
	return out, rows.Err()
}

func (d *Database) loadNPCs(ctx context.Context) ([]npc.NPCDefinition, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT name, health, attack, defense, dialogues, quests FROM npcs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []npc.NPCDefinition
	for rows.Next() {
		var def npc.NPCDefinition
		var dialogues, quests string
		if err := rows.Scan(&def.Name, &def.Health, &def.Attack, &def.Defense, &dialogues, &quests); err != nil {
			return nil, err
		}
		if def.Dialogues, err = decodeList[string](dialogues); err != nil {
			return nil, fmt.Errorf("npc %s dialogues: %w", def.Name, err)
		}
		if def.Quests, err = decodeList[npc.QuestDefinition](quests); err != nil {
			return nil, fmt.Errorf("npc %s quests: %w", def.Name, err)
		}
		out = append(out, def)
	}
	return out, rows.Err()
}

// encodeJSON marshals list and map columns; empty values store as empty.
func encodeJSON(v any, empty string) string {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" {
		return empty
	}
	return string(data)
}

// decodeList unmarshals a JSON list column. Empty lists decode to nil.
func decodeList[T any](s string) ([]T, error) {
	if s == "" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
