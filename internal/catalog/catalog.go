// Package catalog holds the static content definitions dungeon generation
// draws from, and the sources that load them (files, SQL databases, redis).
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

//go:generate mockgen -destination=mock/source.go -package=catalogmock -source=catalog.go

var (
	// ErrNotFound is returned when a source has no catalog at the requested location
	ErrNotFound = errors.New("catalog: not found")
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")
)

// RoomTemplate describes flavor for one room type
type RoomTemplate struct {
	Type         string   `yaml:"type" json:"type"`
	Descriptions []string `yaml:"descriptions,omitempty" json:"descriptions,omitempty"`
	Themes       []string `yaml:"themes,omitempty" json:"themes,omitempty"`
}

// Catalog is the read-only content consumed by the generator. Slices keep
// their source order, which generation depends on for determinism.
type Catalog struct {
	RoomTemplates []RoomTemplate         `yaml:"room_templates" json:"room_templates"`
	Items         []items.ItemDefinition `yaml:"items" json:"items"`
	Enemies       []npc.EnemyDefinition  `yaml:"enemies" json:"enemies"`
	NPCs          []npc.NPCDefinition    `yaml:"npcs" json:"npcs"`
}

// Source loads a catalog from some backing store
type Source interface {
	// Load reads the full catalog.
	Load(ctx context.Context) (*Catalog, error)
	// Name identifies the source in logs.
	Name() string
}

// Load reads a catalog from src and logs what it found. The returned catalog
// is exactly what the source holds; call WithDefaults before generation.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, errors.New("catalog: source cannot be nil")
	}

	c, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", src.Name(), err)
	}
	if c == nil {
		c = &Catalog{}
	}

	logger.Info("Catalog loaded",
		"source", src.Name(),
		"room_templates", len(c.RoomTemplates),
		"items", len(c.Items),
		"enemies", len(c.Enemies),
		"npcs", len(c.NPCs))

	return c, nil
}

// TemplateTypes returns the distinct room-template type tags in first-seen order
func (c *Catalog) TemplateTypes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.RoomTemplates {
		if t.Type != "" && !seen[t.Type] {
			seen[t.Type] = true
			out = append(out, t.Type)
		}
	}
	return out
}

// Themes returns the distinct theme tags across all templates in first-seen order
func (c *Catalog) Themes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.RoomTemplates {
		for _, theme := range t.Themes {
			if theme != "" && !seen[theme] {
				seen[theme] = true
				out = append(out, theme)
			}
		}
	}
	return out
}

// Keys returns the key item definitions
func (c *Catalog) Keys() []items.ItemDefinition {
	return items.FilterByType(c.Items, items.Key)
}

// Triggers returns the trigger item definitions
func (c *Catalog) Triggers() []items.ItemDefinition {
	return items.FilterByType(c.Items, items.Trigger)
}

// Artifacts returns the artifact item definitions
func (c *Catalog) Artifacts() []items.ItemDefinition {
	return items.FilterByType(c.Items, items.Artifact)
}

// Loot returns every non-artifact item definition
func (c *Catalog) Loot() []items.ItemDefinition {
	return items.ExcludeType(c.Items, items.Artifact)
}

// Template returns the first template with the given type tag (case-insensitive)
func (c *Catalog) Template(roomType string) (RoomTemplate, bool) {
	for _, t := range c.RoomTemplates {
		if strings.EqualFold(t.Type, roomType) {
			return t, true
		}
	}
	return RoomTemplate{}, false
}

// Item returns the first item definition with the given name (case-insensitive)
func (c *Catalog) Item(name string) (items.ItemDefinition, bool) {
	for _, def := range c.Items {
		if strings.EqualFold(def.Name, name) {
			return def, true
		}
	}
	return items.ItemDefinition{}, false
}

// Counts returns a one-line summary used in logs and CLI output
func (c *Catalog) Counts() string {
	return fmt.Sprintf("%d templates, %d themes, %d items, %d enemies, %d npcs",
		len(c.TemplateTypes()), len(c.Themes()), len(c.Items), len(c.Enemies), len(c.NPCs))
}

// NewItem creates a fresh item from the named definition. Names the catalog
// does not know become a plain key item.
func (c *Catalog) NewItem(name string) *items.Item {
	if def, ok := c.Item(name); ok {
		return items.CreateItemFromDefinition(def)
	}
	return items.NewKey(name)
}
