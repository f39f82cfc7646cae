package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

// catalogFiles are the per-category files read, in this order, when a
// FileSource points at a directory
var catalogFiles = []string{"rooms", "items", "enemies", "npcs"}

// roomFileEntry is a room template as written in a rooms file. A single
// description is accepted alongside the list.
type roomFileEntry struct {
	RoomTemplate `yaml:",inline"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
}

func (e roomFileEntry) template() RoomTemplate {
	t := e.RoomTemplate
	if e.Description != "" {
		t.Descriptions = append(slices.Clone(t.Descriptions), e.Description)
	}
	return t
}

// npcFileEntry is an NPC as written in an npcs file, where dialogue may be
// spelled in the singular
type npcFileEntry struct {
	npc.NPCDefinition `yaml:",inline"`
	Dialogue          []string `yaml:"dialogue,omitempty" json:"dialogue,omitempty"`
}

func (e npcFileEntry) definition() npc.NPCDefinition {
	def := e.NPCDefinition
	if len(e.Dialogue) > 0 {
		def.Dialogues = append(slices.Clone(def.Dialogues), e.Dialogue...)
	}
	return def
}

// FileSource reads a catalog from a YAML or JSON file, or from a directory
// holding rooms, items, enemies and npcs files
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns the source description used in logs
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Load reads and decodes the catalog
func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog path: %w", err)
	}
	if !info.IsDir() {
		return LoadFile(s.Path)
	}
	return loadDirectory(ctx, s.Path)
}

// LoadFile reads a single catalog file, choosing the decoder by extension
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := unmarshal(path, data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func unmarshal(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse catalog YAML %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse catalog JSON %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// isList reports whether the document's top level is a list rather than a
// mapping of categories
func isList(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		trimmed := bytes.TrimSpace(data)
		return len(trimmed) > 0 && trimmed[0] == '['
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return false
	}
	return doc.Content[0].Kind == yaml.SequenceNode
}

// loadDirectory merges every known category file found in dir. Missing
// files are skipped. Each file holds either a bare list of its category or
// the same mapping a single-file catalog uses.
func loadDirectory(ctx context.Context, dir string) (*Catalog, error) {
	merged := &Catalog{}
	for _, base := range catalogFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, ok := findCatalogFile(dir, base)
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}

		part := &Catalog{}
		if isList(path, data) {
			err = decodeCategory(part, base, path, data)
		} else {
			err = unmarshal(path, data, part)
		}
		if err != nil {
			return nil, err
		}
		merged.Merge(part)
	}
	return merged, nil
}

// decodeCategory decodes a bare list into the category named by base
func decodeCategory(c *Catalog, base, path string, data []byte) error {
	switch base {
	case "rooms":
		var entries []roomFileEntry
		if err := unmarshal(path, data, &entries); err != nil {
			return err
		}
		for _, e := range entries {
			c.RoomTemplates = append(c.RoomTemplates, e.template())
		}
	case "items":
		return unmarshal(path, data, &c.Items)
	case "enemies":
		return unmarshal(path, data, &c.Enemies)
	case "npcs":
		var entries []npcFileEntry
		if err := unmarshal(path, data, &entries); err != nil {
			return err
		}
		for _, e := range entries {
			c.NPCs = append(c.NPCs, e.definition())
		}
	}
	return nil
}

func findCatalogFile(dir, base string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Merge appends every category of other onto c
func (c *Catalog) Merge(other *Catalog) {
	c.RoomTemplates = append(c.RoomTemplates, other.RoomTemplates...)
	c.Items = append(c.Items, other.Items...)
	c.Enemies = append(c.Enemies, other.Enemies...)
	c.NPCs = append(c.NPCs, other.NPCs...)
}

// SaveFile writes the catalog as YAML or JSON, chosen by extension
func SaveFile(path string, c *Catalog) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}
