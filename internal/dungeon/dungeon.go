// Package dungeon generates seeded multi-floor dungeons.
//
// Generate runs every phase on a single random stream in a fixed order:
// floor layout and corridors per floor, stairs and the artifact room across
// floors, then obstacles, map effects and room contents per floor. The same
// seed and catalog always yield the same dungeon.
package dungeon

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/telemetry"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

// Grid size limits
const (
	DefaultGridSize = 25
	MinGridSize     = 20
)

var (
	// ErrGridTooSmall is returned when either grid dimension is below MinGridSize
	ErrGridTooSmall = errors.New("dungeon: grid too small")
	// ErrNilCatalog is returned when Generate is called without a catalog
	ErrNilCatalog = errors.New("dungeon: catalog cannot be nil")
)

// Config holds the generation parameters
type Config struct {
	Seed   int64
	Width  int
	Height int
}

// DefaultConfig returns a Config for the given seed on the default grid
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:   seed,
		Width:  DefaultGridSize,
		Height: DefaultGridSize,
	}
}

// Validate checks the grid dimensions
func (c Config) Validate() error {
	if c.Width < MinGridSize || c.Height < MinGridSize {
		return fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrGridTooSmall, c.Width, c.Height, MinGridSize, MinGridSize)
	}
	return nil
}

// Floor is one generated level
type Floor struct {
	Z         int
	Grid      *world.Grid
	Rooms     []*world.Room // Every room, in placement order
	MainPath  []*world.Room // Start, intermediates, exit
	Start     *world.Room
	Exit      *world.Room // nil if the exit could not be placed
	Obstacles []Obstacle
	branches  []roomLink
}

// Branches returns the branch rooms in placement order
func (f *Floor) Branches() []*world.Room {
	out := make([]*world.Room, len(f.branches))
	for i, link := range f.branches {
		out[i] = link.branch
	}
	return out
}

// Dungeon is the generated structure. After Generate returns, the caller
// owns it; only room and cell contents are expected to change.
type Dungeon struct {
	Seed      int64
	Width     int
	Height    int
	floors    []*Floor
	artifact  *world.Room
	obstacles []Obstacle
}

// Generate builds a dungeon from cfg.Seed and the catalog. The floor count
// comes from the catalog as given; empty catalog categories are then filled
// from built-in defaults. Placement failures degrade the result silently;
// only invalid configuration and context cancellation return errors.
func Generate(ctx context.Context, cfg Config, cat *catalog.Catalog) (*Dungeon, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.generate")
	defer span.End()

	numFloors := FloorCount(cat)
	content := cat.WithDefaults()
	s := dice.New(cfg.Seed)

	d := &Dungeon{
		Seed:   cfg.Seed,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	for z := 0; z < numFloors; z++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to generate floor %d: %w", z, err)
		}
		f := buildFloor(z, world.NewGrid(cfg.Width, cfg.Height, z), s, content)
		carveCorridors(f, s)
		d.floors = append(d.floors, f)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to connect floors: %w", err)
	}
	stairs := connectStairs(d.floors, s)
	d.artifact = placeArtifactRoom(d.floors, s, content)

	for _, f := range d.floors {
		f.Obstacles = placeObstacles(f, s, content)
		d.obstacles = append(d.obstacles, f.Obstacles...)
	}

	effects := 0
	for _, f := range d.floors {
		effects += placeEffects(f, s)
	}

	deepest := numFloors - 1
	if d.artifact != nil {
		deepest = d.artifact.Z
	}
	for _, f := range d.floors {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to populate floor %d: %w", f.Z, err)
		}
		populateFloor(f, s, content, deepest)
	}

	rooms := 0
	for _, f := range d.floors {
		rooms += len(f.Rooms)
	}

	span.SetAttributes(
		attribute.Int64("dungeon.seed", cfg.Seed),
		attribute.Int("dungeon.floors", numFloors),
		attribute.Int("dungeon.rooms", rooms),
		attribute.Int("dungeon.obstacles", len(d.obstacles)),
	)

	logger.Info("Dungeon generated",
		"seed", cfg.Seed,
		"floors", numFloors,
		"rooms", rooms,
		"stairs", stairs,
		"obstacles", len(d.obstacles),
		"effects", effects)

	return d, nil
}

// FloorCount returns the number of generated floors
func (d *Dungeon) FloorCount() int {
	return len(d.floors)
}

// Floor returns floor z, or nil if it does not exist
func (d *Dungeon) Floor(z int) *Floor {
	if z < 0 || z >= len(d.floors) {
		return nil
	}
	return d.floors[z]
}

// Floors returns every floor from the top (z = 0) down
func (d *Dungeon) Floors() []*Floor {
	return append([]*Floor(nil), d.floors...)
}

// CellAt returns the cell at (x, y, z), or nil outside the dungeon. The cell
// is returned by reference for in-place mutation.
func (d *Dungeon) CellAt(x, y, z int) *world.Cell {
	f := d.Floor(z)
	if f == nil {
		return nil
	}
	return f.Grid.Cell(x, y)
}

// RoomAt returns the room covering (x, y, z), or nil
func (d *Dungeon) RoomAt(x, y, z int) *world.Room {
	c := d.CellAt(x, y, z)
	if c == nil {
		return nil
	}
	return c.Room
}

// CellTypeAt returns the type of the cell at (x, y, z). Positions outside the
// dungeon are empty.
func (d *Dungeon) CellTypeAt(x, y, z int) world.CellType {
	c := d.CellAt(x, y, z)
	if c == nil {
		return world.CellEmpty
	}
	return c.Type
}

// RoomsOnFloor returns the rooms of floor z in placement order
func (d *Dungeon) RoomsOnFloor(z int) []*world.Room {
	f := d.Floor(z)
	if f == nil {
		return nil
	}
	return append([]*world.Room(nil), f.Rooms...)
}

// StartPosition returns the center of the top floor's entrance room
func (d *Dungeon) StartPosition() world.Position {
	if len(d.floors) == 0 || d.floors[0].Start == nil {
		return world.Position{}
	}
	return d.floors[0].Start.Center()
}

// ArtifactRoom returns the win-condition room
func (d *Dungeon) ArtifactRoom() *world.Room {
	return d.artifact
}

// Obstacles returns every placed obstacle, floor by floor
func (d *Dungeon) Obstacles() []Obstacle {
	return append([]Obstacle(nil), d.obstacles...)
}
