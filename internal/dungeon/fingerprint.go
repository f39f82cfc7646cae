package dungeon

import (
	"encoding/hex"
	"fmt"
	"hash"
	"maps"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

// Fingerprint returns a blake2b-256 hex digest of the layout and contents.
// Two dungeons with equal fingerprints have the same rooms, corridors,
// stairs, obstacles, effects and placed contents.
func (d *Dungeon) Fingerprint() string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only returned for oversized keys
		panic(err)
	}

	fmt.Fprintf(h, "dungeon %d %dx%d floors=%d\n", d.Seed, d.Width, d.Height, len(d.floors))
	for _, f := range d.floors {
		fmt.Fprintf(h, "floor %d\n", f.Z)
		for _, r := range f.Rooms {
			writeRoom(h, r)
		}
		for y := 0; y < f.Grid.Height; y++ {
			for x := 0; x < f.Grid.Width; x++ {
				writeCell(h, x, y, f.Grid.Cell(x, y))
			}
		}
		for _, o := range f.Obstacles {
			fmt.Fprintf(h, "obstacle %s %s %s %s %d %s\n",
				o.Kind, o.Position, o.Direction, o.Requires, o.Distance, o.Solution)
		}
	}
	if d.artifact != nil {
		fmt.Fprintf(h, "artifact %s\n", d.artifact.Center())
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeRoom(h hash.Hash, r *world.Room) {
	fmt.Fprintf(h, "room %s %d %d %d %d %d %q\n", r.Type, r.X, r.Y, r.Z, r.Width, r.Height, r.Description)
	for _, dir := range sortedDirections(r.Exits) {
		fmt.Fprintf(h, " exit %s %s\n", dir, r.Exits[dir])
	}
	writeObstacleMaps(h, r.LockedDoors, r.BlockedPassages)
	if r.StairsUp {
		fmt.Fprintf(h, " up %s\n", r.StairsUpTarget)
	}
	if r.StairsDown {
		fmt.Fprintf(h, " down %s\n", r.StairsDownTarget)
	}
	writeItems(h, r.Items)
	for _, e := range r.Entities {
		fmt.Fprintf(h, " entity %q %d %d %d %d %d\n", e.Name, e.Level, e.MaxHealth, e.Attack, e.Defense, e.Speed)
	}
	for _, n := range r.NPCs {
		fmt.Fprintf(h, " npc %q", n.Name)
		if n.Quest != nil {
			fmt.Fprintf(h, " quest %q %q", n.Quest.TargetItem, n.Quest.Reward)
		}
		fmt.Fprintln(h)
	}
}

func writeCell(h hash.Hash, x, y int, c *world.Cell) {
	fmt.Fprintf(h, "%d,%d %s", x, y, c.Type)
	if c.StairsUp {
		fmt.Fprintf(h, " up %s", c.StairsUpTarget)
	}
	if c.StairsDown {
		fmt.Fprintf(h, " down %s", c.StairsDownTarget)
	}
	if c.Effect != nil {
		fmt.Fprintf(h, " effect %s %g %d", c.Effect.Type, c.Effect.TriggerChance, c.Effect.Strength)
	}
	fmt.Fprintln(h)
	writeObstacleMaps(h, c.LockedDoors, c.BlockedPassages)
	writeItems(h, c.Items)
}

func writeObstacleMaps(h hash.Hash, locked, blocked map[world.Direction]string) {
	for _, dir := range sortedDirections(locked) {
		fmt.Fprintf(h, " locked %s %q\n", dir, locked[dir])
	}
	for _, dir := range sortedDirections(blocked) {
		fmt.Fprintf(h, " blocked %s %q\n", dir, blocked[dir])
	}
}

func writeItems(h hash.Hash, list []*items.Item) {
	for _, it := range list {
		fmt.Fprintf(h, " item %q %s %d\n", it.Name, it.Type, it.Value)
	}
}

func sortedDirections[V any](m map[world.Direction]V) []world.Direction {
	return slices.Sorted(maps.Keys(m))
}
