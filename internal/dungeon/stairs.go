package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

// connectStairs links each pair of adjacent floors with one stairs-down and
// one stairs-up, placed on room centers. Transitions touching a floor with
// no rooms are skipped. Returns the number of links made.
func connectStairs(floors []*Floor, s *dice.Stream) int {
	links := 0
	for k := 0; k+1 < len(floors); k++ {
		upper, lower := floors[k], floors[k+1]

		from, ok := dice.Pick(s, upper.Rooms)
		if !ok {
			logger.Debug("Stair transition skipped, floor has no rooms", "floor", upper.Z)
			continue
		}
		to, ok := dice.Pick(s, lower.Rooms)
		if !ok {
			logger.Debug("Stair transition skipped, floor has no rooms", "floor", lower.Z)
			continue
		}

		down, up := from.Center(), to.Center()
		from.SetStairsDown(up)
		to.SetStairsUp(down)

		if c := upper.Grid.CellAt(down); c != nil {
			c.StairsDown = true
			c.StairsDownTarget = up
		}
		if c := lower.Grid.CellAt(up); c != nil {
			c.StairsUp = true
			c.StairsUpTarget = down
		}
		links++
	}
	return links
}

// placeArtifactRoom turns one room on the deepest non-empty floor into the
// artifact room. The floor's start and exit rooms are avoided when any other
// room exists.
func placeArtifactRoom(floors []*Floor, s *dice.Stream, c *catalog.Catalog) *world.Room {
	var deepest *Floor
	for i := len(floors) - 1; i >= 0; i-- {
		if len(floors[i].Rooms) > 0 {
			deepest = floors[i]
			break
		}
	}
	if deepest == nil {
		return nil
	}

	candidates := make([]*world.Room, 0, len(deepest.Rooms))
	for _, r := range deepest.Rooms {
		if r != deepest.Start && r != deepest.Exit {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		candidates = deepest.Rooms
	}

	room, _ := dice.Pick(s, candidates)
	room.Type = world.RoomTypeArtifact
	room.Description = artifactRoomDescription
	room.ClearItems()
	room.AddItem(artifactItem(s, c))

	logger.Debug("Artifact room placed", "floor", deepest.Z, "position", room.Position().String())
	return room
}

// artifactItem returns a fresh artifact drawn from the catalog, or the
// fallback relic when the catalog has none
func artifactItem(s *dice.Stream, c *catalog.Catalog) *items.Item {
	if def, ok := dice.Pick(s, c.Artifacts()); ok {
		return items.CreateItemFromDefinition(def)
	}
	return items.NewItem(catalog.FallbackArtifactName, items.Artifact, 100, "An ancient magical relic")
}
