package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

const artifactRoomDescription = "The ultimate treasure chamber. The final resting place of a powerful artifact."

var defaultDescriptions = map[world.RoomType]string{
	world.RoomTypeEntrance: "The entrance to this dungeon floor. A bright light comes from behind you.",
	world.RoomTypeHub:      "A central hub of this floor.",
	world.RoomTypeExit:     "The exit of this dungeon floor. A bright light shines ahead.",
	world.RoomTypeEmpty:    "An empty room with nothing of interest.",
	world.RoomTypeTreasure: "A room filled with valuable treasures.",
	world.RoomTypeMonster:  "A room inhabited by dangerous creatures.",
	world.RoomTypeNPC:      "A room containing a non-player character.",
	world.RoomTypeStorage:  "A storage room with various supplies.",
	world.RoomTypeBunk:     "A sleeping area with beds or resting spots.",
	world.RoomTypeKitchen:  "A room with cooking facilities and food supplies.",
	world.RoomTypeLibrary:  "A room filled with books and scrolls.",
	world.RoomTypeWorkshop: "A workshop with tools and crafting materials.",
	world.RoomTypeGarden:   "A small garden with plants and herbs.",
	world.RoomTypeArtifact: artifactRoomDescription,
}

// describeRoom picks a description from the first catalog template for the
// type, falling back to a built-in line. A draw is made only when the
// template has descriptions.
func describeRoom(t world.RoomType, s *dice.Stream, c *catalog.Catalog) string {
	if c != nil {
		if tmpl, ok := c.Template(t.String()); ok {
			if line, ok := dice.Pick(s, tmpl.Descriptions); ok {
				return line
			}
		}
	}
	if line, ok := defaultDescriptions[t]; ok {
		return line
	}
	return "A " + t.String() + " room."
}
