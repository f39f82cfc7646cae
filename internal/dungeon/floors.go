package dungeon

import "github.com/lawnchairsociety/dungeongen/internal/catalog"

// Floor count bounds
const (
	MinFloors = 3
	MaxFloors = 10
)

// FloorCount derives the number of floors from catalog content diversity:
// distinct template types plus distinct themes pick a base count, and a large
// enemy roster raises it. The result is always within [MinFloors, MaxFloors]
// and never touches the random stream.
func FloorCount(c *catalog.Catalog) int {
	if c == nil {
		return MinFloors
	}

	diversity := len(c.TemplateTypes()) + len(c.Themes())

	floors := MinFloors
	switch {
	case diversity >= 10:
		floors = 7
	case diversity >= 7:
		floors = 5
	}

	switch enemies := len(c.Enemies); {
	case enemies > 10:
		floors = max(floors, 5)
	case enemies > 5:
		floors = max(floors, 4)
	}

	return min(max(floors, MinFloors), MaxFloors)
}
