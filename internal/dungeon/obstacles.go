package dungeon

import (
	"cmp"
	"slices"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/graph"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

const (
	maxLockedDoors     = 5
	maxBlockedPassages = 3
)

// ObstacleKind distinguishes locked doors from blocked passages
type ObstacleKind int

const (
	LockedDoor     ObstacleKind = iota // Opened with a key
	BlockedPassage                     // Cleared with a trigger item
)

// String returns the string representation of an ObstacleKind
func (k ObstacleKind) String() string {
	switch k {
	case LockedDoor:
		return "locked_door"
	case BlockedPassage:
		return "blocked_passage"
	default:
		return "unknown"
	}
}

// Obstacle records one locked door or blocked passage placed on a hallway
// cell, and where its unlocking item can be found
type Obstacle struct {
	Kind             ObstacleKind
	Position         world.Position
	Direction        world.Direction
	Requires         string         // Name of the unlocking item
	Distance         int            // Hop distance of the obstacle cell from the start room
	Solution         world.Position // Cell holding the unlocking item
	SolutionDistance int
}

// hopDistances returns the BFS hop count of every walkable cell from the
// floor's start room, ignoring obstacles. Every start-room cell is at 0.
func hopDistances(f *Floor) map[world.Position]int {
	if f.Start == nil {
		return map[world.Position]int{}
	}
	return graph.Distances(f.Start.Cells(), f.Grid.Neighbors)
}

// roomDistance is the minimum hop distance over the room's cells
func roomDistance(r *world.Room, dist map[world.Position]int) (int, bool) {
	best, found := 0, false
	for _, p := range r.Cells() {
		if d, ok := dist[p]; ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}

// obstaclePlacer holds the per-floor state of obstacle placement
type obstaclePlacer struct {
	floor   *Floor
	stream  *dice.Stream
	catalog *catalog.Catalog
	dist    map[world.Position]int
	early   []world.Position
}

// placeObstacles puts locked doors and blocked passages on the later half
// of the floor's hallway cells. An obstacle is only recorded once an item
// that satisfies it sits at a strictly lower hop distance; otherwise it is
// skipped.
func placeObstacles(f *Floor, s *dice.Stream, c *catalog.Catalog) []Obstacle {
	dist := hopDistances(f)

	var hallways []world.Position
	for _, p := range f.Grid.HallwayCells() {
		if _, ok := dist[p]; ok {
			hallways = append(hallways, p)
		}
	}
	if len(hallways) == 0 {
		return nil
	}

	slices.SortFunc(hallways, func(a, b world.Position) int {
		return cmp.Or(
			cmp.Compare(dist[a], dist[b]),
			cmp.Compare(a.Y, b.Y),
			cmp.Compare(a.X, b.X),
		)
	})

	mid := len(hallways) / 2
	p := &obstaclePlacer{
		floor:   f,
		stream:  s,
		catalog: c,
		dist:    dist,
		early:   hallways[:mid],
	}

	var candidates []world.Position
	for _, pos := range hallways[mid:] {
		if !f.Grid.CellAt(pos).HasStairs() {
			candidates = append(candidates, pos)
		}
	}

	doors := dice.Sample(s, candidates, maxLockedDoors)
	remaining := slices.DeleteFunc(slices.Clone(candidates), func(pos world.Position) bool {
		return slices.Contains(doors, pos)
	})
	passages := dice.Sample(s, remaining, maxBlockedPassages)

	var placed []Obstacle
	keys := c.Keys()
	for _, pos := range doors {
		if o, ok := p.place(LockedDoor, pos, keys); ok {
			placed = append(placed, o)
		}
	}
	loot := c.Loot()
	for _, pos := range passages {
		if o, ok := p.place(BlockedPassage, pos, loot); ok {
			placed = append(placed, o)
		}
	}

	logger.Debug("Obstacles placed",
		"floor", f.Z,
		"hallways", len(hallways),
		"candidates", len(candidates),
		"placed", len(placed))

	return placed
}

func (p *obstaclePlacer) place(kind ObstacleKind, pos world.Position, pool []items.ItemDefinition) (Obstacle, bool) {
	def, ok := dice.Pick(p.stream, pool)
	if !ok {
		return Obstacle{}, false
	}
	dir, _ := dice.Pick(p.stream, world.CardinalDirections())

	d := p.dist[pos]
	solution, ok := p.ensureItemBefore(def, d)
	if !ok {
		logger.Debug("Obstacle skipped, no earlier cell for its item",
			"floor", p.floor.Z, "kind", kind.String(), "requires", def.Name)
		return Obstacle{}, false
	}

	cell := p.floor.Grid.CellAt(pos)
	switch kind {
	case LockedDoor:
		cell.LockedDoors[dir] = def.Name
	case BlockedPassage:
		cell.BlockedPassages[dir] = def.Name
	}

	return Obstacle{
		Kind:             kind,
		Position:         pos,
		Direction:        dir,
		Requires:         def.Name,
		Distance:         d,
		Solution:         solution,
		SolutionDistance: p.dist[solution],
	}, true
}

// ensureItemBefore finds an item named def.Name at hop distance below limit,
// reusing one already placed on an early hallway cell or in a room when
// possible, and otherwise injecting a fresh copy into a random early cell.
func (p *obstaclePlacer) ensureItemBefore(def items.ItemDefinition, limit int) (world.Position, bool) {
	var hosts []world.Position
	for _, pos := range p.early {
		if p.dist[pos] >= limit {
			continue
		}
		if p.floor.Grid.CellAt(pos).HasItem(def.Name) {
			return pos, true
		}
		hosts = append(hosts, pos)
	}

	for _, r := range p.floor.Rooms {
		if d, ok := roomDistance(r, p.dist); ok && d < limit && r.HasItem(def.Name) {
			return p.nearestCell(r), true
		}
	}

	host, ok := dice.Pick(p.stream, hosts)
	if !ok {
		return world.Position{}, false
	}
	p.floor.Grid.CellAt(host).AddItem(p.catalog.NewItem(def.Name))
	return host, true
}

// nearestCell returns the room cell closest to the start room
func (p *obstaclePlacer) nearestCell(r *world.Room) world.Position {
	cells := r.Cells()
	best := cells[0]
	for _, c := range cells[1:] {
		if d, ok := p.dist[c]; ok && d < p.dist[best] {
			best = c
		}
	}
	return best
}
