package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lawnchairsociety/dungeongen/internal/graph"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

// sealed reports whether the cell at p has a locked door or blocked passage
// on side d
func (f *Floor) sealed(p world.Position, d world.Direction) bool {
	c := f.Grid.CellAt(p)
	if c == nil || !c.HasObstacle() {
		return false
	}
	if _, ok := c.LockedDoors[d]; ok {
		return true
	}
	_, ok := c.BlockedPassages[d]
	return ok
}

// openNeighbors is Grid.Neighbors minus the moves an obstacle forbids. An
// obstacle seals the side of its cell in both directions.
func (f *Floor) openNeighbors(p world.Position) []world.Position {
	out := make([]world.Position, 0, 4)
	for _, d := range world.CardinalDirections() {
		n := p.Step(d)
		if !f.Grid.Walkable(n.X, n.Y) {
			continue
		}
		if f.sealed(p, d) || f.sealed(n, d.Opposite()) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Reachable returns every cell reachable from the floor's start room. With
// respectObstacles set, locked doors and blocked passages stop movement.
func (f *Floor) Reachable(respectObstacles bool) mapset.Set[world.Position] {
	if f.Start == nil {
		return mapset.New[world.Position]()
	}
	next := f.Grid.Neighbors
	if respectObstacles {
		next = f.openNeighbors
	}
	return graph.Reachable(f.Start.Cells(), next)
}

// ShortestPath returns a shortest walkable path between two positions on the
// same floor, ignoring obstacles. Returns nil when either end is not
// walkable, the floors differ, or no path exists.
func (d *Dungeon) ShortestPath(from, to world.Position) []world.Position {
	if from.Z != to.Z {
		return nil
	}
	f := d.Floor(from.Z)
	if f == nil || !f.Grid.Walkable(from.X, from.Y) || !f.Grid.Walkable(to.X, to.Y) {
		return nil
	}
	return graph.Path(from, to, f.Grid.Neighbors)
}
