package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

// carveCorridors joins consecutive main-path rooms, then every branch room
// to its anchor
func carveCorridors(f *Floor, s *dice.Stream) {
	for i := 0; i+1 < len(f.MainPath); i++ {
		carveCorridor(f.Grid, s, f.MainPath[i], f.MainPath[i+1])
	}
	for _, link := range f.branches {
		carveCorridor(f.Grid, s, link.anchor, link.branch)
	}
}

// carveCorridor digs an L-shaped hallway between the two room centers and
// records the exits on both rooms. Only empty cells become hallway.
func carveCorridor(g *world.Grid, s *dice.Stream, a, b *world.Room) {
	from, to := a.Center(), b.Center()

	if s.Coin() {
		carveHorizontal(g, from.X, to.X, from.Y)
		carveVertical(g, from.Y, to.Y, to.X)
	} else {
		carveVertical(g, from.Y, to.Y, from.X)
		carveHorizontal(g, from.X, to.X, to.Y)
	}

	dir := world.DirectionBetween(from, to)
	a.Connect(dir, to)
	b.Connect(dir.Opposite(), from)
}

func carveHorizontal(g *world.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.CarveHallway(x, y)
	}
}

func carveVertical(g *world.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.CarveHallway(x, y)
	}
}
