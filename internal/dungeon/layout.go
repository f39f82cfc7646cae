package dungeon

import (
	"slices"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

const (
	roomPadding      = 2  // Minimum gap kept around every room
	placementRetries = 50 // Jittered attempts after a blocked placement
	retryJitter      = 5
	pathJitter       = 3
	stepsPerRoom     = 8 // Manhattan distance covered by each intermediate room
	minIntermediate  = 3
)

// sizeRange bounds the width and height of a room type
type sizeRange struct {
	minW, maxW, minH, maxH int
}

var roomSizes = map[world.RoomType]sizeRange{
	world.RoomTypeEmpty:    {2, 4, 2, 4},
	world.RoomTypeTreasure: {3, 5, 3, 5},
	world.RoomTypeMonster:  {3, 6, 3, 6},
	world.RoomTypeNPC:      {3, 4, 3, 4},
	world.RoomTypeStorage:  {2, 4, 2, 5},
	world.RoomTypeBunk:     {2, 3, 2, 4},
	world.RoomTypeKitchen:  {3, 5, 2, 4},
	world.RoomTypeLibrary:  {3, 4, 3, 6},
	world.RoomTypeWorkshop: {3, 5, 2, 5},
	world.RoomTypeGarden:   {3, 6, 3, 4},
}

var defaultRoomSize = sizeRange{3, 5, 3, 5}

// mainPathTypes are the types intermediate main-path rooms are drawn from
var mainPathTypes = []world.RoomType{
	world.RoomTypeEmpty,
	world.RoomTypeTreasure,
	world.RoomTypeMonster,
	world.RoomTypeNPC,
}

// branchTypes are the built-in types branch rooms are drawn from
var branchTypes = []world.RoomType{
	world.RoomTypeTreasure,
	world.RoomTypeMonster,
	world.RoomTypeNPC,
	world.RoomTypeStorage,
	world.RoomTypeLibrary,
	world.RoomTypeWorkshop,
	world.RoomTypeGarden,
}

func sizeFor(t world.RoomType) sizeRange {
	if r, ok := roomSizes[t]; ok {
		return r
	}
	return defaultRoomSize
}

// roomLink is a (branch, anchor) pair joined by a single hallway
type roomLink struct {
	anchor, branch *world.Room
}

// floorBuilder places the rooms of one floor
type floorBuilder struct {
	floor   *Floor
	stream  *dice.Stream
	catalog *catalog.Catalog
}

// buildFloor lays out the start room, the exit room, the main path between
// them, and the branch rooms. Hallways are carved separately.
func buildFloor(z int, g *world.Grid, s *dice.Stream, c *catalog.Catalog) *Floor {
	b := &floorBuilder{
		floor:   &Floor{Z: z, Grid: g},
		stream:  s,
		catalog: c,
	}

	start := b.placeStart()
	exit, exitCenter := b.placeExit()

	path := []*world.Room{start}
	path = append(path, b.placeIntermediates(start, exitCenter)...)
	if exit != nil {
		path = append(path, exit)
	}
	b.floor.Start = start
	b.floor.Exit = exit
	b.floor.MainPath = path

	b.placeBranches()

	logger.Debug("Floor laid out",
		"floor", z,
		"main_path", len(path),
		"branches", len(b.floor.branches),
		"rooms", len(b.floor.Rooms))

	return b.floor
}

func (b *floorBuilder) placeStart() *world.Room {
	s := b.stream
	w, h := s.Range(3, 5), s.Range(3, 5)
	x, y := s.Range(2, 8), s.Range(2, 8)

	roomType := world.RoomTypeHub
	if b.floor.Z == 0 {
		roomType = world.RoomTypeEntrance
	}

	room := world.NewRoom(x, y, b.floor.Z, w, h, roomType)
	b.commit(room)
	return room
}

// placeExit returns the exit room along with the center the main path should
// head toward. When every jittered attempt is blocked the exit goes to the
// free spot nearest the bottom-right corner. The room is nil only if the
// floor has no space left for it at all.
func (b *floorBuilder) placeExit() (*world.Room, world.Position) {
	s := b.stream
	g := b.floor.Grid
	w, h := s.Range(3, 5), s.Range(3, 5)
	x, y := s.Range(g.Width-10, g.Width-5), s.Range(g.Height-10, g.Height-5)

	target := world.Position{X: x + w/2, Y: y + h/2, Z: b.floor.Z}
	if room, ok := b.tryPlace(x, y, w, h, world.RoomTypeExit); ok {
		return room, target
	}
	room, ok := b.placeFromCorner(w, h, world.RoomTypeExit)
	if !ok {
		logger.Warning("Exit room dropped", "floor", b.floor.Z)
		return nil, target
	}
	logger.Debug("Exit room moved to corner", "floor", b.floor.Z, "position", room.Position())
	return room, room.Center()
}

func (b *floorBuilder) placeIntermediates(start *world.Room, exitCenter world.Position) []*world.Room {
	s := b.stream
	g := b.floor.Grid
	count := max(minIntermediate, start.Center().Manhattan(exitCenter)/stepsPerRoom)

	var placed []*world.Room
	prev := start
	for i := 0; i < count; i++ {
		from := prev.Center()
		progress := float64(i+1) / float64(count+1)
		midX := from.X + int(float64(exitCenter.X-from.X)*progress)
		midY := from.Y + int(float64(exitCenter.Y-from.Y)*progress)

		midX = clamp(midX+s.Range(-pathJitter, pathJitter), 1, g.Width-6)
		midY = clamp(midY+s.Range(-pathJitter, pathJitter), 1, g.Height-6)

		roomType, _ := dice.Pick(s, mainPathTypes)
		size := sizeFor(roomType)
		w, h := s.Range(size.minW, size.maxW), s.Range(size.minH, size.maxH)

		room, ok := b.tryPlace(midX-w/2, midY-h/2, w, h, roomType)
		if !ok {
			logger.Debug("Main path step skipped", "floor", b.floor.Z, "step", i)
			continue
		}
		placed = append(placed, room)
		prev = room
	}
	return placed
}

func (b *floorBuilder) placeBranches() {
	s := b.stream
	g := b.floor.Grid
	pool := b.branchPool()

	attempts := s.Range(5, 10)
	for i := 0; i < attempts; i++ {
		anchor, _ := dice.Pick(s, b.floor.MainPath)
		dir, _ := dice.Pick(s, world.CardinalDirections())
		offset := s.Range(5, 10)
		dx, dy := dir.Delta()
		center := anchor.Center()
		cx, cy := center.X+dx*offset, center.Y+dy*offset

		roomType, _ := dice.Pick(s, pool)
		size := sizeFor(roomType)
		w, h := s.Range(size.minW, size.maxW), s.Range(size.minH, size.maxH)

		x := clamp(cx-w/2, 0, g.Width-w)
		y := clamp(cy-h/2, 0, g.Height-h)
		room := world.NewRoom(x, y, b.floor.Z, w, h, roomType)
		if !b.fits(room) {
			continue
		}
		b.commit(room)
		b.floor.branches = append(b.floor.branches, roomLink{anchor: anchor, branch: room})
	}
}

// branchPool returns the built-in branch types followed by any catalog
// template types that name a non-structural room type
func (b *floorBuilder) branchPool() []world.RoomType {
	pool := append([]world.RoomType(nil), branchTypes...)
	for _, name := range b.catalog.TemplateTypes() {
		t, ok := world.ParseRoomType(name)
		if !ok || t.IsCorridorRoom() || t == world.RoomTypeArtifact || slices.Contains(pool, t) {
			continue
		}
		pool = append(pool, t)
	}
	return pool
}

// tryPlace attempts the room at (x, y), then up to placementRetries jittered
// positions around it. The returned bool is false when every attempt overlapped.
func (b *floorBuilder) tryPlace(x, y, w, h int, roomType world.RoomType) (*world.Room, bool) {
	g := b.floor.Grid
	s := b.stream

	room := world.NewRoom(clamp(x, 0, g.Width-w), clamp(y, 0, g.Height-h), b.floor.Z, w, h, roomType)
	if b.fits(room) {
		b.commit(room)
		return room, true
	}

	for attempt := 0; attempt < placementRetries; attempt++ {
		room.X = clamp(x+s.Range(-retryJitter, retryJitter), 0, g.Width-w)
		room.Y = clamp(y+s.Range(-retryJitter, retryJitter), 0, g.Height-h)
		if b.fits(room) {
			b.commit(room)
			return room, true
		}
	}
	return nil, false
}

// placeFromCorner scans from the bottom-right corner, row by row, and commits
// the room at the first position that fits. Positions are not drawn from the
// stream.
func (b *floorBuilder) placeFromCorner(w, h int, roomType world.RoomType) (*world.Room, bool) {
	g := b.floor.Grid
	room := world.NewRoom(0, 0, b.floor.Z, w, h, roomType)
	for y := g.Height - h; y >= 0; y-- {
		for x := g.Width - w; x >= 0; x-- {
			room.X, room.Y = x, y
			if b.fits(room) {
				b.commit(room)
				return room, true
			}
		}
	}
	return nil, false
}

// fits reports whether the room lies on the grid and clears every placed
// room by the padding margin
func (b *floorBuilder) fits(room *world.Room) bool {
	if !b.floor.Grid.Fits(room) {
		return false
	}
	for _, other := range b.floor.Rooms {
		if room.Overlaps(other, roomPadding) {
			return false
		}
	}
	return true
}

func (b *floorBuilder) commit(room *world.Room) {
	room.Description = describeRoom(room.Type, b.stream, b.catalog)
	b.floor.Grid.SetRoom(room)
	b.floor.Rooms = append(b.floor.Rooms, room)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

