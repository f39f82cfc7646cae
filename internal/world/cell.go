package world

import "github.com/lawnchairsociety/dungeongen/internal/items"

// CellType tags a grid cell
type CellType int

const (
	CellEmpty CellType = iota
	CellRoom
	CellHallway
)

// String returns the string representation of a CellType
func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellRoom:
		return "room"
	case CellHallway:
		return "hallway"
	default:
		return "unknown"
	}
}

// Cell is one tile of a floor grid
type Cell struct {
	Type  CellType
	Room  *Room // Owning room, nil for empty and hallway cells
	Items []*items.Item
	// LockedDoors maps direction -> required key name
	LockedDoors map[Direction]string
	// BlockedPassages maps direction -> required trigger name
	BlockedPassages  map[Direction]string
	StairsUp         bool
	StairsDown       bool
	StairsUpTarget   Position
	StairsDownTarget Position
	Effect           *MapEffect
}

func newCell() *Cell {
	return &Cell{
		Type:            CellEmpty,
		Items:           make([]*items.Item, 0),
		LockedDoors:     make(map[Direction]string),
		BlockedPassages: make(map[Direction]string),
	}
}

// Walkable returns true for room and hallway cells
func (c *Cell) Walkable() bool {
	return c.Type == CellRoom || c.Type == CellHallway
}

// HasStairs returns true if either stair flag is set
func (c *Cell) HasStairs() bool {
	return c.StairsUp || c.StairsDown
}

// HasObstacle returns true if the cell carries a locked door or blocked passage
func (c *Cell) HasObstacle() bool {
	return len(c.LockedDoors) > 0 || len(c.BlockedPassages) > 0
}

func (c *Cell) AddItem(item *items.Item) {
	items.AddItem(&c.Items, item)
}

func (c *Cell) RemoveItem(itemName string) (*items.Item, bool) {
	return items.RemoveItem(&c.Items, itemName)
}

func (c *Cell) HasItem(itemName string) bool {
	return items.HasItem(c.Items, itemName)
}
