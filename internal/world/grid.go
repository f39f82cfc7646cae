package world

// Grid is the bounded lattice of cells for one floor
type Grid struct {
	Width, Height int
	Z             int
	cells         [][]*Cell // [y][x]
}

// NewGrid creates a grid of empty cells
func NewGrid(width, height, z int) *Grid {
	cells := make([][]*Cell, height)
	for y := range cells {
		row := make([]*Cell, width)
		for x := range row {
			row[x] = newCell()
		}
		cells[y] = row
	}
	return &Grid{Width: width, Height: height, Z: z, cells: cells}
}

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell returns the cell at (x, y), or nil when out of bounds
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// CellAt returns the cell at a position, ignoring its Z
func (g *Grid) CellAt(p Position) *Cell {
	return g.Cell(p.X, p.Y)
}

// Fits reports whether the room's rectangle lies entirely on the grid
func (g *Grid) Fits(r *Room) bool {
	return r.Width > 0 && r.Height > 0 &&
		g.InBounds(r.X, r.Y) && g.InBounds(r.X+r.Width-1, r.Y+r.Height-1)
}

// SetRoom marks every cell of the room's rectangle as a room cell owned by r
func (g *Grid) SetRoom(r *Room) {
	for _, p := range r.Cells() {
		if c := g.CellAt(p); c != nil {
			c.Type = CellRoom
			c.Room = r
		}
	}
}

// CarveHallway turns an empty cell into a hallway. Room and existing
// hallway cells are left untouched. Returns true if the cell changed.
func (g *Grid) CarveHallway(x, y int) bool {
	c := g.Cell(x, y)
	if c == nil || c.Type != CellEmpty {
		return false
	}
	c.Type = CellHallway
	return true
}

// Walkable reports whether (x, y) is a room or hallway cell
func (g *Grid) Walkable(x, y int) bool {
	c := g.Cell(x, y)
	return c != nil && c.Walkable()
}

// Neighbors returns the walkable cardinal neighbours of p in N, E, S, W order
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range CardinalDirections() {
		n := p.Step(d)
		if g.Walkable(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// Positions returns the positions of all cells of type t in row-major order
func (g *Grid) Positions(t CellType) []Position {
	var out []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x].Type == t {
				out = append(out, Position{X: x, Y: y, Z: g.Z})
			}
		}
	}
	return out
}

// HallwayCells returns every hallway position in row-major order
func (g *Grid) HallwayCells() []Position {
	return g.Positions(CellHallway)
}
