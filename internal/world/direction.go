package world

import "fmt"

// Position is a cell coordinate; Z is the floor index, 0 being the top floor
type Position struct {
	X, Y, Z int
}

// String returns the position as "(x,y,z)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Step returns the position one cell away in a cardinal direction
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
}

// Manhattan returns the grid distance between two positions on the same floor
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction represents a movement direction. Up and Down connect floors.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Up
	Down
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the (dx, dy) step for a cardinal direction. North is -y.
// Up and Down have no planar step.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// CardinalDirections returns the four planar directions in a fixed order
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection converts a string (full name or first letter) to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "east", "e":
		return East, true
	case "south", "s":
		return South, true
	case "west", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	default:
		return North, false
	}
}

// DirectionBetween returns the cardinal direction from a to b, chosen by the
// axis with the larger difference. Ties go to the horizontal axis.
func DirectionBetween(a, b Position) Direction {
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return East
		}
		return West
	}
	if dy > 0 {
		return South
	}
	return North
}
