package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

var (
	styleRoom     = color.Style{color.FgBlue}
	styleHallway  = color.Style{color.FgGray}
	styleDoor     = color.Style{color.FgYellow, color.OpBold}
	styleBlocked  = color.Style{color.FgRed, color.OpBold}
	styleStairs   = color.Style{color.FgCyan, color.OpBold}
	styleArtifact = color.Style{color.FgMagenta, color.OpBold}
	styleEffect   = color.Style{color.FgGreen}
)

// cellGlyph returns the map symbol for a cell. Stairs win over obstacles,
// obstacles over the artifact room, and that over effects.
func cellGlyph(c *world.Cell, artifact *world.Room) (string, color.Style) {
	switch {
	case c.StairsDown:
		return ">", styleStairs
	case c.StairsUp:
		return "<", styleStairs
	case len(c.LockedDoors) > 0:
		return "D", styleDoor
	case len(c.BlockedPassages) > 0:
		return "B", styleBlocked
	case artifact != nil && c.Room == artifact:
		return "A", styleArtifact
	case c.Effect != nil:
		return "*", styleEffect
	case c.Type == world.CellRoom:
		return "#", styleRoom
	case c.Type == world.CellHallway:
		return ".", styleHallway
	default:
		return " ", nil
	}
}

// renderFloor writes one floor as a character map framed by a border
func renderFloor(w io.Writer, f *dungeon.Floor, artifact *world.Room) {
	g := f.Grid
	fmt.Fprintf(w, "Floor %d (%d rooms, %d obstacles)\n", f.Z, len(f.Rooms), len(f.Obstacles))

	border := "+" + strings.Repeat("-", g.Width) + "+\n"
	io.WriteString(w, border)
	for y := 0; y < g.Height; y++ {
		var line strings.Builder
		line.WriteString("|")
		for x := 0; x < g.Width; x++ {
			symbol, style := cellGlyph(g.Cell(x, y), artifact)
			if style == nil {
				line.WriteString(symbol)
				continue
			}
			line.WriteString(style.Sprint(symbol))
		}
		line.WriteString("|\n")
		io.WriteString(w, line.String())
	}
	io.WriteString(w, border)
}

func legend() string {
	return `
Legend:
  # Room cell
  . Hallway
  D Locked door (needs a key)
  B Blocked passage (needs a trigger item)
  < Stairs up
  > Stairs down
  A Artifact room
  * Map effect
`
}
