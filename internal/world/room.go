package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

// Room is a rectangle of cells on one floor. Contents are owned by the room
// and mutated in place by the game-state layer.
type Room struct {
	X, Y, Z       int // Top-left corner and floor
	Width, Height int
	Type          RoomType
	Description   string
	Items         []*items.Item
	Entities      []*npc.Entity
	NPCs          []*npc.NPC
	Exits         map[Direction]Position // direction -> connected room center
	LockedDoors   map[Direction]string   // direction -> required key name
	// BlockedPassages maps direction -> required trigger name
	BlockedPassages  map[Direction]string
	StairsUp         bool
	StairsDown       bool
	StairsUpTarget   Position
	StairsDownTarget Position
}

// NewRoom creates an empty room
func NewRoom(x, y, z, width, height int, roomType RoomType) *Room {
	return &Room{
		X:               x,
		Y:               y,
		Z:               z,
		Width:           width,
		Height:          height,
		Type:            roomType,
		Items:           make([]*items.Item, 0),
		Entities:        make([]*npc.Entity, 0),
		NPCs:            make([]*npc.NPC, 0),
		Exits:           make(map[Direction]Position),
		LockedDoors:     make(map[Direction]string),
		BlockedPassages: make(map[Direction]string),
	}
}

// Position returns the room's top-left corner
func (r *Room) Position() Position {
	return Position{X: r.X, Y: r.Y, Z: r.Z}
}

// Center returns the center cell of the room
func (r *Room) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2, Z: r.Z}
}

// Contains reports whether (x, y) lies inside the room on its floor
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether the two rooms' rectangles, each grown by padding
// on every side, intersect. Rooms on different floors never overlap.
func (r *Room) Overlaps(o *Room, padding int) bool {
	if r.Z != o.Z {
		return false
	}
	return r.X-padding < o.X+o.Width &&
		o.X < r.X+r.Width+padding &&
		r.Y-padding < o.Y+o.Height &&
		o.Y < r.Y+r.Height+padding
}

// Cells returns every position covered by the room in row-major order
func (r *Room) Cells() []Position {
	out := make([]Position, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			out = append(out, Position{X: x, Y: y, Z: r.Z})
		}
	}
	return out
}

// Area returns the number of cells the room covers
func (r *Room) Area() int {
	return r.Width * r.Height
}

// Connect records an exit toward another room's center
func (r *Room) Connect(dir Direction, target Position) {
	r.Exits[dir] = target
}

// ExitDirections returns the room's exit directions in a fixed order
func (r *Room) ExitDirections() []Direction {
	dirs := make([]Direction, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })
	return dirs
}

func (r *Room) AddItem(item *items.Item) {
	items.AddItem(&r.Items, item)
}

func (r *Room) RemoveItem(itemName string) (*items.Item, bool) {
	return items.RemoveItem(&r.Items, itemName)
}

func (r *Room) HasItem(itemName string) bool {
	return items.HasItem(r.Items, itemName)
}

func (r *Room) FindItem(partial string) (*items.Item, bool) {
	return items.FindItem(r.Items, partial)
}

// ClearItems removes every item from the room
func (r *Room) ClearItems() {
	r.Items = r.Items[:0]
}

// AddEntity adds a hostile entity to this room
func (r *Room) AddEntity(e *npc.Entity) {
	r.Entities = append(r.Entities, e)
}

// RemoveEntity removes an entity from this room
func (r *Room) RemoveEntity(e *npc.Entity) bool {
	for i, roomEntity := range r.Entities {
		if roomEntity == e {
			r.Entities = append(r.Entities[:i], r.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// LivingEntities returns the entities that still have health
func (r *Room) LivingEntities() []*npc.Entity {
	var out []*npc.Entity
	for _, e := range r.Entities {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// AddNPC adds an NPC to this room
func (r *Room) AddNPC(n *npc.NPC) {
	r.NPCs = append(r.NPCs, n)
}

// LockDoor locks the exit in a direction behind a key
func (r *Room) LockDoor(dir Direction, keyName string) {
	r.LockedDoors[dir] = keyName
}

// UnlockDoor removes a lock if keyName matches the required key
func (r *Room) UnlockDoor(dir Direction, keyName string) bool {
	required, ok := r.LockedDoors[dir]
	if !ok || !strings.EqualFold(required, keyName) {
		return false
	}
	delete(r.LockedDoors, dir)
	return true
}

// IsLocked returns true if the exit in the given direction is locked
func (r *Room) IsLocked(dir Direction) bool {
	_, ok := r.LockedDoors[dir]
	return ok
}

// BlockPassage blocks a direction behind a trigger item
func (r *Room) BlockPassage(dir Direction, triggerName string) {
	r.BlockedPassages[dir] = triggerName
}

// ClearPassage removes a block if triggerName matches
func (r *Room) ClearPassage(dir Direction, triggerName string) bool {
	required, ok := r.BlockedPassages[dir]
	if !ok || !strings.EqualFold(required, triggerName) {
		return false
	}
	delete(r.BlockedPassages, dir)
	return true
}

// IsBlocked returns true if the passage in the given direction is blocked
func (r *Room) IsBlocked(dir Direction) bool {
	_, ok := r.BlockedPassages[dir]
	return ok
}

// SetStairsDown marks the room as holding stairs down to target
func (r *Room) SetStairsDown(target Position) {
	r.StairsDown = true
	r.StairsDownTarget = target
	r.Exits[Down] = target
}

// SetStairsUp marks the room as holding stairs up to target
func (r *Room) SetStairsUp(target Position) {
	r.StairsUp = true
	r.StairsUpTarget = target
	r.Exits[Up] = target
}

// Describe builds a multi-line text description of the room and its contents
func (r *Room) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s room at %s (%dx%d) ===\n", r.Type, r.Position(), r.Width, r.Height)
	if r.Description != "" {
		b.WriteString(r.Description)
		b.WriteString("\n")
	}

	if living := r.LivingEntities(); len(living) > 0 {
		names := make([]string, len(living))
		for i, e := range living {
			names[i] = fmt.Sprintf("%s (hp %d, atk %d, def %d)", e.Name, e.Health, e.Attack, e.Defense)
		}
		b.WriteString("Enemies: " + strings.Join(names, ", ") + "\n")
	}

	if len(r.NPCs) > 0 {
		names := make([]string, len(r.NPCs))
		for i, n := range r.NPCs {
			names[i] = n.Name
			if n.HasQuest() {
				names[i] += fmt.Sprintf(" [quest: bring %s]", n.Quest.TargetItem)
			}
		}
		b.WriteString("NPCs: " + strings.Join(names, ", ") + "\n")
	}

	if len(r.Items) > 0 {
		names := make([]string, len(r.Items))
		for i, item := range r.Items {
			names[i] = item.String()
		}
		b.WriteString("Items: " + strings.Join(names, ", ") + "\n")
	}

	if dirs := r.ExitDirections(); len(dirs) > 0 {
		exits := make([]string, len(dirs))
		for i, d := range dirs {
			exits[i] = d.String()
		}
		b.WriteString("Exits: " + strings.Join(exits, ", ") + "\n")
	}

	return b.String()
}
