package world

import "strings"

// RoomType represents the category of a room
type RoomType int

const (
	RoomTypeEntrance RoomType = iota // Start room of the top floor
	RoomTypeHub                      // Start room of every other floor
	RoomTypeExit                     // Last room of the main path
	RoomTypeEmpty
	RoomTypeTreasure
	RoomTypeMonster
	RoomTypeNPC
	RoomTypeStorage
	RoomTypeBunk
	RoomTypeKitchen
	RoomTypeLibrary
	RoomTypeWorkshop
	RoomTypeGarden
	RoomTypeArtifact // Win-condition room, deepest floor only
)

var roomTypeNames = [...]string{
	RoomTypeEntrance: "entrance",
	RoomTypeHub:      "hub",
	RoomTypeExit:     "exit",
	RoomTypeEmpty:    "empty",
	RoomTypeTreasure: "treasure",
	RoomTypeMonster:  "monster",
	RoomTypeNPC:      "npc",
	RoomTypeStorage:  "storage",
	RoomTypeBunk:     "bunk",
	RoomTypeKitchen:  "kitchen",
	RoomTypeLibrary:  "library",
	RoomTypeWorkshop: "workshop",
	RoomTypeGarden:   "garden",
	RoomTypeArtifact: "artifact",
}

// String returns the string representation of a RoomType
func (t RoomType) String() string {
	if t < 0 || int(t) >= len(roomTypeNames) {
		return "unknown"
	}
	return roomTypeNames[t]
}

// IsCorridorRoom returns true for the structural main-path types that are
// never chosen for branch rooms
func (t RoomType) IsCorridorRoom() bool {
	return t == RoomTypeEntrance || t == RoomTypeHub || t == RoomTypeExit
}

// ParseRoomType converts a type tag to a RoomType, ignoring case
func ParseRoomType(s string) (RoomType, bool) {
	for i, name := range roomTypeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return RoomType(i), true
		}
	}
	return RoomTypeEmpty, false
}
