package items

import "strings"

// ItemType represents the category of an item
type ItemType int

const (
	Consumable ItemType = iota
	Weapon
	Armor
	Key
	Trigger
	Artifact
	Tool
)

// String returns the string representation of an ItemType
func (t ItemType) String() string {
	switch t {
	case Weapon:
		return "weapon"
	case Armor:
		return "armor"
	case Consumable:
		return "consumable"
	case Key:
		return "key"
	case Trigger:
		return "trigger"
	case Artifact:
		return "artifact"
	case Tool:
		return "tool"
	default:
		return "unknown"
	}
}

// ParseItemType converts a type tag to an ItemType, ignoring case and
// surrounding space. Unknown tags map to Consumable and report false.
func ParseItemType(s string) (ItemType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weapon":
		return Weapon, true
	case "armor":
		return Armor, true
	case "consumable":
		return Consumable, true
	case "key":
		return Key, true
	case "trigger":
		return Trigger, true
	case "artifact":
		return Artifact, true
	case "tool":
		return Tool, true
	default:
		return Consumable, false
	}
}
