package items

import (
	"fmt"
	"maps"
	"strings"
)

// Item represents an item placed in the dungeon
type Item struct {
	Name          string
	Description   string
	Type          ItemType
	Value         int // Gold value
	AttackBonus   int
	DefenseBonus  int
	HealthBonus   int
	StatusEffects map[string]int // effect name -> magnitude
	StatusEffect  string         // single named effect applied on use, if any
}

// NewItem creates a new item with the given properties
func NewItem(name string, itemType ItemType, value int, description string) *Item {
	return &Item{
		Name:          name,
		Description:   description,
		Type:          itemType,
		Value:         value,
		StatusEffects: make(map[string]int),
	}
}

// NewKey creates a key item with the default value used for generated keys
func NewKey(name string) *Item {
	return NewItem(name, Key, 10, fmt.Sprintf("A key to unlock %s", strings.ToLower(name)))
}

// Clone returns a deep copy of the item. Items drawn from a catalog are
// cloned before placement so that rooms never share an item instance.
func (i *Item) Clone() *Item {
	c := *i
	c.StatusEffects = maps.Clone(i.StatusEffects)
	if c.StatusEffects == nil {
		c.StatusEffects = make(map[string]int)
	}
	return &c
}

// String returns a short human-readable description of the item
func (i *Item) String() string {
	var bonuses []string
	if i.AttackBonus != 0 {
		bonuses = append(bonuses, fmt.Sprintf("atk %+d", i.AttackBonus))
	}
	if i.DefenseBonus != 0 {
		bonuses = append(bonuses, fmt.Sprintf("def %+d", i.DefenseBonus))
	}
	if i.HealthBonus != 0 {
		bonuses = append(bonuses, fmt.Sprintf("hp %+d", i.HealthBonus))
	}
	if len(bonuses) == 0 {
		return fmt.Sprintf("%s (%s)", i.Name, i.Type)
	}
	return fmt.Sprintf("%s (%s, %s)", i.Name, i.Type, strings.Join(bonuses, ", "))
}
