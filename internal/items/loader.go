package items

import "maps"

// ItemDefinition represents an item entry from a content catalog
type ItemDefinition struct {
	Name          string         `yaml:"name" json:"name"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Type          string         `yaml:"type" json:"type"`
	Value         int            `yaml:"value,omitempty" json:"value,omitempty"`
	AttackBonus   int            `yaml:"attack_bonus,omitempty" json:"attack_bonus,omitempty"`
	DefenseBonus  int            `yaml:"defense_bonus,omitempty" json:"defense_bonus,omitempty"`
	HealthBonus   int            `yaml:"health_bonus,omitempty" json:"health_bonus,omitempty"`
	StatusEffects map[string]int `yaml:"status_effects,omitempty" json:"status_effects,omitempty"`
	StatusEffect  string         `yaml:"status_effect,omitempty" json:"status_effect,omitempty"`
}

// ItemType returns the parsed type tag of the definition
func (d ItemDefinition) ItemType() ItemType {
	t, _ := ParseItemType(d.Type)
	return t
}

// CreateItemFromDefinition creates a fresh Item from a catalog definition
func CreateItemFromDefinition(def ItemDefinition) *Item {
	item := NewItem(def.Name, def.ItemType(), def.Value, def.Description)
	item.AttackBonus = def.AttackBonus
	item.DefenseBonus = def.DefenseBonus
	item.HealthBonus = def.HealthBonus
	item.StatusEffect = def.StatusEffect
	if len(def.StatusEffects) > 0 {
		item.StatusEffects = maps.Clone(def.StatusEffects)
	}
	return item
}

// FilterByType returns the definitions whose type tag matches t, in order
func FilterByType(defs []ItemDefinition, t ItemType) []ItemDefinition {
	var out []ItemDefinition
	for _, def := range defs {
		if def.ItemType() == t {
			out = append(out, def)
		}
	}
	return out
}

// ExcludeType returns the definitions whose type tag does not match t, in order
func ExcludeType(defs []ItemDefinition, t ItemType) []ItemDefinition {
	var out []ItemDefinition
	for _, def := range defs {
		if def.ItemType() != t {
			out = append(out, def)
		}
	}
	return out
}
