package catalog

import (
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

// Fallback names used when a catalog category is empty
const (
	FallbackArtifactName = "Ancient Relic"
	FallbackItemName     = "Health Potion"
	FallbackNPCName      = "Friendly Merchant"
)

// DefaultItems returns the built-in item set
func DefaultItems() []items.ItemDefinition {
	return []items.ItemDefinition{
		{Name: "Iron Sword", Type: "weapon", Value: 50, AttackBonus: 5},
		{Name: "Steel Sword", Type: "weapon", Value: 80, AttackBonus: 8},
		{Name: "Magic Sword", Type: "weapon", Value: 120, AttackBonus: 12, StatusEffect: "burn", StatusEffects: map[string]int{"burn": 3}},
		{Name: "Dagger", Type: "weapon", Value: 25, AttackBonus: 4},
		{Name: "Bow", Type: "weapon", Value: 70, AttackBonus: 6},
		{Name: "Staff", Type: "weapon", Value: 60, AttackBonus: 5, StatusEffect: "stun"},
		{Name: "Leather Armor", Type: "armor", Value: 30, DefenseBonus: 3},
		{Name: "Chain Mail", Type: "armor", Value: 60, DefenseBonus: 6},
		{Name: "Plate Armor", Type: "armor", Value: 150, DefenseBonus: 12},
		{Name: "Shield", Type: "armor", Value: 60, DefenseBonus: 5},
		{Name: "Helmet", Type: "armor", Value: 40, DefenseBonus: 4},
		{Name: "Health Potion", Type: "consumable", Value: 20, HealthBonus: 20, Description: "Restores 20 HP"},
		{Name: "Strength Potion", Type: "consumable", Value: 40, Description: "Temporarily increases attack"},
		{Name: "Torch", Type: "tool", Value: 5, Description: "Pushes back the dark"},
	}
}

// DefaultKeys returns the built-in key set
func DefaultKeys() []items.ItemDefinition {
	return []items.ItemDefinition{
		{Name: "Golden Key", Type: "key", Value: 10},
		{Name: "Silver Key", Type: "key", Value: 5},
		{Name: "Crystal Key", Type: "key", Value: 20},
	}
}

// DefaultTriggers returns the built-in trigger set
func DefaultTriggers() []items.ItemDefinition {
	return []items.ItemDefinition{
		{Name: "Rune", Type: "trigger", Value: 15, Description: "A glowing rune that dissolves magical barriers"},
	}
}

// DefaultArtifacts returns the built-in artifact set
func DefaultArtifacts() []items.ItemDefinition {
	return []items.ItemDefinition{
		{Name: FallbackArtifactName, Type: "artifact", Value: 100, Description: "An ancient magical relic"},
	}
}

// DefaultEnemies returns the built-in enemy roster
func DefaultEnemies() []npc.EnemyDefinition {
	return []npc.EnemyDefinition{
		{Name: "Goblin", Health: 20, Attack: 5, Defense: 2, MinFloor: 0, ExpReward: 10, GoldMin: 1, GoldMax: 5},
		{Name: "Orc", Health: 40, Attack: 8, Defense: 4, MinFloor: 1, ExpReward: 20, GoldMin: 3, GoldMax: 10},
		{Name: "Skeleton", Health: 25, Attack: 6, Defense: 3, MinFloor: 0, ExpReward: 12},
		{Name: "Zombie", Health: 30, Attack: 7, Defense: 2, MinFloor: 0, ExpReward: 12},
		{Name: "Ghost", Health: 40, Attack: 10, Defense: 5, MinFloor: 1, ExpReward: 25},
		{Name: "Ogre", Health: 50, Attack: 12, Defense: 6, MinFloor: 1, ExpReward: 30, GoldMin: 5, GoldMax: 20},
		{Name: "Troll", Health: 70, Attack: 14, Defense: 10, MinFloor: 2, ExpReward: 45, GoldMin: 10, GoldMax: 25},
		{Name: "Demon", Health: 60, Attack: 15, Defense: 8, MinFloor: 2, ExpReward: 50},
		{Name: "Dragon", Health: 100, Attack: 20, Defense: 15, MinFloor: 3, ExpReward: 100, GoldMin: 50, GoldMax: 150},
		{Name: "Ancient Guardian", Health: 80, Attack: 18, Defense: 12, MinFloor: 2, ExpReward: 80},
		{Name: "Spider", Health: 15, Attack: 5, Defense: 1, MinFloor: 0, ExpReward: 6},
		{Name: "Bat", Health: 10, Attack: 4, Defense: 1, MinFloor: 0, ExpReward: 4},
	}
}

// DefaultNPCs returns the built-in NPC set
func DefaultNPCs() []npc.NPCDefinition {
	return []npc.NPCDefinition{
		{Name: FallbackNPCName, Health: 10, Attack: 3, Defense: 1,
			Dialogues: []string{"Welcome traveler!", "Need supplies?", "Watch out for monsters ahead!"}},
		{Name: "Wounded Adventurer", Health: 25, Attack: 5, Defense: 2,
			Dialogues: []string{"Please... help...", "Monsters... everywhere...", "Take this..."}},
		{Name: "Mysterious Hermit", Health: 15, Attack: 4, Defense: 3,
			Dialogues: []string{"The path forward is treacherous...", "Look for hidden passages...", "Knowledge is power."},
			Quests: []npc.QuestDefinition{
				{TargetItem: "Rune", Reward: "Magic Sword", Description: "Bring the hermit a rune and learn its secret."},
			}},
		{Name: "Dungeon Guide", Health: 20, Attack: 6, Defense: 5,
			Dialogues: []string{"I can show you the way...", "Be careful in the deeper levels...", "Keys unlock more than doors."}},
	}
}

// WithDefaults returns a copy of the catalog in which every empty category
// the generator relies on is filled from the built-in sets. The receiver is
// not modified.
func (c *Catalog) WithDefaults() *Catalog {
	out := &Catalog{
		RoomTemplates: append([]RoomTemplate(nil), c.RoomTemplates...),
		Items:         append([]items.ItemDefinition(nil), c.Items...),
		Enemies:       append([]npc.EnemyDefinition(nil), c.Enemies...),
		NPCs:          append([]npc.NPCDefinition(nil), c.NPCs...),
	}

	if len(out.Loot()) == 0 {
		logger.Warning("Catalog has no loot items, using defaults")
		out.Items = append(out.Items, DefaultItems()...)
	}
	if len(out.Keys()) == 0 {
		logger.Warning("Catalog has no key items, using defaults")
		out.Items = append(out.Items, DefaultKeys()...)
	}
	if len(out.Triggers()) == 0 {
		logger.Debug("Catalog has no trigger items, using defaults")
		out.Items = append(out.Items, DefaultTriggers()...)
	}
	if len(out.Artifacts()) == 0 {
		logger.Warning("Catalog has no artifact items, using fallback", "artifact", FallbackArtifactName)
		out.Items = append(out.Items, DefaultArtifacts()...)
	}
	if len(out.Enemies) == 0 {
		logger.Warning("Catalog has no enemies, using defaults")
		out.Enemies = DefaultEnemies()
	}
	if len(out.NPCs) == 0 {
		logger.Warning("Catalog has no NPCs, using defaults")
		out.NPCs = DefaultNPCs()
	}

	return out
}

// Default returns the complete built-in catalog. It carries no room
// templates, so floor count falls to the minimum unless the enemy roster
// raises it.
func Default() *Catalog {
	var all []items.ItemDefinition
	all = append(all, DefaultItems()...)
	all = append(all, DefaultKeys()...)
	all = append(all, DefaultTriggers()...)
	all = append(all, DefaultArtifacts()...)
	return &Catalog{
		Items:   all,
		Enemies: DefaultEnemies(),
		NPCs:    DefaultNPCs(),
	}
}
