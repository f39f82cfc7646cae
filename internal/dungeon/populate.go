package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

const (
	monsterBonusItemChance = 0.3
	emptyRoomItemChance    = 0.2
)

// populatedTypes are the types an out-of-place artifact room is reassigned to
var populatedTypes = []world.RoomType{
	world.RoomTypeEmpty,
	world.RoomTypeTreasure,
	world.RoomTypeMonster,
	world.RoomTypeNPC,
	world.RoomTypeStorage,
	world.RoomTypeBunk,
	world.RoomTypeKitchen,
	world.RoomTypeLibrary,
	world.RoomTypeWorkshop,
	world.RoomTypeGarden,
}

// populator fills rooms according to their type
type populator struct {
	stream  *dice.Stream
	catalog *catalog.Catalog
	deepest int
}

// populateFloor fills every room on the floor in creation order
func populateFloor(f *Floor, s *dice.Stream, c *catalog.Catalog, deepest int) {
	p := &populator{stream: s, catalog: c, deepest: deepest}
	for _, r := range f.Rooms {
		p.populate(r)
	}
}

// populate dispatches on the room type. An artifact room off the deepest
// floor is retyped and dispatched again under its new type.
func (p *populator) populate(r *world.Room) {
	s := p.stream
	for {
		switch r.Type {
		case world.RoomTypeTreasure, world.RoomTypeStorage, world.RoomTypeKitchen, world.RoomTypeWorkshop:
			p.addItems(r, s.Range(1, 3))
			return

		case world.RoomTypeBunk, world.RoomTypeLibrary, world.RoomTypeGarden:
			p.addItems(r, s.Range(1, 2))
			return

		case world.RoomTypeMonster:
			n := s.Range(1, 3)
			for i := 0; i < n; i++ {
				r.AddEntity(p.randomEnemy(r.Z))
			}
			if s.Chance(monsterBonusItemChance) {
				r.AddItem(p.randomItem())
			}
			return

		case world.RoomTypeNPC:
			r.AddNPC(p.randomNPC())
			return

		case world.RoomTypeEmpty:
			if s.Chance(emptyRoomItemChance) {
				r.AddItem(p.randomItem())
			}
			return

		case world.RoomTypeArtifact:
			if r.Z == p.deepest {
				p.ensureSingleArtifact(r)
				return
			}
			t, _ := dice.Pick(s, populatedTypes)
			r.Type = t
			r.Description = describeRoom(t, s, p.catalog)

		default:
			// entrance, hub and exit stay empty
			return
		}
	}
}

func (p *populator) addItems(r *world.Room, n int) {
	for i := 0; i < n; i++ {
		r.AddItem(p.randomItem())
	}
}

// ensureSingleArtifact leaves exactly one artifact item in the room
func (p *populator) ensureSingleArtifact(r *world.Room) {
	switch items.CountType(r.Items, items.Artifact) {
	case 0:
		r.AddItem(artifactItem(p.stream, p.catalog))
		return
	case 1:
		return
	}

	kept := r.Items[:0]
	found := false
	for _, item := range r.Items {
		if item.Type == items.Artifact {
			if found {
				continue
			}
			found = true
		}
		kept = append(kept, item)
	}
	r.Items = kept
}

// randomItem returns a fresh non-artifact item
func (p *populator) randomItem() *items.Item {
	if def, ok := dice.Pick(p.stream, p.catalog.Loot()); ok {
		return items.CreateItemFromDefinition(def)
	}
	return items.NewItem(catalog.FallbackItemName, items.Consumable, 20, "Restores 20 HP")
}

// randomEnemy returns an enemy suited to the floor, scaled by depth
func (p *populator) randomEnemy(z int) *npc.Entity {
	if def, ok := dice.Pick(p.stream, npc.SuitableForFloor(p.catalog.Enemies, z)); ok {
		return npc.CreateEntityFromDefinition(def, z)
	}
	e := npc.NewEntity("Goblin", 20+z*5, 5+z, 2+z, 10)
	e.Level = z
	return e
}

// randomNPC returns a catalog NPC carrying its first quest, if any
func (p *populator) randomNPC() *npc.NPC {
	def, ok := dice.Pick(p.stream, p.catalog.NPCs)
	if !ok {
		return npc.NewNPC(catalog.FallbackNPCName, 10, 3, 1, []string{"Welcome traveler!", "Need supplies?"})
	}

	var quest *npc.QuestDefinition
	if len(def.Quests) > 0 {
		quest = &def.Quests[0]
	}
	return npc.CreateNPCFromDefinition(def, quest)
}
