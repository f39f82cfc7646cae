package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

// cellsPerEffect sets effect density: one effect per this many room cells
const cellsPerEffect = 10

type effectParams struct {
	triggerChance float64
	minStrength   int
	maxStrength   int
	description   string
}

var effectTable = map[world.EffectType]effectParams{
	world.EffectTrap:          {0.8, 5, 15, "This area seems dangerous - there might be hidden traps nearby."},
	world.EffectWetArea:       {0.0, 0, 0, "The ground is wet and soggy here."},
	world.EffectPoisonousArea: {0.6, 3, 8, "A toxic mist lingers in the air, making this area hazardous."},
	world.EffectIcySurface:    {0.3, 2, 2, "The floor is covered in ice, making it treacherous to walk on."},
	world.EffectDarkCorner:    {0.0, 0, 0, "Deep shadows obscure vision in this area."},
	world.EffectSlipperyFloor: {0.2, 1, 1, "The floor here is unusually slippery."},
	world.EffectLoudFloor:     {0.0, 0, 0, "The floor creaks and groans underfoot, echoing through the dungeon."},
	world.EffectMagneticField: {0.0, 0, 0, "A strange magnetic field tugs at metallic objects."},
}

// placeEffects scatters map effects over the room cells of a floor. A later
// effect on the same cell replaces the earlier one. Returns the number of
// effects rolled.
func placeEffects(f *Floor, s *dice.Stream) int {
	types := world.AllEffectTypes()
	rolled := 0
	for _, r := range f.Rooms {
		for i := 0; i < r.Area()/cellsPerEffect; i++ {
			x := s.Range(r.X, r.X+r.Width-1)
			y := s.Range(r.Y, r.Y+r.Height-1)
			t, _ := dice.Pick(s, types)
			f.Grid.Cell(x, y).Effect = newEffect(t, world.Position{X: x, Y: y, Z: f.Z}, s)
			rolled++
		}
	}
	return rolled
}

func newEffect(t world.EffectType, pos world.Position, s *dice.Stream) *world.MapEffect {
	def := effectTable[t]
	strength := def.minStrength
	if def.maxStrength > def.minStrength {
		strength = s.Range(def.minStrength, def.maxStrength)
	}
	return &world.MapEffect{
		Type:          t,
		Position:      pos,
		TriggerChance: def.triggerChance,
		Strength:      strength,
		Description:   def.description,
	}
}
