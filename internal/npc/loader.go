package npc

// EnemyDefinition represents an enemy entry from a content catalog.
// Scaling fields are pointers so that an explicit zero can be told apart
// from an unset value.
type EnemyDefinition struct {
	Name           string   `yaml:"name" json:"name"`
	Health         int      `yaml:"health" json:"health"`
	Attack         int      `yaml:"attack" json:"attack"`
	Defense        int      `yaml:"defense" json:"defense"`
	Speed          int      `yaml:"speed,omitempty" json:"speed,omitempty"`
	MinFloor       int      `yaml:"min_floor,omitempty" json:"min_floor,omitempty"`
	HealthScaling  *int     `yaml:"health_scaling,omitempty" json:"health_scaling,omitempty"`
	AttackScaling  *int     `yaml:"attack_scaling,omitempty" json:"attack_scaling,omitempty"`
	DefenseScaling *int     `yaml:"defense_scaling,omitempty" json:"defense_scaling,omitempty"`
	ExpReward      int      `yaml:"exp_reward,omitempty" json:"exp_reward,omitempty"`
	GoldMin        int      `yaml:"gold_min,omitempty" json:"gold_min,omitempty"`
	GoldMax        int      `yaml:"gold_max,omitempty" json:"gold_max,omitempty"`
	Drops          []string `yaml:"drops,omitempty" json:"drops,omitempty"`
}

// QuestDefinition represents quest data attached to a catalog NPC
type QuestDefinition struct {
	TargetItem  string `yaml:"target_item" json:"target_item"`
	Reward      string `yaml:"reward" json:"reward"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// NPCDefinition represents an NPC entry from a content catalog
type NPCDefinition struct {
	Name      string            `yaml:"name" json:"name"`
	Health    int               `yaml:"health" json:"health"`
	Attack    int               `yaml:"attack,omitempty" json:"attack,omitempty"`
	Defense   int               `yaml:"defense,omitempty" json:"defense,omitempty"`
	Dialogues []string          `yaml:"dialogues,omitempty" json:"dialogues,omitempty"`
	Quests    []QuestDefinition `yaml:"quests,omitempty" json:"quests,omitempty"`
}

// defaultSpeed is used when a definition omits speed
const defaultSpeed = 10

func scalingOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// CreateEntityFromDefinition creates an entity scaled for the given floor
func CreateEntityFromDefinition(def EnemyDefinition, floor int) *Entity {
	health := ScaleLinear(def.Health, scalingOr(def.HealthScaling, DefaultHealthScaling), floor)
	attack := ScaleLinear(def.Attack, scalingOr(def.AttackScaling, DefaultAttackScaling), floor)
	defense := ScaleLinear(def.Defense, scalingOr(def.DefenseScaling, DefaultDefenseScaling), floor)

	speed := def.Speed
	if speed == 0 {
		speed = defaultSpeed
	}

	e := NewEntity(def.Name, health, attack, defense, speed)
	e.Level = floor
	e.ExpReward = ScaleXP(def.ExpReward, floor)
	e.GoldMin = ScaleGold(def.GoldMin, floor)
	e.GoldMax = ScaleGold(def.GoldMax, floor)
	if len(def.Drops) > 0 {
		e.Drops = append([]string(nil), def.Drops...)
	}
	return e
}

// SuitableForFloor returns the definitions allowed on the given floor
// (min_floor <= floor), in catalog order. When none qualify, all
// definitions are returned.
func SuitableForFloor(defs []EnemyDefinition, floor int) []EnemyDefinition {
	var out []EnemyDefinition
	for _, def := range defs {
		if def.MinFloor <= floor {
			out = append(out, def)
		}
	}
	if len(out) == 0 {
		return defs
	}
	return out
}

// CreateNPCFromDefinition creates an NPC. quest may be nil.
func CreateNPCFromDefinition(def NPCDefinition, quest *QuestDefinition) *NPC {
	n := NewNPC(def.Name, def.Health, def.Attack, def.Defense, def.Dialogues)
	if quest != nil {
		n.Quest = &Quest{
			TargetItem:  quest.TargetItem,
			Reward:      quest.Reward,
			Description: quest.Description,
		}
	}
	return n
}
