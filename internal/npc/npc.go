package npc

// Entity represents a hostile creature placed in a monster room
type Entity struct {
	Name      string
	Level     int // Floor the entity was scaled for
	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Speed     int
	ExpReward int
	GoldMin   int
	GoldMax   int
	Drops     []string // Item names this entity may drop
}

// NewEntity creates a new entity at full health
func NewEntity(name string, health, attack, defense, speed int) *Entity {
	return &Entity{
		Name:      name,
		Health:    health,
		MaxHealth: health,
		Attack:    attack,
		Defense:   defense,
		Speed:     speed,
	}
}

// IsAlive returns true if the entity has health remaining
func (e *Entity) IsAlive() bool {
	return e.Health > 0
}

// TakeDamage reduces health by damage minus defense (minimum 1) and returns
// the damage actually dealt
func (e *Entity) TakeDamage(damage int) int {
	actual := damage - e.Defense
	if actual < 1 {
		actual = 1
	}
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual
}

// Quest is a fetch request an NPC can hand out
type Quest struct {
	TargetItem  string // Item the player must bring
	Reward      string // Item handed over on completion
	Description string
}

// NPC represents a non-hostile character placed in an npc room
type NPC struct {
	Name      string
	Health    int
	Attack    int
	Defense   int
	Dialogues []string
	Quest     *Quest // nil when the NPC has no quest
}

// NewNPC creates a new NPC with the given stats and dialogue lines
func NewNPC(name string, health, attack, defense int, dialogues []string) *NPC {
	lines := make([]string, len(dialogues))
	copy(lines, dialogues)
	return &NPC{
		Name:      name,
		Health:    health,
		Attack:    attack,
		Defense:   defense,
		Dialogues: lines,
	}
}

// Greeting returns dialogue line i, wrapping around. Empty if the NPC has
// nothing to say.
func (n *NPC) Greeting(i int) string {
	if len(n.Dialogues) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return n.Dialogues[i%len(n.Dialogues)]
}

// HasQuest returns true if the NPC carries a quest
func (n *NPC) HasQuest() bool {
	return n.Quest != nil
}
