package npc

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestCreateEntityDefaultScaling(t *testing.T) {
	def := EnemyDefinition{Name: "Goblin", Health: 20, Attack: 5, Defense: 2}

	tests := []struct {
		floor                   int
		health, attack, defense int
	}{
		{0, 20, 5, 2},
		{1, 30, 7, 3},
		{3, 50, 11, 5},
	}

	for _, tt := range tests {
		e := CreateEntityFromDefinition(def, tt.floor)
		if e.Health != tt.health || e.Attack != tt.attack || e.Defense != tt.defense {
			t.Errorf("floor %d: got hp=%d atk=%d def=%d, want hp=%d atk=%d def=%d",
				tt.floor, e.Health, e.Attack, e.Defense, tt.health, tt.attack, tt.defense)
		}
		if e.MaxHealth != e.Health {
			t.Errorf("floor %d: MaxHealth = %d, want %d", tt.floor, e.MaxHealth, e.Health)
		}
		if e.Speed != defaultSpeed {
			t.Errorf("floor %d: Speed = %d, want %d", tt.floor, e.Speed, defaultSpeed)
		}
	}
}

func TestCreateEntityExplicitScaling(t *testing.T) {
	def := EnemyDefinition{
		Name:           "Stone Golem",
		Health:         60,
		Attack:         8,
		Defense:        10,
		Speed:          4,
		HealthScaling:  intPtr(20),
		AttackScaling:  intPtr(0),
		DefenseScaling: intPtr(3),
	}

	e := CreateEntityFromDefinition(def, 2)
	if e.Health != 100 {
		t.Errorf("Health = %d, want 100", e.Health)
	}
	if e.Attack != 8 {
		t.Errorf("Attack = %d, want 8 (explicit zero scaling)", e.Attack)
	}
	if e.Defense != 16 {
		t.Errorf("Defense = %d, want 16", e.Defense)
	}
	if e.Speed != 4 {
		t.Errorf("Speed = %d, want 4", e.Speed)
	}
	if e.Level != 2 {
		t.Errorf("Level = %d, want 2", e.Level)
	}
}

func TestSuitableForFloor(t *testing.T) {
	defs := []EnemyDefinition{
		{Name: "Rat", MinFloor: 0},
		{Name: "Orc", MinFloor: 2},
		{Name: "Dragon", MinFloor: 5},
	}

	got := SuitableForFloor(defs, 2)
	if len(got) != 2 || got[0].Name != "Rat" || got[1].Name != "Orc" {
		t.Errorf("SuitableForFloor(2) = %v", got)
	}

	deep := []EnemyDefinition{{Name: "Dragon", MinFloor: 5}}
	if got := SuitableForFloor(deep, 0); len(got) != 1 {
		t.Errorf("SuitableForFloor should fall back to all definitions, got %v", got)
	}
}

func TestTakeDamage(t *testing.T) {
	e := NewEntity("Skeleton", 10, 3, 2, 10)

	if dealt := e.TakeDamage(5); dealt != 3 {
		t.Errorf("TakeDamage(5) dealt %d, want 3", dealt)
	}
	if dealt := e.TakeDamage(1); dealt != 1 {
		t.Errorf("TakeDamage(1) dealt %d, want minimum 1", dealt)
	}
	if dealt := e.TakeDamage(100); dealt != 6 {
		t.Errorf("TakeDamage(100) dealt %d, want remaining 6", dealt)
	}
	if e.IsAlive() {
		t.Error("entity should be dead")
	}
}

func TestCreateNPCWithQuest(t *testing.T) {
	def := NPCDefinition{
		Name:      "Old Sage",
		Health:    15,
		Dialogues: []string{"Greetings.", "Seek the relic."},
		Quests: []QuestDefinition{
			{TargetItem: "Rune", Reward: "Steel Sword", Description: "Bring me a rune."},
		},
	}

	n := CreateNPCFromDefinition(def, &def.Quests[0])
	if !n.HasQuest() {
		t.Fatal("expected NPC to carry a quest")
	}
	if n.Quest.TargetItem != "Rune" || n.Quest.Reward != "Steel Sword" {
		t.Errorf("Quest = %+v", n.Quest)
	}

	def.Dialogues[0] = "changed"
	if n.Dialogues[0] != "Greetings." {
		t.Error("NPC shares dialogue slice with its definition")
	}
}

func TestGreetingWraps(t *testing.T) {
	n := NewNPC("Merchant", 10, 3, 1, []string{"a", "b"})
	if got := n.Greeting(3); got != "b" {
		t.Errorf("Greeting(3) = %q, want %q", got, "b")
	}

	silent := NewNPC("Mute", 10, 0, 0, nil)
	if got := silent.Greeting(0); got != "" {
		t.Errorf("Greeting on silent NPC = %q, want empty", got)
	}
	if silent.HasQuest() {
		t.Error("NPC without quest reports HasQuest")
	}
}

func TestScaleGoldAndXP(t *testing.T) {
	if got := ScaleXP(100, 0); got != 100 {
		t.Errorf("ScaleXP(100, 0) = %d, want 100", got)
	}
	if got := ScaleXP(100, 2); got != 130 {
		t.Errorf("ScaleXP(100, 2) = %d, want 130", got)
	}
	if got := ScaleGold(50, 5); got != 80 {
		t.Errorf("ScaleGold(50, 5) = %d, want 80", got)
	}
}
