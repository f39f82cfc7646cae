package world

import (
	"strings"
	"testing"

	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/npc"
)

func TestRoomCenter(t *testing.T) {
	r := NewRoom(2, 3, 0, 5, 4, RoomTypeEntrance)
	if got := r.Center(); got != (Position{X: 4, Y: 5, Z: 0}) {
		t.Errorf("Center() = %v, want (4,5,0)", got)
	}
}

func TestRoomOverlapsPadding(t *testing.T) {
	a := NewRoom(0, 0, 0, 3, 3, RoomTypeEmpty)

	tests := []struct {
		name    string
		other   *Room
		padding int
		want    bool
	}{
		{"same rect", NewRoom(0, 0, 0, 3, 3, RoomTypeEmpty), 0, true},
		{"adjacent no padding", NewRoom(3, 0, 0, 3, 3, RoomTypeEmpty), 0, false},
		{"adjacent with padding", NewRoom(3, 0, 0, 3, 3, RoomTypeEmpty), 2, true},
		{"gap of two", NewRoom(5, 0, 0, 3, 3, RoomTypeEmpty), 2, false},
		{"gap of one", NewRoom(4, 0, 0, 3, 3, RoomTypeEmpty), 2, true},
		{"below with gap", NewRoom(0, 5, 0, 3, 3, RoomTypeEmpty), 2, false},
		{"other floor", NewRoom(0, 0, 1, 3, 3, RoomTypeEmpty), 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other, tt.padding); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(a, tt.padding); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoomCells(t *testing.T) {
	r := NewRoom(1, 1, 2, 2, 2, RoomTypeBunk)
	cells := r.Cells()
	want := []Position{{1, 1, 2}, {2, 1, 2}, {1, 2, 2}, {2, 2, 2}}
	if len(cells) != len(want) {
		t.Fatalf("Cells() returned %d positions, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
	if r.Area() != 4 {
		t.Errorf("Area() = %d, want 4", r.Area())
	}
}

func TestRoomLockAndUnlock(t *testing.T) {
	r := NewRoom(0, 0, 0, 3, 3, RoomTypeTreasure)
	r.LockDoor(East, "Golden Key")

	if !r.IsLocked(East) {
		t.Fatal("expected east to be locked")
	}
	if r.UnlockDoor(East, "Silver Key") {
		t.Error("wrong key unlocked the door")
	}
	if !r.UnlockDoor(East, "golden key") {
		t.Error("matching key (case-insensitive) did not unlock the door")
	}
	if r.IsLocked(East) {
		t.Error("door still locked after unlocking")
	}

	r.BlockPassage(North, "Rune")
	if !r.IsBlocked(North) || r.ClearPassage(North, "Gem") {
		t.Error("blocked passage cleared by the wrong trigger")
	}
	if !r.ClearPassage(North, "Rune") || r.IsBlocked(North) {
		t.Error("passage not cleared by the right trigger")
	}
}

func TestRoomContentsMutation(t *testing.T) {
	r := NewRoom(0, 0, 0, 3, 3, RoomTypeMonster)
	goblin := npc.NewEntity("Goblin", 10, 2, 0, 10)
	r.AddEntity(goblin)
	r.AddItem(items.NewItem("Health Potion", items.Consumable, 20, "Restores 20 HP"))
	r.AddNPC(npc.NewNPC("Old Sage", 10, 1, 1, nil))

	if !r.HasItem("health potion") {
		t.Error("HasItem should match case-insensitively")
	}
	if _, ok := r.RemoveItem("Health Potion"); !ok || len(r.Items) != 0 {
		t.Error("RemoveItem did not remove the potion")
	}

	goblin.TakeDamage(100)
	if got := len(r.LivingEntities()); got != 0 {
		t.Errorf("LivingEntities() = %d, want 0", got)
	}
	if !r.RemoveEntity(goblin) || len(r.Entities) != 0 {
		t.Error("RemoveEntity did not remove the goblin")
	}
}

func TestRoomStairsAddExits(t *testing.T) {
	r := NewRoom(0, 0, 0, 3, 3, RoomTypeHub)
	target := Position{X: 5, Y: 5, Z: 1}
	r.SetStairsDown(target)

	if !r.StairsDown || r.StairsDownTarget != target {
		t.Errorf("stairs down not recorded: %+v", r)
	}
	if r.Exits[Down] != target {
		t.Errorf("Exits[Down] = %v, want %v", r.Exits[Down], target)
	}
}

func TestRoomDescribe(t *testing.T) {
	r := NewRoom(0, 0, 0, 3, 3, RoomTypeNPC)
	r.Description = "A quiet study."
	n := npc.NewNPC("Old Sage", 10, 1, 1, nil)
	n.Quest = &npc.Quest{TargetItem: "Rune", Reward: "Steel Sword"}
	r.AddNPC(n)
	r.Connect(West, Position{X: 0, Y: 0})

	rat := npc.NewEntity("Rat", 5, 1, 0, 10)
	bat := npc.NewEntity("Bat", 5, 1, 0, 10)
	bat.TakeDamage(50)
	r.AddEntity(rat)
	r.AddEntity(bat)

	desc := r.Describe()
	for _, want := range []string{"npc room", "A quiet study.", "bring Rune", "Exits: west", "Enemies: Rat"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Describe() missing %q:\n%s", want, desc)
		}
	}
	if strings.Contains(desc, "Bat") {
		t.Errorf("Describe() listed a dead enemy:\n%s", desc)
	}
}
