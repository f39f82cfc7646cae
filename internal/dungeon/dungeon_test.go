package dungeon

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/lawnchairsociety/dungeongen/internal/catalog"
	"github.com/lawnchairsociety/dungeongen/internal/graph"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/world"
)

var testSeeds = []int64{1, 7, 42, 999, 12345, 2024}

func generate(t *testing.T, seed int64, c *catalog.Catalog) *Dungeon {
	t.Helper()
	d, err := Generate(context.Background(), DefaultConfig(seed), c)
	require.NoError(t, err)
	require.NotNil(t, d)
	return d
}

// diverseCatalog has enough template types to produce seven floors
func diverseCatalog() *catalog.Catalog {
	c := catalog.Default()
	for i := 0; i < 12; i++ {
		c.RoomTemplates = append(c.RoomTemplates, catalog.RoomTemplate{Type: fmt.Sprintf("type-%d", i)})
	}
	c.Enemies = c.Enemies[:2]
	return c
}

type roomTuple struct {
	z, x, y, w, h int
	kind          world.RoomType
}

func roomTuples(d *Dungeon) []roomTuple {
	var out []roomTuple
	for z := 0; z < d.FloorCount(); z++ {
		for _, r := range d.RoomsOnFloor(z) {
			out = append(out, roomTuple{r.Z, r.X, r.Y, r.Width, r.Height, r.Type})
		}
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range testSeeds {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			a := generate(t, seed, catalog.Default())
			b := generate(t, seed, catalog.Default())

			assert.Equal(t, a.FloorCount(), b.FloorCount())
			assert.Equal(t, roomTuples(a), roomTuples(b))
			assert.Equal(t, a.Obstacles(), b.Obstacles())
			assert.Equal(t, a.Fingerprint(), b.Fingerprint())
		})
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := generate(t, 1, catalog.Default())
	b := generate(t, 2, catalog.Default())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintTracksMutation(t *testing.T) {
	d := generate(t, 42, catalog.Default())
	before := d.Fingerprint()

	d.ArtifactRoom().ClearItems()
	assert.NotEqual(t, before, d.Fingerprint())
	assert.Len(t, d.Fingerprint(), 64)
}

func TestRoomsDoNotOverlap(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, diverseCatalog())
		for _, f := range d.Floors() {
			for i, a := range f.Rooms {
				assert.True(t, f.Grid.Fits(a), "seed %d: room %s off grid", seed, a.Position())
				for _, b := range f.Rooms[i+1:] {
					assert.False(t, a.Overlaps(b, roomPadding), "seed %d floor %d: %s within %d cells of %s",
						seed, f.Z, a.Position(), roomPadding, b.Position())
				}
			}
		}
	}
}

func TestRoomCellsMatchGrid(t *testing.T) {
	d := generate(t, 7, catalog.Default())
	for _, f := range d.Floors() {
		for _, r := range f.Rooms {
			for _, p := range r.Cells() {
				assert.Equal(t, world.CellRoom, d.CellTypeAt(p.X, p.Y, p.Z))
				assert.Same(t, r, d.RoomAt(p.X, p.Y, p.Z))
			}
		}
	}
}

func TestEveryRoomConnected(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, diverseCatalog())
		for _, f := range d.Floors() {
			require.NotNil(t, f.Start)
			reached := graph.Reachable(f.Start.Cells(), f.Grid.Neighbors)
			for _, r := range f.Rooms {
				assert.True(t, reached.Has(r.Center()), "seed %d floor %d: room %s unreachable",
					seed, f.Z, r.Position())
			}
			for _, p := range f.Grid.HallwayCells() {
				assert.True(t, reached.Has(p), "seed %d floor %d: hallway %s unreachable", seed, f.Z, p)
			}
		}
	}
}

func TestMainPathShape(t *testing.T) {
	d := generate(t, 12345, catalog.Default())
	for _, f := range d.Floors() {
		require.NotEmpty(t, f.MainPath)
		assert.Same(t, f.Start, f.MainPath[0])
		if f.Z == 0 {
			assert.Equal(t, world.RoomTypeEntrance, f.Start.Type)
		} else if f.Start.Type != world.RoomTypeArtifact {
			assert.Equal(t, world.RoomTypeHub, f.Start.Type)
		}
		if f.Exit != nil {
			assert.Same(t, f.Exit, f.MainPath[len(f.MainPath)-1])
		}
		for _, b := range f.Branches() {
			assert.Contains(t, f.Rooms, b)
		}
	}
}

func TestSingleArtifactOnDeepestFloor(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, catalog.Default())

		artifact := d.ArtifactRoom()
		require.NotNil(t, artifact)
		assert.Equal(t, d.FloorCount()-1, artifact.Z)
		assert.Equal(t, world.RoomTypeArtifact, artifact.Type)
		assert.Equal(t, 1, items.CountType(artifact.Items, items.Artifact))

		count := 0
		for _, f := range d.Floors() {
			for _, r := range f.Rooms {
				if r.Type == world.RoomTypeArtifact {
					count++
				}
			}
		}
		assert.Equal(t, 1, count, "seed %d", seed)
	}
}

func TestArtifactUsesFallbackRelic(t *testing.T) {
	d := generate(t, 5, &catalog.Catalog{})
	require.NotNil(t, d.ArtifactRoom())
	assert.True(t, d.ArtifactRoom().HasItem(catalog.FallbackArtifactName))
}

func TestObstaclesAreSolvable(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, catalog.Default())
		for _, f := range d.Floors() {
			require.NotEmpty(t, f.Obstacles, "seed %d floor %d: no obstacles placed", seed, f.Z)
			dist := hopDistances(f)
			for _, o := range f.Obstacles {
				cell := f.Grid.CellAt(o.Position)
				require.NotNil(t, cell)
				assert.Equal(t, world.CellHallway, cell.Type)
				assert.False(t, cell.HasStairs())

				switch o.Kind {
				case LockedDoor:
					assert.Equal(t, o.Requires, cell.LockedDoors[o.Direction])
				case BlockedPassage:
					assert.Equal(t, o.Requires, cell.BlockedPassages[o.Direction])
				}

				assert.Equal(t, dist[o.Position], o.Distance)
				solDist, ok := dist[o.Solution]
				require.True(t, ok, "seed %d: solution %s unreachable", seed, o.Solution)
				assert.Less(t, solDist, o.Distance, "seed %d: item for %s not earlier", seed, o.Position)

				host := f.Grid.CellAt(o.Solution)
				held := host.HasItem(o.Requires) || (host.Room != nil && host.Room.HasItem(o.Requires))
				assert.True(t, held, "seed %d: %q missing at %s", seed, o.Requires, o.Solution)
			}
		}
	}
}

func TestObstacleLimits(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, catalog.Default())
		for _, f := range d.Floors() {
			doors, passages := 0, 0
			seen := mapset.New[world.Position]()
			for _, o := range f.Obstacles {
				assert.False(t, seen.Has(o.Position), "two obstacles on %s", o.Position)
				seen.Put(o.Position)
				if o.Kind == LockedDoor {
					doors++
				} else {
					passages++
				}
			}
			assert.Positive(t, doors+passages, "seed %d floor %d: no obstacles placed", seed, f.Z)
			assert.Positive(t, doors, "seed %d floor %d: no locked doors", seed, f.Z)
			assert.LessOrEqual(t, doors, maxLockedDoors)
			assert.LessOrEqual(t, passages, maxBlockedPassages)
		}
	}
}

func TestObstacleKindString(t *testing.T) {
	assert.Equal(t, "locked_door", LockedDoor.String())
	assert.Equal(t, "blocked_passage", BlockedPassage.String())
	assert.Equal(t, "unknown", ObstacleKind(9).String())
}

func TestReachableRespectsObstacles(t *testing.T) {
	d := generate(t, 42, catalog.Default())
	for _, f := range d.Floors() {
		open := f.Reachable(false)
		sealed := f.Reachable(true)
		assert.LessOrEqual(t, sealed.Size(), open.Size())
		sealed.Each(func(p world.Position) {
			assert.True(t, open.Has(p))
		})
		for _, p := range f.Start.Cells() {
			assert.True(t, sealed.Has(p))
		}
	}
}

func TestShortestPath(t *testing.T) {
	d := generate(t, 42, catalog.Default())
	f := d.Floor(0)
	require.NotNil(t, f)

	last := f.MainPath[len(f.MainPath)-1]
	path := d.ShortestPath(f.Start.Center(), last.Center())
	require.NotEmpty(t, path)
	assert.Equal(t, f.Start.Center(), path[0])
	assert.Equal(t, last.Center(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]))
	}

	assert.Nil(t, d.ShortestPath(f.Start.Center(), world.Position{X: 0, Y: 0, Z: 1}))
}

func TestStairsLinkAdjacentFloors(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, catalog.Default())
		n := d.FloorCount()
		for z := 0; z < n; z++ {
			f := d.Floor(z)
			var downs, ups []world.Position
			for y := 0; y < f.Grid.Height; y++ {
				for x := 0; x < f.Grid.Width; x++ {
					c := f.Grid.Cell(x, y)
					if c.StairsDown {
						downs = append(downs, world.Position{X: x, Y: y, Z: z})
					}
					if c.StairsUp {
						ups = append(ups, world.Position{X: x, Y: y, Z: z})
					}
				}
			}

			if z < n-1 {
				require.Len(t, downs, 1, "seed %d floor %d", seed, z)
				target := f.Grid.CellAt(downs[0]).StairsDownTarget
				assert.Equal(t, z+1, target.Z)
				below := d.CellAt(target.X, target.Y, target.Z)
				require.NotNil(t, below)
				assert.True(t, below.StairsUp)
				assert.Equal(t, downs[0], below.StairsUpTarget)
			} else {
				assert.Empty(t, downs)
			}
			if z > 0 {
				assert.Len(t, ups, 1, "seed %d floor %d", seed, z)
			} else {
				assert.Empty(t, ups)
			}
		}
	}
}

func TestEffectsOnRoomCells(t *testing.T) {
	d := generate(t, 99, catalog.Default())
	total := 0
	for _, f := range d.Floors() {
		for y := 0; y < f.Grid.Height; y++ {
			for x := 0; x < f.Grid.Width; x++ {
				c := f.Grid.Cell(x, y)
				if c.Effect == nil {
					continue
				}
				total++
				assert.Equal(t, world.CellRoom, c.Type)
				assert.Equal(t, world.Position{X: x, Y: y, Z: f.Z}, c.Effect.Position)
				def := effectTable[c.Effect.Type]
				assert.Equal(t, def.triggerChance, c.Effect.TriggerChance)
				assert.GreaterOrEqual(t, c.Effect.Strength, def.minStrength)
				assert.LessOrEqual(t, c.Effect.Strength, def.maxStrength)
				assert.NotEmpty(t, c.Effect.Description)
			}
		}
	}
	assert.Positive(t, total)
}

func TestRoomContentsFollowType(t *testing.T) {
	for _, seed := range testSeeds {
		d := generate(t, seed, catalog.Default())
		for _, f := range d.Floors() {
			for _, r := range f.Rooms {
				switch r.Type {
				case world.RoomTypeEntrance, world.RoomTypeHub, world.RoomTypeExit:
					assert.Empty(t, r.Items)
					assert.Empty(t, r.Entities)
					assert.Empty(t, r.NPCs)
				case world.RoomTypeMonster:
					assert.GreaterOrEqual(t, len(r.Entities), 1)
					assert.LessOrEqual(t, len(r.Entities), 3)
					for _, e := range r.Entities {
						assert.Equal(t, r.Z, e.Level)
					}
				case world.RoomTypeNPC:
					assert.Len(t, r.NPCs, 1)
				case world.RoomTypeTreasure, world.RoomTypeStorage, world.RoomTypeWorkshop:
					assert.GreaterOrEqual(t, len(r.Items), 1)
					assert.LessOrEqual(t, len(r.Items), 3)
				}
				if r.Type != world.RoomTypeArtifact {
					assert.Zero(t, items.CountType(r.Items, items.Artifact))
				}
				assert.NotEmpty(t, r.Description)
			}
		}
	}
}

func TestGenerateDoesNotModifyCatalog(t *testing.T) {
	c := &catalog.Catalog{}
	generate(t, 3, c)
	assert.Empty(t, c.Items)
	assert.Empty(t, c.Enemies)
	assert.Empty(t, c.NPCs)
}

func TestEntranceStableForSeed(t *testing.T) {
	a := generate(t, 12345, catalog.Default())
	b := generate(t, 12345, catalog.Default())

	start := a.Floor(0).Start
	require.NotNil(t, start)
	assert.Equal(t, world.RoomTypeEntrance, start.Type)
	assert.Equal(t, start.Position(), b.Floor(0).Start.Position())
	assert.Equal(t, a.StartPosition(), b.StartPosition())
	assert.Equal(t, start.Center(), a.StartPosition())

	assert.GreaterOrEqual(t, start.X, 2)
	assert.LessOrEqual(t, start.X, 8)
	assert.GreaterOrEqual(t, start.Y, 2)
	assert.LessOrEqual(t, start.Y, 8)
}

func TestDiverseCatalogGivesSevenFloors(t *testing.T) {
	c := diverseCatalog()
	assert.Equal(t, 7, FloorCount(c))

	d := generate(t, 1, c)
	assert.Equal(t, 7, d.FloorCount())
	assert.Equal(t, 6, d.ArtifactRoom().Z)
}

func TestGenerateLargerGrid(t *testing.T) {
	d, err := Generate(context.Background(), Config{Seed: 8, Width: 40, Height: 30}, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, 40, d.Floor(0).Grid.Width)
	assert.Equal(t, 30, d.Floor(0).Grid.Height)
}

func TestGenerateErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Generate(ctx, Config{Seed: 1, Width: 19, Height: 25}, catalog.Default())
	assert.ErrorIs(t, err, ErrGridTooSmall)

	_, err = Generate(ctx, Config{Seed: 1, Width: 25, Height: 10}, catalog.Default())
	assert.ErrorIs(t, err, ErrGridTooSmall)

	_, err = Generate(ctx, DefaultConfig(1), nil)
	assert.ErrorIs(t, err, ErrNilCatalog)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Generate(canceled, DefaultConfig(1), catalog.Default())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueriesOutsideDungeon(t *testing.T) {
	d := generate(t, 1, catalog.Default())

	assert.Nil(t, d.Floor(-1))
	assert.Nil(t, d.Floor(d.FloorCount()))
	assert.Nil(t, d.CellAt(0, 0, 99))
	assert.Nil(t, d.CellAt(-1, 0, 0))
	assert.Nil(t, d.RoomAt(100, 100, 0))
	assert.Equal(t, world.CellEmpty, d.CellTypeAt(-5, 3, 0))
	assert.Nil(t, d.RoomsOnFloor(42))
}

func TestCellAtIsMutable(t *testing.T) {
	d := generate(t, 1, catalog.Default())
	p := d.StartPosition()

	d.CellAt(p.X, p.Y, p.Z).AddItem(items.NewKey("Bone Key"))
	assert.True(t, d.CellAt(p.X, p.Y, p.Z).HasItem("Bone Key"))
}

func TestUppercaseArtifactStaysInArtifactRoom(t *testing.T) {
	c := catalog.Default()
	c.Items = append(c.Items, items.ItemDefinition{Name: "Crown of Ages", Type: "ARTIFACT"})

	for seed := int64(0); seed < 20; seed++ {
		d := generate(t, seed, c)
		for _, f := range d.Floors() {
			for _, r := range f.Rooms {
				if r.Type != world.RoomTypeArtifact {
					assert.False(t, r.HasItem("Crown of Ages"), "seed %d: artifact in %s room", seed, r.Type)
				}
			}
			for _, p := range f.Grid.HallwayCells() {
				assert.False(t, f.Grid.CellAt(p).HasItem("Crown of Ages"), "seed %d: artifact on hallway", seed)
			}
		}
	}
}
