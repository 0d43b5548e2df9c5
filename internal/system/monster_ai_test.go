package system

import (
	"math/rand"
	"testing"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/factory"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/geom"
	"dungeon-kernel/internal/resource"
)

// seePlayer gives e a viewshed that contains the player's tile.
func seePlayer(w *ecs.World, e ecs.Entity) {
	pp := ecs.FetchResource[geom.Point](w, resource.KeyPlayerPosition)
	w.Insert(e, component.Viewshed{Visible: []geom.Point{pp}, Range: factory.ViewRange})
}

func TestMonsterAIOnlyActsOnMonsterTurn(t *testing.T) {
	for _, state := range []resource.RunState{resource.PreRun, resource.AwaitingInput, resource.PlayerTurn} {
		w, _ := testWorld(t, 20, 10)
		addPlayer(w, 5, 5)
		g := factory.NewMonster(w, factory.Goblin, 0, 10, 5)
		seePlayer(w, g)
		MapIndexing{}.Run(w)
		w.SetResource(resource.KeyRunState, state)

		MonsterAI{}.Run(w)
		if pos := posOf(t, w, g); pos.X != 10 {
			t.Fatalf("%v: goblin moved to (%d,%d)", state, pos.X, pos.Y)
		}
	}
}

func TestMonsterChasesPlayer(t *testing.T) {
	w, m := testWorld(t, 20, 10)
	addPlayer(w, 5, 5)
	g := factory.NewMonster(w, factory.Goblin, 0, 10, 5)
	w.SetResource(resource.KeyRunState, resource.MonsterTurn)
	Visibility{}.Run(w)
	if vs, _ := ecs.Lookup[component.Viewshed](w, g); !vs.Contains(geom.Point{X: 5, Y: 5}) {
		t.Fatal("goblin should see the player across open floor")
	}
	MapIndexing{}.Run(w)

	MonsterAI{}.Run(w)

	if pos := posOf(t, w, g); pos.X != 9 || pos.Y != 5 {
		t.Fatalf("goblin at (%d,%d); want (9,5)", pos.X, pos.Y)
	}
	if vs, _ := ecs.Lookup[component.Viewshed](w, g); !vs.Dirty {
		t.Fatal("goblin viewshed should be dirty after moving")
	}
	if m.Blocked[m.Idx(10, 5)] || !m.Blocked[m.Idx(9, 5)] {
		t.Fatal("blocked bits should follow the goblin")
	}
	if w.Has(g, component.CWantsToMelee) {
		t.Fatal("non-adjacent goblin must not attack")
	}
}

func TestMonsterIgnoresUnseenPlayer(t *testing.T) {
	w, _ := testWorld(t, 20, 10)
	addPlayer(w, 5, 5)
	g := factory.NewMonster(w, factory.Goblin, 0, 10, 5)
	w.Insert(g, component.Viewshed{Range: factory.ViewRange})
	MapIndexing{}.Run(w)
	w.SetResource(resource.KeyRunState, resource.MonsterTurn)

	MonsterAI{}.Run(w)
	if pos := posOf(t, w, g); pos.X != 10 {
		t.Fatal("goblin moved without seeing the player")
	}
}

func TestMonsterStaysWhenNoPath(t *testing.T) {
	w, m := testWorld(t, 20, 10)
	addPlayer(w, 3, 5)
	for y := 0; y < 10; y++ {
		m.Set(6, y, gamemap.TileWall)
	}
	g := factory.NewMonster(w, factory.Goblin, 0, 9, 5)
	seePlayer(w, g)
	MapIndexing{}.Run(w)
	w.SetResource(resource.KeyRunState, resource.MonsterTurn)

	MonsterAI{}.Run(w)
	if pos := posOf(t, w, g); pos.X != 9 || pos.Y != 5 {
		t.Fatalf("goblin moved to (%d,%d) without a path", pos.X, pos.Y)
	}
}

// Adjacent monsters never move and file exactly one melee intent.
func TestAdjacentMonsterAttacksProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	offsets := [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for trial := 0; trial < 40; trial++ {
		w, _ := testWorld(t, 20, 20)
		px, py := 3+rng.Intn(14), 3+rng.Intn(14)
		p := addPlayer(w, px, py)
		rng.Shuffle(len(offsets), func(i, j int) { offsets[i], offsets[j] = offsets[j], offsets[i] })
		n := 1 + rng.Intn(len(offsets))
		var adj []ecs.Entity
		for i := 0; i < n; i++ {
			adj = append(adj, factory.NewMonster(w, factory.Goblin, i, px+offsets[i][0], py+offsets[i][1]))
		}
		w.SetResource(resource.KeyRunState, resource.MonsterTurn)
		Visibility{}.Run(w)
		MapIndexing{}.Run(w)

		before := map[ecs.Entity]component.Position{}
		for _, e := range adj {
			before[e] = posOf(t, w, e)
		}
		MonsterAI{}.Run(w)
		if got := w.Count(component.CWantsToMelee); got != n {
			t.Fatalf("trial %d: %d melee intents; want %d", trial, got, n)
		}
		for _, e := range adj {
			if posOf(t, w, e) != before[e] {
				t.Fatalf("trial %d: adjacent %v moved", trial, e)
			}
			wants, _ := ecs.Lookup[component.WantsToMelee](w, e)
			if wants.Target != p {
				t.Fatalf("trial %d: %v targets %v", trial, e, wants.Target)
			}
		}
	}
}

// Two goblins whose best step is the same gap tile: the first takes it, the
// second finds it blocked and stays put.
func TestMonstersNeverShareATile(t *testing.T) {
	w, m := testWorld(t, 12, 11)
	for y := 1; y < 10; y++ {
		if y != 5 {
			m.Set(5, y, gamemap.TileWall)
		}
	}
	addPlayer(w, 4, 5)
	first := factory.NewMonster(w, factory.Goblin, 0, 6, 4)
	second := factory.NewMonster(w, factory.Goblin, 1, 6, 6)
	seePlayer(w, first)
	seePlayer(w, second)
	MapIndexing{}.Run(w)
	w.SetResource(resource.KeyRunState, resource.MonsterTurn)

	MonsterAI{}.Run(w)

	if pos := posOf(t, w, first); pos.X != 5 || pos.Y != 5 {
		t.Fatalf("first goblin at (%d,%d); want the gap (5,5)", pos.X, pos.Y)
	}
	if pos := posOf(t, w, second); pos.X != 6 || pos.Y != 6 {
		t.Fatalf("second goblin at (%d,%d); want it to stay at (6,6)", pos.X, pos.Y)
	}
	occupied := map[component.Position]ecs.Entity{}
	for _, e := range w.Join(component.CTagMonster, component.CPosition) {
		pos := posOf(t, w, e)
		if other, ok := occupied[pos]; ok {
			t.Fatalf("%v and %v share %+v", e, other, pos)
		}
		occupied[pos] = e
	}
}
