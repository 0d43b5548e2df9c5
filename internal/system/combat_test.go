package system

import (
	"math/rand"
	"testing"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/factory"
	"dungeon-kernel/internal/resource"
)

func TestMeleeLogsAndDamages(t *testing.T) {
	w, _ := testWorld(t, 10, 10)
	p := addPlayer(w, 5, 5)
	orc := factory.NewMonster(w, factory.Orc, 0, 6, 5)
	w.Insert(p, component.WantsToMelee{Target: orc})

	MeleeCombat{}.Run(w)
	if sd, ok := ecs.Lookup[component.SufferDamage](w, orc); !ok || sd.Amount != 4 {
		t.Fatalf("SufferDamage = %+v, %v; want 4", sd, ok)
	}
	if w.Count(component.CWantsToMelee) != 0 {
		t.Fatal("melee intents must be cleared")
	}
	if head := gameLog(w).Head(); head != "Player hits Orc #0 for 4 hp." {
		t.Fatalf("log head = %q", head)
	}

	Damage{}.Run(w)
	if hp := statsOf(t, w, orc).HP; hp != 12 {
		t.Fatalf("orc hp = %d; want 12", hp)
	}
	if w.Count(component.CSufferDamage) != 0 {
		t.Fatal("damage must be cleared")
	}
}

func TestMeleeZeroDamageVariant(t *testing.T) {
	w, _ := testWorld(t, 10, 10)
	p := addPlayer(w, 5, 5)
	orc := factory.NewMonster(w, factory.Orc, 0, 6, 5)
	setStats(w, orc, func(s *component.CombatStats) { s.Defense = 9 })
	w.Insert(p, component.WantsToMelee{Target: orc})

	MeleeCombat{}.Run(w)
	if w.Has(orc, component.CSufferDamage) {
		t.Fatal("zero damage must not file SufferDamage")
	}
	if head := gameLog(w).Head(); head != "Player is unable to hurt Orc #0." {
		t.Fatalf("log head = %q", head)
	}
}

func TestMeleeSkipsDeadAttackerAndTarget(t *testing.T) {
	w, _ := testWorld(t, 10, 10)
	p := addPlayer(w, 5, 5)
	orc := factory.NewMonster(w, factory.Orc, 0, 6, 5)
	gob := factory.NewMonster(w, factory.Goblin, 1, 4, 5)

	setStats(w, orc, func(s *component.CombatStats) { s.HP = 0 })
	w.Insert(p, component.WantsToMelee{Target: orc})
	w.Insert(orc, component.WantsToMelee{Target: p})
	w.Insert(gob, component.WantsToMelee{Target: p})

	MeleeCombat{}.Run(w)
	if w.Has(orc, component.CSufferDamage) {
		t.Error("dead target must not take damage")
	}
	if sd, _ := ecs.Lookup[component.SufferDamage](w, p); sd.Amount != 2 {
		t.Errorf("player damage = %d; want 2 from the goblin only", sd.Amount)
	}
	if gameLog(w).Len() != 1 {
		t.Errorf("log = %v; want one entry", gameLog(w).Entries())
	}
}

func TestDamageAccumulatesAcrossHits(t *testing.T) {
	w, _ := testWorld(t, 10, 10)
	p := addPlayer(w, 5, 5)
	for i, x := range []int{4, 6, 5} {
		m := factory.NewMonster(w, factory.Goblin, i, x, 4)
		w.Insert(m, component.WantsToMelee{Target: p})
	}
	MeleeCombat{}.Run(w)
	Damage{}.Run(w)
	// Three goblins at power 4 against defense 2.
	if hp := statsOf(t, w, p).HP; hp != 30-3*2 {
		t.Fatalf("player hp = %d; want 24", hp)
	}
}

func TestDeleteTheDead(t *testing.T) {
	w, _ := testWorld(t, 10, 10)
	p := addPlayer(w, 5, 5)
	orc := factory.NewMonster(w, factory.Orc, 0, 6, 5)
	gob := factory.NewMonster(w, factory.Goblin, 1, 2, 2)
	setStats(w, orc, func(s *component.CombatStats) { s.HP = -1 })
	setStats(w, p, func(s *component.CombatStats) { s.HP = 0 })

	names := DeleteTheDead(w)
	if len(names) != 1 || names[0] != "Orc #0" {
		t.Fatalf("reaped = %v", names)
	}
	if w.Alive(orc) {
		t.Fatal("dead orc should be destroyed")
	}
	if !w.Alive(p) || !w.Alive(gob) {
		t.Fatal("player and live goblin must survive the reaper")
	}
	entries := gameLog(w).Entries()
	if len(entries) != 2 || entries[0] != "Orc #0 is dead" || entries[1] != PlayerDeathMessage {
		t.Fatalf("log = %v", entries)
	}

	// A second pass must not repeat the player's death message on top.
	DeleteTheDead(w)
	DeleteTheDead(w)
	if gameLog(w).Len() != 3 {
		t.Fatalf("log = %v", gameLog(w).Entries())
	}
}

func TestKillAndReapFreesTile(t *testing.T) {
	w, m := testWorld(t, 10, 10)
	p := addPlayer(w, 5, 5)
	orc := factory.NewMonster(w, factory.Orc, 0, 6, 5)
	setStats(w, orc, func(s *component.CombatStats) { s.HP = 3 })
	runTick(w, resource.AwaitingInput)
	if !m.Blocked[m.Idx(6, 5)] {
		t.Fatal("orc should block its tile")
	}

	TryMovePlayer(w, 1, 0)
	w.SetResource(resource.KeyRunState, resource.PlayerTurn)
	NewPipeline().Run(w)
	if hp := statsOf(t, w, orc).HP; hp != -1 {
		t.Fatalf("orc hp = %d; want -1", hp)
	}
	DeleteTheDead(w)
	if w.Alive(orc) {
		t.Fatal("orc should be reaped")
	}
	found := false
	for _, e := range gameLog(w).Entries() {
		if e == "Orc #0 is dead" {
			found = true
		}
	}
	if !found {
		t.Fatalf("log = %v", gameLog(w).Entries())
	}
	MapIndexing{}.Run(w)
	if m.Blocked[m.Idx(6, 5)] {
		t.Fatal("tile should be free after the next indexing pass")
	}
	if !w.Alive(p) {
		t.Fatal("player died")
	}
}

// Damage on each victim equals the sum of max(0, power-defense) over the
// intents aimed at it.
func TestDamageMatchesFormulaProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		w, _ := testWorld(t, 20, 20)
		addPlayer(w, 1, 1)
		var ents []ecs.Entity
		for i := 0; i < 6; i++ {
			e := factory.NewMonster(w, factory.Goblin, i, 2+i, 2)
			setStats(w, e, func(s *component.CombatStats) {
				s.HP, s.MaxHP = 50, 50
				s.Power = rng.Intn(8)
				s.Defense = rng.Intn(5)
			})
			ents = append(ents, e)
		}
		want := map[ecs.Entity]int{}
		for _, a := range ents {
			target := ents[rng.Intn(len(ents))]
			if target == a {
				continue
			}
			w.Insert(a, component.WantsToMelee{Target: target})
			want[target] += max(0, statsOf(t, w, a).Power-statsOf(t, w, target).Defense)
		}
		MeleeCombat{}.Run(w)
		Damage{}.Run(w)
		for _, e := range ents {
			if got := 50 - statsOf(t, w, e).HP; got != want[e] {
				t.Fatalf("trial %d: %v took %d; want %d", trial, e, got, want[e])
			}
		}
	}
}
