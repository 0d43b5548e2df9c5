package system

import (
	"testing"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/factory"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/geom"
	"dungeon-kernel/internal/resource"
)

// testWorld is a walled w x h room with every resource installed.
func testWorld(t *testing.T, width, height int) (*ecs.World, *gamemap.Map) {
	t.Helper()
	w := ecs.NewWorld()
	if err := component.Register(w); err != nil {
		t.Fatal(err)
	}
	m := gamemap.New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	w.SetResource(resource.KeyMap, m)
	w.SetResource(resource.KeyGameLog, resource.NewGameLog(0))
	w.SetResource(resource.KeyRunState, resource.PreRun)
	w.SetResource(resource.KeyPlayerEntity, ecs.NilEntity)
	w.SetResource(resource.KeyPlayerPosition, geom.Point{})
	return w, m
}

func addPlayer(w *ecs.World, x, y int) ecs.Entity {
	p := factory.NewPlayer(w, x, y)
	w.SetResource(resource.KeyPlayerEntity, p)
	w.SetResource(resource.KeyPlayerPosition, geom.Point{X: x, Y: y})
	return p
}

func setStats(w *ecs.World, e ecs.Entity, mutate func(*component.CombatStats)) {
	s, _ := ecs.Lookup[component.CombatStats](w, e)
	mutate(&s)
	w.Insert(e, s)
}

func statsOf(t *testing.T, w *ecs.World, e ecs.Entity) component.CombatStats {
	t.Helper()
	s, ok := ecs.Lookup[component.CombatStats](w, e)
	if !ok {
		t.Fatalf("%v has no CombatStats", e)
	}
	return s
}

func posOf(t *testing.T, w *ecs.World, e ecs.Entity) component.Position {
	t.Helper()
	p, ok := ecs.Lookup[component.Position](w, e)
	if !ok {
		t.Fatalf("%v has no Position", e)
	}
	return p
}

func gameLog(w *ecs.World) *resource.GameLog {
	return ecs.FetchResource[*resource.GameLog](w, resource.KeyGameLog)
}

// runTick runs the pipeline then the reaper, as the engine does.
func runTick(w *ecs.World, state resource.RunState) {
	w.SetResource(resource.KeyRunState, state)
	NewPipeline().Run(w)
	DeleteTheDead(w)
}
