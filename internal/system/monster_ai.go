package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/geom"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/pathfind"
	"dungeon-kernel/internal/resource"

	"github.com/sirupsen/logrus"
)

// adjacentRange covers the eight neighbors (diagonals are ~1.41 away).
const adjacentRange = 1.5

// MonsterAI attacks the player when adjacent and otherwise steps one tile
// along an A* path toward the player if it can see them. It only acts
// during MonsterTurn.
//
// Monsters move one after another without re-indexing, so each step
// updates map.Blocked in place and a step onto an already blocked tile is
// skipped.
type MonsterAI struct{}

func (MonsterAI) Name() string { return "monster_ai" }

func (MonsterAI) Access() ecs.Access {
	return ecs.Access{
		Reads:          []ecs.ComponentType{component.CTagMonster, component.CName},
		Writes:         []ecs.ComponentType{component.CViewshed, component.CPosition, component.CWantsToMelee},
		ResourceReads:  []ecs.ResourceKey{resource.KeyRunState, resource.KeyPlayerPosition, resource.KeyPlayerEntity},
		ResourceWrites: []ecs.ResourceKey{resource.KeyMap},
	}
}

func (a MonsterAI) Run(w *ecs.World) {
	if ecs.FetchResource[resource.RunState](w, resource.KeyRunState) != resource.MonsterTurn {
		return
	}
	m := ecs.FetchResource[*gamemap.Map](w, resource.KeyMap)
	playerPos := ecs.FetchResource[geom.Point](w, resource.KeyPlayerPosition)
	player := ecs.FetchResource[ecs.Entity](w, resource.KeyPlayerEntity)
	log := logger.ForSystem(a.Name())

	for _, e := range w.Join(component.CTagMonster, component.CViewshed, component.CPosition, component.CName) {
		pos, _ := ecs.Lookup[component.Position](w, e)
		vs, _ := ecs.Lookup[component.Viewshed](w, e)
		name, _ := ecs.Lookup[component.Name](w, e)

		if geom.Distance2D(pos.Point(), playerPos) < adjacentRange {
			w.Insert(e, component.WantsToMelee{Target: player})
			log.WithField("monster", name.Name).Debug("attacks player")
			continue
		}
		if !vs.Contains(playerPos) {
			continue
		}

		from := m.Idx(pos.X, pos.Y)
		path := pathfind.AStar(from, m.Idx(playerPos.X, playerPos.Y), m)
		if !path.Success || len(path.Steps) < 2 {
			continue
		}
		next := path.Steps[1]
		if m.Blocked[next] {
			continue
		}
		m.Blocked[from] = false
		pos.X, pos.Y = m.XY(next)
		m.Blocked[next] = true
		vs.Dirty = true
		w.Insert(e, pos)
		w.Insert(e, vs)
		log.WithFields(logrus.Fields{"monster": name.Name, "x": pos.X, "y": pos.Y}).Debug("moves")
	}
}
