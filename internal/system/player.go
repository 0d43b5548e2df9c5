package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/geom"
	"dungeon-kernel/internal/resource"
)

// MoveResult describes the outcome of a TryMovePlayer call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, blocking entity or out-of-bounds
	MoveAttack                    // bumped a combatant; melee intent filed
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	}
	return "unknown"
}

// TryMovePlayer steps the player by (dx, dy). A combatant on the destination
// tile is attacked instead; a blocked tile leaves the player in place.
func TryMovePlayer(w *ecs.World, dx, dy int) MoveResult {
	m := ecs.FetchResource[*gamemap.Map](w, resource.KeyMap)
	result := MoveBlocked
	for _, e := range w.Join(component.CTagPlayer, component.CPosition) {
		pos, _ := ecs.Lookup[component.Position](w, e)
		dest := pos.Point().Add(dx, dy)
		if !m.InBounds(dest.X, dest.Y) {
			continue
		}
		i := m.Idx(dest.X, dest.Y)

		attacked := false
		for _, target := range m.TileContent[i] {
			if target == e || !w.Has(target, component.CCombatStats) {
				continue
			}
			w.Insert(e, component.WantsToMelee{Target: target})
			attacked = true
			break
		}
		if attacked {
			result = MoveAttack
			continue
		}
		if m.Blocked[i] {
			continue
		}

		pos.X, pos.Y = m.Clamp(dest.X, dest.Y)
		w.Insert(e, pos)
		w.SetResource(resource.KeyPlayerPosition, geom.Point{X: pos.X, Y: pos.Y})
		if vs, ok := ecs.Lookup[component.Viewshed](w, e); ok {
			vs.Dirty = true
			w.Insert(e, vs)
		}
		result = MoveOK
	}
	return result
}
