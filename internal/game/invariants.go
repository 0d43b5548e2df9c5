package game

import (
	"errors"
	"fmt"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/geom"
	"dungeon-kernel/internal/resource"
)

// ErrInvariant wraps every world consistency failure found by CheckInvariants.
var ErrInvariant = errors.New("world invariant violated")

// CheckInvariants verifies the world at a tick boundary. state is the state
// just entered: on entering PlayerTurn the player's melee intent is still
// pending, since the pipeline that consumes it has not run yet.
func CheckInvariants(w *ecs.World, state resource.RunState) error {
	players := w.Join(component.CTagPlayer)
	if len(players) != 1 {
		return fmt.Errorf("%w: %d player entities", ErrInvariant, len(players))
	}
	player := players[0]
	if got := ecs.FetchResource[ecs.Entity](w, resource.KeyPlayerEntity); got != player {
		return fmt.Errorf("%w: player resource %v, tagged player %v", ErrInvariant, got, player)
	}

	m := ecs.FetchResource[*gamemap.Map](w, resource.KeyMap)
	for _, e := range w.Join(component.CPosition) {
		pos, _ := ecs.Lookup[component.Position](w, e)
		if !m.InBounds(pos.X, pos.Y) {
			return fmt.Errorf("%w: %v at (%d,%d) outside %dx%d", ErrInvariant, e, pos.X, pos.Y, m.Width, m.Height)
		}
	}

	pos, _ := ecs.Lookup[component.Position](w, player)
	if pp := ecs.FetchResource[geom.Point](w, resource.KeyPlayerPosition); pp != pos.Point() {
		return fmt.Errorf("%w: player position resource %v, component %v", ErrInvariant, pp, pos.Point())
	}

	if n := w.Count(component.CSufferDamage); n != 0 {
		return fmt.Errorf("%w: %d pending damage components", ErrInvariant, n)
	}
	for _, e := range w.Join(component.CWantsToMelee) {
		if state == resource.PlayerTurn && e == player {
			continue
		}
		return fmt.Errorf("%w: %v still wants to melee", ErrInvariant, e)
	}

	for _, e := range w.Join(component.CCombatStats) {
		if e == player {
			continue
		}
		stats, _ := ecs.Lookup[component.CombatStats](w, e)
		if stats.HP < 1 {
			return fmt.Errorf("%w: %v survived with %d hp", ErrInvariant, e, stats.HP)
		}
	}
	return nil
}
