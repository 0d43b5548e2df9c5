package component

import (
	"fmt"

	"dungeon-kernel/internal/ecs"
)

// All lists every component type the simulation stores.
var All = []ecs.ComponentType{
	CPosition,
	CRenderable,
	CTagPlayer,
	CTagMonster,
	CTagBlocking,
	CName,
	CViewshed,
	CCombatStats,
	CWantsToMelee,
	CSufferDamage,
}

// Register creates storage for every component type in w.
func Register(w *ecs.World) error {
	for _, t := range All {
		if err := w.Register(t); err != nil {
			return fmt.Errorf("component: %w", err)
		}
	}
	return nil
}
