package component

import "dungeon-kernel/internal/ecs"

const CCombatStats ecs.ComponentType = 8

// CombatStats holds a fighter's numbers. HP may sit below 1 until the
// damage system reaps the entity.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }
