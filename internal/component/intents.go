package component

import "dungeon-kernel/internal/ecs"

const (
	CWantsToMelee ecs.ComponentType = 9
	CSufferDamage ecs.ComponentType = 10
)

// WantsToMelee is a pending attack, consumed by the melee system in the
// same tick it was filed.
type WantsToMelee struct {
	Target ecs.Entity
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

// SufferDamage accumulates every hit taken this tick.
type SufferDamage struct {
	Amount int
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }
