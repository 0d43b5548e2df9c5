// Package system holds the per-tick simulation passes.
package system

import "dungeon-kernel/internal/ecs"

// NewPipeline returns the fixed per-tick order: visibility, monster AI,
// map indexing, melee, damage. The reaper is not part of it; callers run
// DeleteTheDead once the pipeline finishes.
func NewPipeline() *ecs.Dispatcher {
	return ecs.Sequential(
		Visibility{},
		MonsterAI{},
		MapIndexing{},
		MeleeCombat{},
		Damage{},
	)
}
