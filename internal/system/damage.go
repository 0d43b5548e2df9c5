package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/resource"
)

// PlayerDeathMessage is logged while the player is at or below zero hp.
const PlayerDeathMessage = "You are dead"

// Damage applies accumulated SufferDamage to CombatStats and drops it.
type Damage struct{}

func (Damage) Name() string { return "damage" }

func (Damage) Access() ecs.Access {
	return ecs.Access{
		Writes: []ecs.ComponentType{component.CCombatStats, component.CSufferDamage},
	}
}

func (Damage) Run(w *ecs.World) {
	for _, e := range w.Join(component.CCombatStats, component.CSufferDamage) {
		stats, _ := ecs.Lookup[component.CombatStats](w, e)
		suffer, _ := ecs.Lookup[component.SufferDamage](w, e)
		stats.HP -= suffer.Amount
		w.Insert(e, stats)
	}
	w.Clear(component.CSufferDamage)
}

// InflictDamage adds amount to the target's pending damage for this tick.
// Several hits in one tick sum.
func InflictDamage(w *ecs.World, target ecs.Entity, amount int) {
	suffer, _ := ecs.Lookup[component.SufferDamage](w, target)
	suffer.Amount += amount
	w.Insert(target, suffer)
}

// DeleteTheDead destroys every non-player entity whose hp fell below 1 and
// returns their names. A dead player is logged but kept. It runs after the
// pipeline so no system is mid-iteration.
func DeleteTheDead(w *ecs.World) []string {
	gameLog := ecs.FetchResource[*resource.GameLog](w, resource.KeyGameLog)

	var dead []ecs.Entity
	var names []string
	for _, e := range w.Join(component.CCombatStats) {
		stats, _ := ecs.Lookup[component.CombatStats](w, e)
		if stats.HP >= 1 {
			continue
		}
		if w.Has(e, component.CTagPlayer) {
			if gameLog.Head() != PlayerDeathMessage {
				gameLog.Add(PlayerDeathMessage)
			}
			continue
		}
		name := nameOf(w, e)
		gameLog.Add(name + " is dead")
		dead = append(dead, e)
		names = append(names, name)
	}
	for _, e := range dead {
		w.Destroy(e)
		logger.ForSystem("reaper").WithField("entity", e).Debug("destroyed")
	}
	return names
}
