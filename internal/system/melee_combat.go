package system

import (
	"fmt"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/resource"

	"github.com/sirupsen/logrus"
)

// MeleeCombat turns every WantsToMelee into SufferDamage on the target and
// then drops all melee intents.
type MeleeCombat struct{}

func (MeleeCombat) Name() string { return "melee_combat" }

func (MeleeCombat) Access() ecs.Access {
	return ecs.Access{
		Reads:          []ecs.ComponentType{component.CName, component.CCombatStats},
		Writes:         []ecs.ComponentType{component.CWantsToMelee, component.CSufferDamage},
		ResourceWrites: []ecs.ResourceKey{resource.KeyGameLog},
	}
}

func (s MeleeCombat) Run(w *ecs.World) {
	gameLog := ecs.FetchResource[*resource.GameLog](w, resource.KeyGameLog)
	log := logger.ForSystem(s.Name())

	for _, e := range w.Join(component.CWantsToMelee, component.CCombatStats) {
		stats, _ := ecs.Lookup[component.CombatStats](w, e)
		if stats.HP <= 0 {
			continue
		}
		wants, _ := ecs.Lookup[component.WantsToMelee](w, e)
		target, ok := ecs.Lookup[component.CombatStats](w, wants.Target)
		if !ok || target.HP <= 0 {
			continue
		}

		attacker, victim := nameOf(w, e), nameOf(w, wants.Target)
		damage := max(0, stats.Power-target.Defense)
		if damage == 0 {
			gameLog.Add(fmt.Sprintf("%s is unable to hurt %s.", attacker, victim))
		} else {
			InflictDamage(w, wants.Target, damage)
			gameLog.Add(fmt.Sprintf("%s hits %s for %d hp.", attacker, victim, damage))
		}
		log.WithFields(logrus.Fields{
			"attacker": attacker,
			"target":   victim,
			"damage":   damage,
		}).Debug("melee")
	}
	w.Clear(component.CWantsToMelee)
}

// nameOf returns e's Name, or its handle when it has none.
func nameOf(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Lookup[component.Name](w, e); ok {
		return n.Name
	}
	return e.String()
}
