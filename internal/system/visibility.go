package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/fov"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/resource"
)

// Visibility recomputes every dirty viewshed. The player's viewshed also
// rewrites the map's visible set and extends its revealed set.
type Visibility struct{}

func (Visibility) Name() string { return "visibility" }

func (Visibility) Access() ecs.Access {
	return ecs.Access{
		Reads:          []ecs.ComponentType{component.CPosition, component.CTagPlayer},
		Writes:         []ecs.ComponentType{component.CViewshed},
		ResourceWrites: []ecs.ResourceKey{resource.KeyMap},
	}
}

func (Visibility) Run(w *ecs.World) {
	m := ecs.FetchResource[*gamemap.Map](w, resource.KeyMap)
	for _, e := range w.Join(component.CPosition, component.CViewshed) {
		vs, _ := ecs.Lookup[component.Viewshed](w, e)
		if !vs.Dirty {
			continue
		}
		pos, _ := ecs.Lookup[component.Position](w, e)
		vs.Visible = fov.Compute(m, pos.Point(), vs.Range)
		vs.Dirty = false
		w.Insert(e, vs)

		if !w.Has(e, component.CTagPlayer) {
			continue
		}
		m.ClearVisible()
		for _, p := range vs.Visible {
			i := m.Idx(p.X, p.Y)
			m.Visible[i] = true
			m.Revealed[i] = true
		}
	}
}
