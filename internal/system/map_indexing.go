package system

import (
	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/resource"
)

// MapIndexing rebuilds map.Blocked and map.TileContent from scratch.
type MapIndexing struct{}

func (MapIndexing) Name() string { return "map_indexing" }

func (MapIndexing) Access() ecs.Access {
	return ecs.Access{
		Reads:          []ecs.ComponentType{component.CPosition, component.CTagBlocking},
		ResourceWrites: []ecs.ResourceKey{resource.KeyMap},
	}
}

func (s MapIndexing) Run(w *ecs.World) {
	m := ecs.FetchResource[*gamemap.Map](w, resource.KeyMap)
	m.PopulateBlocked()
	m.ClearContentIndex()
	for _, e := range w.Join(component.CPosition) {
		pos, _ := ecs.Lookup[component.Position](w, e)
		if !m.InBounds(pos.X, pos.Y) {
			logger.ForSystem(s.Name()).WithField("entity", e).Warn("position outside map")
			continue
		}
		i := m.Idx(pos.X, pos.Y)
		m.TileContent[i] = append(m.TileContent[i], e)
		if w.Has(e, component.CTagBlocking) {
			m.Blocked[i] = true
		}
	}
}
