package component

import (
	"slices"

	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/geom"
)

const CViewshed ecs.ComponentType = 7

// Viewshed is the last field of view computed for an entity. Dirty asks the
// visibility system to recompute it.
type Viewshed struct {
	Visible []geom.Point
	Range   int
	Dirty   bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// Contains reports whether p was visible at the last computation.
func (v Viewshed) Contains(p geom.Point) bool {
	return slices.Contains(v.Visible, p)
}
