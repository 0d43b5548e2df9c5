package component

import (
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/geom"
)

const CPosition ecs.ComponentType = 1

// Position is a tile coordinate on the map.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point returns the position as a geom.Point.
func (p Position) Point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }
