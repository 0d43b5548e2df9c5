package component

import "dungeon-kernel/internal/ecs"

const CName ecs.ComponentType = 6

// Name labels an entity in game log messages.
type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }
