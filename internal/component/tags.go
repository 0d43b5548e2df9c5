package component

import "dungeon-kernel/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 3
	CTagMonster  ecs.ComponentType = 4
	CTagBlocking ecs.ComponentType = 5
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagMonster marks an AI-driven combatant.
type TagMonster struct{}

func (TagMonster) Type() ecs.ComponentType { return CTagMonster }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
