// Package resource holds the world singletons shared by the systems.
package resource

import "dungeon-kernel/internal/ecs"

const (
	KeyMap            ecs.ResourceKey = "map"             // *gamemap.Map
	KeyPlayerPosition ecs.ResourceKey = "player_position" // geom.Point
	KeyPlayerEntity   ecs.ResourceKey = "player_entity"   // ecs.Entity
	KeyRunState       ecs.ResourceKey = "run_state"       // RunState
	KeyGameLog        ecs.ResourceKey = "game_log"        // *GameLog
)
