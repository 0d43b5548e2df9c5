package generate

import (
	"math/rand"

	"dungeon-kernel/internal/factory"
	"dungeon-kernel/internal/gamemap"
)

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Kind  factory.MonsterKind
	Index int
	X, Y  int
}

// RollMonster rolls 1d2: 1 is a goblin, 2 an orc.
func RollMonster(rng *rand.Rand) factory.MonsterKind {
	if rollRange(rng, 1, 2) == 1 {
		return factory.Goblin
	}
	return factory.Orc
}

// Populate places one monster at the center of every room except the
// first, which belongs to the player. Indices count from 0.
func Populate(rooms []gamemap.Rect, rng *rand.Rand) []MonsterSpawn {
	if len(rooms) < 2 {
		return nil
	}
	spawns := make([]MonsterSpawn, 0, len(rooms)-1)
	for i, room := range rooms[1:] {
		x, y := room.Center()
		spawns = append(spawns, MonsterSpawn{Kind: RollMonster(rng), Index: i, X: x, Y: y})
	}
	return spawns
}
