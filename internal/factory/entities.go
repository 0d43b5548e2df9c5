package factory

import (
	"fmt"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// ViewRange is the sight radius every seer spawns with.
const ViewRange = 8

// Canonical starting stats.
var (
	PlayerStats  = component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5}
	MonsterStats = component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 4}
)

// MonsterKind selects a monster template.
type MonsterKind uint8

const (
	Goblin MonsterKind = iota
	Orc
)

var monsterTemplates = [...]struct {
	name  string
	glyph rune
}{
	Goblin: {"Goblin", 'g'},
	Orc:    {"Orc", 'o'},
}

func (k MonsterKind) String() string { return monsterTemplates[k].name }

// Glyph returns the map glyph for the kind.
func (k MonsterKind) Glyph() rune { return monsterTemplates[k].glyph }

// NewPlayer creates the player entity at (x, y). The player does not carry
// TagBlocking, so monsters can path onto its tile.
func NewPlayer(w *ecs.World, x, y int) ecs.Entity {
	return w.CreateEntity(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       '@',
			FGColor:     tcell.ColorYellow,
			BGColor:     tcell.ColorBlack,
			RenderOrder: 10,
		},
		component.TagPlayer{},
		component.Name{Name: "Player"},
		component.Viewshed{Range: ViewRange, Dirty: true},
		PlayerStats,
	)
}

// NewMonster creates a monster of the given kind at (x, y), named
// "{Kind} #{index}".
func NewMonster(w *ecs.World, kind MonsterKind, index, x, y int) ecs.Entity {
	return w.CreateEntity(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       kind.Glyph(),
			FGColor:     tcell.ColorRed,
			BGColor:     tcell.ColorBlack,
			RenderOrder: 5,
		},
		component.TagMonster{},
		component.Name{Name: fmt.Sprintf("%s #%d", kind, index)},
		component.Viewshed{Range: ViewRange, Dirty: true},
		component.TagBlocking{},
		MonsterStats,
	)
}
