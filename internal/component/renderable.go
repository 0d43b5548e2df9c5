package component

import (
	"dungeon-kernel/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is how an entity is drawn on its tile.
type Renderable struct {
	Glyph       rune
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int // higher draws on top when entities share a tile
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
