package render

import (
	"sort"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/geom"
	"dungeon-kernel/internal/resource"

	"github.com/gdamore/tcell/v2"
)

// Cell is one drawable tuple: a glyph at a map coordinate.
type Cell struct {
	X, Y    int
	Glyph   rune
	FG, BG  tcell.Color
	Visible bool
}

// Frame is everything a display needs for one tick. It is a copy, so it
// can be handed to another goroutine.
type Frame struct {
	Width, Height int
	Tiles         []Cell // revealed tiles only
	Entities      []Cell // entities on visible tiles, back to front
	Log           []string
	HP, MaxHP     int
	Player        geom.Point
	Dead          bool
}

// Snapshot captures the world for display. logLines caps the number of
// GameLog entries copied (newest first).
func Snapshot(w *ecs.World, pal Palette, logLines int) Frame {
	m := ecs.FetchResource[*gamemap.Map](w, resource.KeyMap)
	f := Frame{
		Width:  m.Width,
		Height: m.Height,
		Player: ecs.FetchResource[geom.Point](w, resource.KeyPlayerPosition),
	}

	for i, kind := range m.Tiles {
		if !m.Revealed[i] {
			continue
		}
		x, y := m.XY(i)
		f.Tiles = append(f.Tiles, tileCell(pal, kind, x, y, m.Visible[i]))
	}

	type drawable struct {
		order int
		cell  Cell
	}
	var ents []drawable
	for _, e := range w.Join(component.CPosition, component.CRenderable) {
		pos, _ := ecs.Lookup[component.Position](w, e)
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.Idx(pos.X, pos.Y)] {
			continue
		}
		rend, _ := ecs.Lookup[component.Renderable](w, e)
		ents = append(ents, drawable{
			order: rend.RenderOrder,
			cell:  Cell{X: pos.X, Y: pos.Y, Glyph: rend.Glyph, FG: rend.FGColor, BG: rend.BGColor, Visible: true},
		})
	}
	// Lower order draws first (behind).
	sort.SliceStable(ents, func(i, j int) bool { return ents[i].order < ents[j].order })
	for _, d := range ents {
		f.Entities = append(f.Entities, d.cell)
	}

	if gl, ok := w.Resource(resource.KeyGameLog); ok {
		f.Log = append([]string(nil), gl.(*resource.GameLog).Recent(logLines)...)
	}
	player := ecs.FetchResource[ecs.Entity](w, resource.KeyPlayerEntity)
	if stats, ok := ecs.Lookup[component.CombatStats](w, player); ok {
		f.HP, f.MaxHP = stats.HP, stats.MaxHP
		f.Dead = stats.HP < 1
	}
	return f
}

func tileCell(pal Palette, kind gamemap.TileKind, x, y int, visible bool) Cell {
	c := Cell{X: x, Y: y, BG: pal.BG, Visible: visible}
	switch kind {
	case gamemap.TileWall:
		c.Glyph, c.FG = pal.Wall, pal.DimWall
		if visible {
			c.FG = pal.LitWall
		}
	default:
		c.Glyph, c.FG = pal.Floor, pal.DimFloor
		if visible {
			c.FG = pal.LitFloor
		}
	}
	return c
}
