package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
	hudRows int
}

// NewRenderer creates a Renderer for the given screen. hudRows rows at the
// bottom are kept for the status line and message log.
func NewRenderer(screen tcell.Screen, pal Palette, logLines int) *Renderer {
	r := &Renderer{screen: screen, palette: pal, hudRows: logLines + 2}
	r.Resize()
	return r
}

// Resize re-reads the screen size after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(0, 0, w, max(h-r.hudRows, 1), 1)
}

// Palette returns the terrain palette frames should be built with.
func (r *Renderer) Palette() Palette { return r.palette }

// Draw renders tiles, entities and the HUD, then shows the screen.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	r.camera.Center(f.Player.X, f.Player.Y)
	r.camera.Fit(f.Width, f.Height)
	for _, c := range f.Tiles {
		r.drawCell(c)
	}
	for _, c := range f.Entities {
		r.drawCell(c)
	}
	r.drawHUD(f)
	r.screen.Show()
}

func (r *Renderer) drawCell(c Cell) {
	sx, sy, onScreen := r.camera.WorldToScreen(c.X, c.Y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Foreground(c.FG).Background(c.BG)
	r.putGlyph(sx, sy, c.Glyph, style)
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
