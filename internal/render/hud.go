package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) drawHUD(f Frame) {
	_, screenH := r.screen.Size()
	hudY := screenH - r.hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("HP: %d/%d", f.HP, f.MaxHP)
	style := tcell.StyleDefault.Foreground(r.palette.HUD)
	if f.Dead {
		status += "  You are dead. Press q to leave."
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	r.drawText(0, hudY+1, status, style)

	for i, msg := range f.Log {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(r.palette.Log))
	}
}

// DrawLines clears the screen and shows lines top to bottom. Hosts use it
// for end-of-run summaries.
func (r *Renderer) DrawLines(lines []string) {
	r.screen.Clear()
	style := tcell.StyleDefault.Foreground(r.palette.HUD)
	for i, l := range lines {
		r.drawText(2, 1+i, l, style)
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
