// Package netplay serves the game over WebSocket: clients send key names
// and receive a frame after every input.
package netplay

import (
	"dungeon-kernel/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ClientMessage is the only message a client sends.
type ClientMessage struct {
	Key string `json:"key" jsonschema:"required,description=Key name such as h/j/k/l/y/u/b/n or a digit or left/right/up/down or q"`
}

// CellMessage is one glyph at a map coordinate. Colors are CSS hex
// strings, empty for the terminal default.
type CellMessage struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Glyph   string `json:"glyph"`
	FG      string `json:"fg,omitempty"`
	BG      string `json:"bg,omitempty"`
	Visible bool   `json:"visible"`
}

// FrameMessage is sent after connecting and after every client message.
type FrameMessage struct {
	Type     string        `json:"type" jsonschema:"enum=frame"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Tiles    []CellMessage `json:"tiles"`
	Entities []CellMessage `json:"entities"`
	Log      []string      `json:"log"`
	HP       int           `json:"hp"`
	MaxHP    int           `json:"max_hp"`
	PlayerX  int           `json:"player_x"`
	PlayerY  int           `json:"player_y"`
	Dead     bool          `json:"dead"`
	State    string        `json:"state"`
	Turn     int           `json:"turn"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Type  string `json:"type" jsonschema:"enum=error"`
	Error string `json:"error"`
}

// NewFrameMessage converts a render frame into its wire form.
func NewFrameMessage(f render.Frame, state string, turn int) FrameMessage {
	return FrameMessage{
		Type:     "frame",
		Width:    f.Width,
		Height:   f.Height,
		Tiles:    cellMessages(f.Tiles),
		Entities: cellMessages(f.Entities),
		Log:      append([]string{}, f.Log...),
		HP:       f.HP,
		MaxHP:    f.MaxHP,
		PlayerX:  f.Player.X,
		PlayerY:  f.Player.Y,
		Dead:     f.Dead,
		State:    state,
		Turn:     turn,
	}
}

func cellMessages(cells []render.Cell) []CellMessage {
	out := make([]CellMessage, len(cells))
	for i, c := range cells {
		out[i] = CellMessage{
			X:       c.X,
			Y:       c.Y,
			Glyph:   string(c.Glyph),
			FG:      cssColor(c.FG),
			BG:      cssColor(c.BG),
			Visible: c.Visible,
		}
	}
	return out
}

func cssColor(c tcell.Color) string { return c.CSS() }
