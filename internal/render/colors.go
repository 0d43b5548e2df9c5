package render

import "github.com/gdamore/tcell/v2"

// Palette holds the glyphs and colors used to draw terrain. Lit colors
// apply to tiles in the player's view, dim colors to tiles that were seen
// before but are out of view now.
type Palette struct {
	Wall     rune
	Floor    rune
	LitWall  tcell.Color
	LitFloor tcell.Color
	DimWall  tcell.Color
	DimFloor tcell.Color
	BG       tcell.Color
	HUD      tcell.Color
	Log      tcell.Color
}

// Palettes lists the selectable terrain themes by name.
var Palettes = map[string]Palette{
	"classic": {
		Wall:     '#',
		Floor:    '.',
		LitWall:  tcell.NewRGBColor(0, 255, 0),
		LitFloor: tcell.NewRGBColor(0, 128, 128),
		DimWall:  tcell.NewRGBColor(77, 77, 77),
		DimFloor: tcell.NewRGBColor(51, 51, 51),
		BG:       tcell.ColorBlack,
		HUD:      tcell.ColorWhite,
		Log:      tcell.ColorLightYellow,
	},
	"amber": {
		Wall:     '#',
		Floor:    '.',
		LitWall:  tcell.NewRGBColor(255, 176, 0),
		LitFloor: tcell.NewRGBColor(178, 118, 0),
		DimWall:  tcell.NewRGBColor(90, 62, 0),
		DimFloor: tcell.NewRGBColor(60, 41, 0),
		BG:       tcell.ColorBlack,
		HUD:      tcell.NewRGBColor(255, 176, 0),
		Log:      tcell.NewRGBColor(255, 204, 102),
	},
}

// DefaultPalette is the classic green-on-black theme.
var DefaultPalette = Palettes["classic"]

// PaletteNamed returns the named palette, falling back to the default.
func PaletteNamed(name string) Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return DefaultPalette
}
