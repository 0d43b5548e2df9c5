package generate

import (
	"fmt"

	"dungeon-kernel/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota // horizontal then vertical, or the reverse, by coin flip
	CorridorZShaped
	CorridorStraight
)

var corridorStyleNames = [...]string{
	CorridorLShaped:  "lshaped",
	CorridorZShaped:  "zshaped",
	CorridorStraight: "straight",
}

func (s CorridorStyle) String() string {
	if int(s) < len(corridorStyleNames) {
		return corridorStyleNames[s]
	}
	return fmt.Sprintf("CorridorStyle(%d)", uint8(s))
}

// ParseCorridorStyle maps a flag value ("lshaped", "zshaped", "straight")
// to a CorridorStyle.
func ParseCorridorStyle(name string) (CorridorStyle, error) {
	for i, n := range corridorStyleNames {
		if n == name {
			return CorridorStyle(i), nil
		}
	}
	return CorridorLShaped, fmt.Errorf("unknown corridor style %q", name)
}

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(gmap *gamemap.Map, x1, y1, x2, y2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(gmap, x1, y1, x2, y2)
	case CorridorStraight:
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	default:
		if cfg.Rand.Intn(2) == 1 {
			carveH(gmap, x1, x2, y1)
			carveV(gmap, y1, y2, x2)
		} else {
			carveV(gmap, y1, y2, x1)
			carveH(gmap, x1, x2, y2)
		}
	}
}

func carveH(gmap *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(gmap *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

// carveZShaped runs vertically from (x1,y1) to the middle row, across it,
// then vertically again to (x2,y2).
func carveZShaped(gmap *gamemap.Map, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	carveV(gmap, y1, midY, x1)
	carveH(gmap, x1, x2, midY)
	carveV(gmap, midY, y2, x2)
}

// carveRoom floors the interior of r; its outer edge stays wall.
func carveRoom(gmap *gamemap.Map, r gamemap.Rect) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
}
