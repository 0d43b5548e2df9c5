package generate

import (
	"math/rand"

	"dungeon-kernel/internal/gamemap"
)

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	MinRoomSize         int
	MaxRoomSize         int
	CorridorStyle       CorridorStyle
	Rand                *rand.Rand
}

// RoomsAndCorridors tries MaxRooms random room placements, keeps the ones
// that do not intersect an earlier room and tunnels each kept room to the
// one before it. The returned map has fresh derived state: nothing visible
// or revealed, Blocked matching the tiles, empty tile content.
func RoomsAndCorridors(cfg *Config) (*gamemap.Map, []gamemap.Rect) {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	var rooms []gamemap.Rect

	for i := 0; i < cfg.MaxRooms; i++ {
		w := rollRange(cfg.Rand, cfg.MinRoomSize, cfg.MaxRoomSize)
		h := rollRange(cfg.Rand, cfg.MinRoomSize, cfg.MaxRoomSize)
		if cfg.MapWidth-w-1 < 1 || cfg.MapHeight-h-1 < 1 {
			continue
		}
		x := rollRange(cfg.Rand, 1, cfg.MapWidth-w-1) - 1
		y := rollRange(cfg.Rand, 1, cfg.MapHeight-h-1) - 1
		room := gamemap.NewRect(x, y, w, h)

		ok := true
		for _, other := range rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		carveRoom(gmap, room)
		if len(rooms) > 0 {
			nx, ny := room.Center()
			px, py := rooms[len(rooms)-1].Center()
			carveCorridor(gmap, px, py, nx, ny, cfg)
		}
		rooms = append(rooms, room)
	}

	gmap.Rooms = rooms
	return gmap, rooms
}

// rollRange returns a uniform integer in [lo, hi].
func rollRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
