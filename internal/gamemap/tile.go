package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Blocks reports whether the tile kind stops movement.
func (k TileKind) Blocks() bool { return k == TileWall }

// Opaque reports whether the tile kind stops sight.
func (k TileKind) Opaque() bool { return k == TileWall }

func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	}
	return "unknown"
}
