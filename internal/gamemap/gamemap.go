package gamemap

import (
	"math"

	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/pathfind"
)

// Map is one dungeon level. Every per-tile slice is indexed by Idx.
//
// Blocked and TileContent are derived each tick by the map indexing system;
// Visible is rewritten on every player visibility pass; Revealed only ever
// grows.
type Map struct {
	Width, Height int
	Tiles         []TileKind
	Blocked       []bool
	Visible       []bool
	Revealed      []bool
	TileContent   [][]ecs.Entity
	Rooms         []Rect
}

// New creates a Map filled with walls.
func New(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]TileKind, n),
		Blocked:     make([]bool, n),
		Visible:     make([]bool, n),
		Revealed:    make([]bool, n),
		TileContent: make([][]ecs.Entity, n),
	}
	m.PopulateBlocked()
	return m
}

// Idx converts (x, y) to a tile index.
func (m *Map) Idx(x, y int) int { return y*m.Width + x }

// XY converts a tile index back to coordinates.
func (m *Map) XY(idx int) (int, int) { return idx % m.Width, idx / m.Width }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Clamp pulls (x, y) into [0,W-1] x [0,H-1].
func (m *Map) Clamp(x, y int) (int, int) {
	return min(max(x, 0), m.Width-1), min(max(y, 0), m.Height-1)
}

// At returns the tile kind at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) TileKind {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y) and refreshes its blocked bit from the
// tile kind.
func (m *Map) Set(x, y int, k TileKind) {
	i := m.Idx(x, y)
	m.Tiles[i] = k
	m.Blocked[i] = k.Blocks()
}

// PopulateBlocked resets Blocked to the tile kinds alone.
func (m *Map) PopulateBlocked() {
	for i, k := range m.Tiles {
		m.Blocked[i] = k.Blocks()
	}
}

// ClearContentIndex empties every TileContent list, keeping capacity.
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ClearVisible drops the current visible set. Revealed is untouched.
func (m *Map) ClearVisible() {
	clear(m.Visible)
}

// IsOpaque reports whether (x, y) blocks sight. Out-of-bounds tiles do.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.At(x, y).Opaque()
}

// IsBlocked reports whether (x, y) cannot be entered. Out-of-bounds tiles
// cannot.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.Idx(x, y)]
}

// neighborOffsets is the fixed exit enumeration order: cardinals first,
// then diagonals. Path ties resolve by this order.
var neighborOffsets = [...]struct {
	dx, dy   int
	diagonal bool
}{
	{-1, 0, false},
	{1, 0, false},
	{0, -1, false},
	{0, 1, false},
	{-1, -1, true},
	{1, -1, true},
	{-1, 1, true},
	{1, 1, true},
}

// AvailableExits lists the in-bounds, unblocked neighbors of idx.
// Cardinal steps cost 1 and diagonal steps cost sqrt(2).
func (m *Map) AvailableExits(idx int) []pathfind.Exit {
	x, y := m.XY(idx)
	exits := make([]pathfind.Exit, 0, len(neighborOffsets))
	for _, o := range neighborOffsets {
		nx, ny := x+o.dx, y+o.dy
		if m.IsBlocked(nx, ny) {
			continue
		}
		cost := 1.0
		if o.diagonal {
			cost = math.Sqrt2
		}
		exits = append(exits, pathfind.Exit{Idx: m.Idx(nx, ny), Cost: cost})
	}
	return exits
}

// PathingDistance is the octile distance between two tile indices. It never
// overestimates the cost of an 8-connected path, so A* stays optimal.
func (m *Map) PathingDistance(a, b int) float64 {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
}
