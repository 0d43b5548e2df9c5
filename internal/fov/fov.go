// Package fov computes fields of view with symmetric shadowcasting.
//
// Slopes are kept as exact integer fractions so results never depend on
// floating point rounding, and visibility is symmetric: if A sees B at
// range r then B sees A at range r.
package fov

import "dungeon-kernel/internal/geom"

// Grid is the map view the scan needs. Coordinates outside the grid are
// treated as opaque and are never reported visible.
type Grid interface {
	InBounds(x, y int) bool
	IsOpaque(x, y int) bool
}

// slope is num/den with den > 0.
type slope struct{ num, den int }

// quadrant maps (depth, col) scan coordinates to map coordinates.
type quadrant struct {
	origin geom.Point
	dir    int
}

const (
	north = iota
	east
	south
	west
)

func (q quadrant) transform(depth, col int) (int, int) {
	switch q.dir {
	case north:
		return q.origin.X + col, q.origin.Y - depth
	case south:
		return q.origin.X + col, q.origin.Y + depth
	case east:
		return q.origin.X + depth, q.origin.Y + col
	default:
		return q.origin.X - depth, q.origin.Y + col
	}
}

type scanner struct {
	grid   Grid
	radius int
	seen   map[geom.Point]struct{}
	out    []geom.Point
}

// Compute returns every in-bounds tile visible from origin within radius,
// origin included. A tile is in range when dx*dx+dy*dy <= radius*radius.
func Compute(g Grid, origin geom.Point, radius int) []geom.Point {
	if !g.InBounds(origin.X, origin.Y) {
		return nil
	}
	s := &scanner{grid: g, radius: radius, seen: make(map[geom.Point]struct{})}
	s.reveal(origin.X, origin.Y)
	for dir := north; dir <= west; dir++ {
		q := quadrant{origin: origin, dir: dir}
		s.scan(q, 1, slope{-1, 1}, slope{1, 1})
	}
	return s.out
}

func (s *scanner) reveal(x, y int) {
	if !s.grid.InBounds(x, y) {
		return
	}
	p := geom.Point{X: x, Y: y}
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.out = append(s.out, p)
}

func (s *scanner) opaque(q quadrant, depth, col int) bool {
	return s.grid.IsOpaque(q.transform(depth, col))
}

func (s *scanner) scan(q quadrant, depth int, start, end slope) {
	if depth > s.radius {
		return
	}
	minCol := roundTiesUp(depth, start)
	maxCol := roundTiesDown(depth, end)

	prevSet, prevWall := false, false
	for col := minCol; col <= maxCol; col++ {
		wall := s.opaque(q, depth, col)
		if (wall || symmetric(depth, col, start, end)) && col*col+depth*depth <= s.radius*s.radius {
			s.reveal(q.transform(depth, col))
		}
		if prevSet && prevWall && !wall {
			start = tileSlope(depth, col)
		}
		if prevSet && !prevWall && wall {
			s.scan(q, depth+1, start, tileSlope(depth, col))
		}
		prevSet, prevWall = true, wall
	}
	if prevSet && !prevWall {
		s.scan(q, depth+1, start, end)
	}
}

// tileSlope is the slope of the tile's near left edge: (2col-1)/(2depth).
func tileSlope(depth, col int) slope {
	return slope{2*col - 1, 2 * depth}
}

// symmetric reports whether the tile's center lies within [start, end].
func symmetric(depth, col int, start, end slope) bool {
	return col*start.den >= depth*start.num && col*end.den <= depth*end.num
}

// roundTiesUp is floor(depth*s + 1/2).
func roundTiesUp(depth int, s slope) int {
	return floorDiv(2*depth*s.num+s.den, 2*s.den)
}

// roundTiesDown is ceil(depth*s - 1/2).
func roundTiesDown(depth int, s slope) int {
	return ceilDiv(2*depth*s.num-s.den, 2*s.den)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
