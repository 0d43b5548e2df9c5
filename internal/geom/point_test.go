package geom

import (
	"math"
	"testing"
)

func TestDistance2D(t *testing.T) {
	cases := []struct {
		a, b Point
		want float64
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{5, 5}, Point{6, 5}, 1},
		{Point{5, 5}, Point{6, 6}, math.Sqrt2},
		{Point{0, 0}, Point{3, 4}, 5},
	}
	for _, c := range cases {
		if got := Distance2D(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Distance2D(%v,%v) = %v; want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAdd(t *testing.T) {
	if got := (Point{5, 5}).Add(1, -1); got != (Point{6, 4}) {
		t.Errorf("Add = %v; want (6,4)", got)
	}
}
