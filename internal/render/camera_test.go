package render

import "testing"

func TestCameraRoundTrip(t *testing.T) {
	for _, tileW := range []int{1, 2} {
		c := NewCamera(40, 25, 60, 20, tileW)
		for _, p := range [][2]int{{40, 25}, {30, 20}, {45, 30}} {
			sx, sy, _ := c.WorldToScreen(p[0], p[1])
			wx, wy := c.ScreenToWorld(sx, sy)
			if wx != p[0] || wy != p[1] {
				t.Errorf("tileW %d: %v -> (%d,%d) -> (%d,%d)", tileW, p, sx, sy, wx, wy)
			}
		}
	}
}

func TestCameraCentered(t *testing.T) {
	c := NewCamera(40, 25, 60, 20, 1)
	sx, sy, ok := c.WorldToScreen(40, 25)
	if !ok || sx != 30 || sy != 10 {
		t.Errorf("center maps to (%d,%d,%v), want (30,10,true)", sx, sy, ok)
	}
	if _, _, ok := c.WorldToScreen(0, 0); ok {
		t.Error("far corner reported on screen")
	}
}

func TestCameraFitSmallMap(t *testing.T) {
	c := NewCamera(5, 5, 60, 20, 1)
	c.Fit(10, 10)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("offset = (%d,%d), want (0,0) for a map that fits", c.OffsetX, c.OffsetY)
	}
	c = NewCamera(50, 40, 60, 20, 1)
	c.Fit(80, 50)
	if c.OffsetY == 0 {
		t.Error("tall map should keep the vertical offset")
	}
}
