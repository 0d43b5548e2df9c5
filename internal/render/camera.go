package render

// Camera translates between world coordinates and screen coordinates.
// TileWidth is the number of terminal columns one world tile occupies.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	TileWidth  int
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, tileW int) *Camera {
	if tileW < 1 {
		tileW = 1
	}
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, TileWidth: tileW}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/c.TileWidth
	c.OffsetY = cy - c.ViewHeight/2
}

// Fit pins the offset to 0 on any axis where the whole map fits in view,
// so small maps are not scrolled.
func (c *Camera) Fit(mapW, mapH int) {
	if mapW*c.TileWidth <= c.ViewWidth {
		c.OffsetX = 0
	}
	if mapH <= c.ViewHeight {
		c.OffsetY = 0
	}
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.TileWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.TileWidth + c.OffsetX, sy + c.OffsetY
}
