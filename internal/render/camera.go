package render

// Camera translates world coordinates to screen cells. World X is doubled
// because emoji take two terminal columns, and world Y grows northwards
// while screen rows grow downwards.
type Camera struct {
	OffsetX    int // leftmost world column shown
	OffsetY    int // topmost world row shown
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center puts world position (cx, cy) in the middle of the view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy + c.ViewHeight/2
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = c.OffsetY - wy
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, c.OffsetY - sy
}
