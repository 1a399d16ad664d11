package geom

// Rect is an axis-aligned rectangle spanning Min (bottom-left) to Max
// (top-right), both inclusive.
type Rect struct {
	Min, Max Point
}

// NewRect builds a w×h rectangle whose bottom-left corner is (x, y).
// w and h must be at least 1.
func NewRect(x, y, w, h uint32) Rect {
	return Rect{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + w - 1, Y: y + h - 1},
	}
}

func (r Rect) Left() uint32   { return r.Min.X }
func (r Rect) Right() uint32  { return r.Max.X }
func (r Rect) Bottom() uint32 { return r.Min.Y }
func (r Rect) Top() uint32    { return r.Max.Y }

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() && r.Right() >= other.Left() &&
		r.Bottom() <= other.Top() && r.Top() >= other.Bottom()
}

// Center returns the center point of the rectangle, rounded down.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left() + r.Right()) / 2,
		Y: (r.Bottom() + r.Top()) / 2,
	}
}

// InInterior reports whether p lies strictly inside r, excluding its border.
func (r Rect) InInterior(p Point) bool {
	return p.X > r.Left() && p.X < r.Right() && p.Y > r.Bottom() && p.Y < r.Top()
}
