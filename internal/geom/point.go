// Package geom holds the grid value types shared by the map, FOV and
// pathfinding code.
package geom

import (
	"fmt"
	"math"
)

// Point is a map-grid coordinate. Both axes are unsigned; a point can never
// sit left of or below the map origin.
type Point struct {
	X, Y uint32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint32) Point {
	return Point{X: x, Y: y}
}

// TryTranslate returns p shifted by (dx, dy). ok is false when either
// coordinate would become negative or overflow.
func (p Point) TryTranslate(dx, dy int) (Point, bool) {
	nx := int64(p.X) + int64(dx)
	ny := int64(p.Y) + int64(dy)
	if nx < 0 || ny < 0 || nx > math.MaxUint32 || ny > math.MaxUint32 {
		return Point{}, false
	}
	return Point{X: uint32(nx), Y: uint32(ny)}, true
}

// Translate returns p shifted by (dx, dy). It panics when the result would
// have a negative coordinate: callers are expected to stay on the grid.
func (p Point) Translate(dx, dy int) Point {
	q, ok := p.TryTranslate(dx, dy)
	if !ok {
		panic(fmt.Sprintf("geom: translating %v by (%d,%d) leaves the grid", p, dx, dy))
	}
	return q
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Distance2D is the Euclidean distance between two points rounded down.
// Diagonal neighbours are therefore at distance 1, like cardinal ones.
func Distance2D(a, b Point) uint32 {
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	return uint32(math.Floor(math.Sqrt(float64(dx*dx + dy*dy))))
}
