// Package fov computes field of view with recursive shadowcasting.
package fov

import (
	"mistery/internal/gamemap"
	"mistery/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// Octant transforms. A sweep offset (dx, dy) maps to the world as
//
//	x = ox + dx*xx + dy*xy
//	y = oy + dx*yx + dy*yy
//
// where dy is the (negative) row index and dx sweeps across the row.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute returns the tiles visible from origin within radius. A tile is
// included when it lies in an unshadowed part of an octant and its squared
// distance is strictly below radius². Walls are visible but cast shadow;
// tiles off the map are opaque and never returned.
//
// The origin is part of the result whenever radius > 0.
func Compute(m *gamemap.WorldMap, origin geom.Point, radius uint32) mapset.Set[geom.Point] {
	visible := mapset.New[geom.Point]()
	if radius == 0 || !m.InBounds(origin) {
		return visible
	}
	visible.Put(origin)

	s := scan{m: m, origin: origin, radius: int(radius), visible: visible}
	for _, o := range octants {
		s.castLight(1, 1.0, 0.0, o)
	}
	return visible
}

type scan struct {
	m       *gamemap.WorldMap
	origin  geom.Point
	radius  int
	visible mapset.Set[geom.Point]
}

// castLight sweeps rows row..radius of one octant within the cone
// [end, start] of slopes.
func (s *scan) castLight(row int, start, end float64, o [4]int) {
	if start < end {
		return
	}
	radiusSq := s.radius * s.radius
	newStart := start

	for j := row; j <= s.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			p, onMap := s.origin.TryTranslate(dx*o[0]+dy*o[1], dx*o[2]+dy*o[3])
			onMap = onMap && s.m.InBounds(p)
			if onMap && dx*dx+dy*dy < radiusSq {
				s.visible.Put(p)
			}

			opaque := !onMap || s.m.IsOpaque(p)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < s.radius {
				blocked = true
				s.castLight(j+1, start, lSlope, o)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
