package generate

import (
	"math/rand"

	"mistery/internal/gamemap"
	"mistery/internal/geom"
)

// connect digs an L-shaped tunnel from a to b.
func connect(m *gamemap.WorldMap, a, b geom.Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(m, a.X, b.X, a.Y)
		carveV(m, a.Y, b.Y, b.X)
	} else {
		carveV(m, a.Y, b.Y, a.X)
		carveH(m, a.X, b.X, b.Y)
	}
}

func carveH(m *gamemap.WorldMap, x1, x2, y uint32) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.SetTile(geom.Pt(x, y), gamemap.TileFloor)
	}
}

func carveV(m *gamemap.WorldMap, y1, y2, x uint32) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.SetTile(geom.Pt(x, y), gamemap.TileFloor)
	}
}
