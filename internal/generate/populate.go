package generate

import (
	"math/rand"

	"mistery/internal/gamemap"
	"mistery/internal/geom"
)

// SpawnConfig bounds how much gets placed in each room.
type SpawnConfig struct {
	MaxMonsters int // per room, inclusive
	MaxItems    int // per room, inclusive
	Rand        *rand.Rand
}

// Spawns lists where monsters and items should appear. No two points in
// a Spawns value are equal.
type Spawns struct {
	Monsters []geom.Point
	Items    []geom.Point
}

// Populate picks spawn points in every room except the first, which is
// left for the player. Each room gets 0..MaxMonsters monsters and
// 0..MaxItems items at distinct interior tiles.
func Populate(m *gamemap.WorldMap, cfg SpawnConfig) Spawns {
	var out Spawns
	rooms := m.Rooms()
	if len(rooms) < 2 || cfg.Rand == nil {
		return out
	}
	for _, room := range rooms[1:] {
		monsters := cfg.Rand.Intn(max(0, cfg.MaxMonsters) + 1)
		items := cfg.Rand.Intn(max(0, cfg.MaxItems) + 1)
		pts := pickInterior(room, monsters+items, cfg.Rand)
		out.Monsters = append(out.Monsters, pts[:min(monsters, len(pts))]...)
		if len(pts) > monsters {
			out.Items = append(out.Items, pts[monsters:]...)
		}
	}
	return out
}

// pickInterior returns up to n distinct random tiles strictly inside room.
func pickInterior(room geom.Rect, n int, rng *rand.Rand) []geom.Point {
	iw := int(room.Right() - room.Left() - 1)
	ih := int(room.Top() - room.Bottom() - 1)
	if iw <= 0 || ih <= 0 {
		return nil
	}
	n = min(n, iw*ih)
	seen := make(map[geom.Point]bool, n)
	pts := make([]geom.Point, 0, n)
	for len(pts) < n {
		p := geom.Pt(room.Left()+1+uint32(rng.Intn(iw)), room.Bottom()+1+uint32(rng.Intn(ih)))
		if seen[p] {
			continue
		}
		seen[p] = true
		pts = append(pts, p)
	}
	return pts
}
