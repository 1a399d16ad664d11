// Package path finds routes across a WorldMap with A*.
package path

import (
	"mistery/internal/gamemap"
	"mistery/internal/geom"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

type node struct {
	p    geom.Point
	g, h uint32
	seq  uint64
}

func (n node) f() uint32 { return n.g + n.h }

// lower f first, then lower h, then first pushed.
func less(a, b node) bool {
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Find returns the cheapest route from start to end, both included, with
// every step costing 1 and Distance2D as the heuristic. Neighbours come
// from m.AdjacentExits, except that a node adjacent to end only leads to
// end; so end may itself be blocked, e.g. by the entity being chased.
//
// ok is false when no route exists.
func Find(m *gamemap.WorldMap, start, end geom.Point) ([]geom.Point, bool) {
	if start == end {
		return []geom.Point{start}, true
	}

	open := heap.New[node](less)
	parent := make(map[geom.Point]geom.Point)
	cost := map[geom.Point]uint32{start: 0}
	closed := mapset.New[geom.Point]()

	var seq uint64
	open.Push(node{p: start, h: geom.Distance2D(start, end)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.p == end {
			return walkBack(parent, start, end), true
		}
		if closed.Has(cur.p) {
			continue
		}
		closed.Put(cur.p)

		for _, next := range successors(m, cur.p, end) {
			if closed.Has(next) {
				continue
			}
			g := cur.g + 1
			if old, seen := cost[next]; seen && old <= g {
				continue
			}
			cost[next] = g
			parent[next] = cur.p
			seq++
			open.Push(node{p: next, g: g, h: geom.Distance2D(next, end), seq: seq})
		}
	}
	return nil, false
}

func successors(m *gamemap.WorldMap, p, end geom.Point) []geom.Point {
	if geom.Distance2D(p, end) == 1 {
		return []geom.Point{end}
	}
	return m.AdjacentExits(p)
}

func walkBack(parent map[geom.Point]geom.Point, start, end geom.Point) []geom.Point {
	route := []geom.Point{end}
	for p := end; p != start; {
		p = parent[p]
		route = append(route, p)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
