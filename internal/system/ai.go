package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/geom"
	"mistery/internal/path"
)

// RunMonsterAI lets every non-player actor with points spend one on its
// nearest visible hostile: attack when adjacent, otherwise step along the
// A* route towards it. Equally near hostiles go to the lowest entity id.
func RunMonsterAI(s *State) {
	log := s.logger("ai")
	s.C.ActsOnTurns.Each(func(id ecs.EntityID, turns *component.ActsOnTurns) {
		if s.C.Player.Has(id) {
			return
		}
		faction, ok := s.C.Faction.Get(id)
		if !ok {
			return
		}
		pos, ok := s.C.Position.Get(id)
		if !ok {
			return
		}
		vs, ok := s.C.Viewshed.Get(id)
		if !ok {
			return
		}
		if !turns.Perform() {
			return
		}

		target, tpos, found := nearestVisibleHostile(s, id, faction, pos.Point, vs)
		if !found {
			return
		}
		if geom.Distance2D(pos.Point, tpos) == 1 {
			s.C.Target(target, id)
			return
		}
		route, ok := path.Find(s.Map, pos.Point, tpos)
		if !ok || len(route) < 2 {
			log.WithField("entity", id).Debug("target unreachable")
			return
		}
		s.C.WantsToMove.Insert(id, component.WantsToMove{To: route[1]})
	})
}

// nearestVisibleHostile picks the closest positioned entity of another
// faction inside vs, breaking ties by lowest id.
func nearestVisibleHostile(s *State, self ecs.EntityID, f component.Faction, from geom.Point, vs component.Viewshed) (ecs.EntityID, geom.Point, bool) {
	var (
		best     ecs.EntityID
		bestPos  geom.Point
		bestDist uint32
		found    bool
	)
	s.C.Faction.Each(func(id ecs.EntityID, other *component.Faction) {
		if id == self || other.ID == f.ID {
			return
		}
		pos, ok := s.C.Position.Get(id)
		if !ok || !vs.Visible.Has(pos.Point) {
			return
		}
		d := geom.Distance2D(from, pos.Point)
		if !found || d < bestDist || (d == bestDist && id < best) {
			best, bestPos, bestDist, found = id, pos.Point, d, true
		}
	})
	return best, bestPos, found
}
