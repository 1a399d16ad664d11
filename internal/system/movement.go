package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"
)

// ResolveMoves drains WantsToMove. A move onto an unblocked tile is
// committed; a move onto a blocked tile by a faction member becomes a
// melee attack on every hostile combatant standing there.
func ResolveMoves(s *State) {
	for _, e := range s.C.WantsToMove.Drain() {
		pos := s.C.Position.Ptr(e.ID)
		if pos == nil {
			continue
		}
		dest := e.Value.To

		if !s.Map.IsBlocked(dest) {
			if s.C.BlocksTile.Has(e.ID) {
				s.Map.SetBlocked(pos.Point, false)
				s.Map.SetBlocked(dest, true)
			}
			pos.Point = dest
			if vs := s.C.Viewshed.Ptr(e.ID); vs != nil {
				vs.Dirty = true
			}
			if s.C.Player.Has(e.ID) {
				s.PlayerPos = dest
			}
			continue
		}

		mover, ok := s.C.Faction.Get(e.ID)
		if !ok {
			continue
		}
		s.C.Faction.Each(func(other ecs.EntityID, f *component.Faction) {
			if other == e.ID || f.ID == mover.ID || !s.C.CombatStats.Has(other) {
				return
			}
			if op, ok := s.C.Position.Get(other); ok && op.Point == dest {
				s.C.Target(other, e.ID)
			}
		})
	}
}
