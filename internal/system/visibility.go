package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/fov"
	"mistery/internal/geom"
)

// UpdateVisibility recomputes dirty viewsheds. The player's new view
// replaces the map's visible flags and is added to the revealed ones.
// Positioned entities outside the player's view are then Hidden, and
// those inside it are shown.
func UpdateVisibility(s *State) {
	recomputed := 0
	s.C.Viewshed.Each(func(id ecs.EntityID, vs *component.Viewshed) {
		if !vs.Dirty {
			return
		}
		pos, ok := s.C.Position.Get(id)
		if !ok {
			return
		}
		vs.Visible = fov.Compute(s.Map, pos.Point, vs.Range)
		vs.Dirty = false
		recomputed++

		if s.C.Player.Has(id) {
			s.Map.ClearVisibility()
			vs.Visible.Each(func(p geom.Point) {
				s.Map.SetVisible(p, true)
				s.Map.SetRevealed(p, true)
			})
		}
	})
	if recomputed > 0 {
		s.logger("visibility").WithField("recomputed", recomputed).Debug("viewsheds updated")
	}

	player, ok := s.PlayerID()
	if !ok {
		return
	}
	view, ok := s.C.Viewshed.Get(player)
	if !ok || view.Dirty {
		return
	}
	s.C.Position.Each(func(id ecs.EntityID, pos *component.Position) {
		if id == player {
			return
		}
		if view.Visible.Has(pos.Point) {
			s.C.Hidden.Remove(id)
		} else if !s.C.Hidden.Has(id) {
			s.C.Hidden.Insert(id, component.Hidden{})
		}
	})
}
