package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"
)

// IndexMap rebuilds the blocked cache: walls from the tiles, then every
// tile holding a BlocksTile entity. It must run before ResolveMoves each
// tick, since blockers may have died or moved since the last one.
func IndexMap(s *State) {
	s.Map.ReloadBlocked()
	s.C.BlocksTile.Each(func(id ecs.EntityID, _ *component.BlocksTile) {
		if pos, ok := s.C.Position.Get(id); ok {
			s.Map.SetBlocked(pos.Point, true)
		}
	})
}
