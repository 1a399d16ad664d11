// Package system holds the per-tick rules: turn order, map indexing,
// visibility, monster AI, movement, items, melee and damage.
package system

import (
	"math/rand"

	"mistery/internal/combatlog"
	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/gamemap"
	"mistery/internal/geom"

	"github.com/sirupsen/logrus"
)

// State is everything a system may read or write during a tick.
type State struct {
	World *ecs.World
	C     *component.Stores
	Map   *gamemap.WorldMap
	Log   *combatlog.Log
	Rand  *rand.Rand

	// PlayerPos mirrors the player's Position; ResolveMoves keeps it current.
	PlayerPos geom.Point

	Logger logrus.FieldLogger
}

// PlayerID returns the first live entity tagged Player.
func (s *State) PlayerID() (ecs.EntityID, bool) {
	ids := s.C.Player.Entities()
	if len(ids) == 0 {
		return ecs.NilEntity, false
	}
	return ids[0], true
}

func (s *State) logger(system string) logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger().WithField("system", system)
	}
	return s.Logger.WithField("system", system)
}
