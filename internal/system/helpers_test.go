package system

import (
	"math/rand"

	"mistery/internal/combatlog"
	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/gamemap"
	"mistery/internal/geom"

	"github.com/sirupsen/logrus/hooks/test"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h uint32) *gamemap.WorldMap {
	m := gamemap.New(w, h)
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			m.SetTile(geom.Pt(x, y), gamemap.TileFloor)
		}
	}
	m.ReloadBlocked()
	return m
}

// newState builds a State over a 20×20 open map with no entities.
func newState() *State {
	w := ecs.NewWorld()
	logger, _ := test.NewNullLogger()
	return &State{
		World:  w,
		C:      component.NewStores(w),
		Map:    openMap(20, 20),
		Log:    combatlog.New(nil),
		Rand:   rand.New(rand.NewSource(1)),
		Logger: logger,
	}
}

// addPlayer places a faction-0 player with 1 ap at p.
func addPlayer(s *State, p geom.Point) ecs.EntityID {
	id := s.World.CreateEntity()
	s.C.Player.Insert(id, component.Player{})
	s.C.Name.Insert(id, component.Name{Name: "Hero"})
	s.C.Position.Insert(id, component.Position{Point: p})
	s.C.BlocksTile.Insert(id, component.BlocksTile{})
	s.C.Faction.Insert(id, component.Faction{ID: 0})
	s.C.ActsOnTurns.Insert(id, component.ActsOnTurns{AP: 1})
	s.C.Viewshed.Insert(id, component.NewViewshed(8))
	s.C.CombatStats.Insert(id, component.CombatStats{HP: 30, MaxHP: 30, Defense: 2, Power: 5})
	s.PlayerPos = p
	return id
}

// addMonster places a faction-1 monster with no ap at p.
func addMonster(s *State, name string, p geom.Point) ecs.EntityID {
	id := s.World.CreateEntity()
	s.C.Name.Insert(id, component.Name{Name: name})
	s.C.Position.Insert(id, component.Position{Point: p})
	s.C.BlocksTile.Insert(id, component.BlocksTile{})
	s.C.Faction.Insert(id, component.Faction{ID: 1})
	s.C.ActsOnTurns.Insert(id, component.ActsOnTurns{})
	s.C.Viewshed.Insert(id, component.NewViewshed(8))
	s.C.CombatStats.Insert(id, component.CombatStats{HP: 16, MaxHP: 16, Defense: 1, Power: 4})
	return id
}

// addPotion places a consumable healing potion at p.
func addPotion(s *State, p geom.Point, amount int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.C.Name.Insert(id, component.Name{Name: "Health Potion"})
	s.C.Position.Insert(id, component.Position{Point: p})
	s.C.Pickable.Insert(id, component.Pickable{})
	s.C.Consumable.Insert(id, component.Consumable{})
	s.C.HealsUser.Insert(id, component.HealsUser{Amount: amount})
	return id
}

// give puts item straight into owner's backpack.
func give(s *State, owner, item ecs.EntityID) {
	s.C.Position.Remove(item)
	s.C.Hidden.Insert(item, component.Hidden{})
	s.C.InBackpack.Insert(item, component.InBackpack{Owner: owner})
}
