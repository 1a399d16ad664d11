package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/geom"
)

// ResolvePickUps drains WantsToPickUp, moving each item from the map into
// the picker's backpack.
func ResolvePickUps(s *State) {
	for _, e := range s.C.WantsToPickUp.Drain() {
		item := e.Value.Item
		if _, ok := s.C.Position.Remove(item); !ok {
			continue
		}
		s.C.Hidden.Insert(item, component.Hidden{})
		s.C.InBackpack.Insert(item, component.InBackpack{Owner: e.ID})
		s.Log.Pushf("%s picks up a %s.", s.C.NameOf(e.ID), s.C.NameOf(item))
	}
}

// ResolveItemUse drains WantsToUseItem. Healing items restore hp up to
// max; ranged damage items hit the nearest visible hostile in range.
// Consumables are destroyed once they have taken effect.
func ResolveItemUse(s *State) {
	for _, e := range s.C.WantsToUseItem.Drain() {
		user, item := e.ID, e.Value.Item
		if bp, ok := s.C.InBackpack.Get(item); !ok || bp.Owner != user {
			continue
		}
		used := false

		if heal, ok := s.C.HealsUser.Get(item); ok {
			if stats := s.C.CombatStats.Ptr(user); stats != nil {
				before := stats.HP
				stats.HP = min(stats.MaxHP, stats.HP+heal.Amount)
				s.Log.Pushf("%s uses the %s, healing %d hp.", s.C.NameOf(user), s.C.NameOf(item), stats.HP-before)
				used = true
			}
		}

		if dmg, ok := s.C.InflictsDamage.Get(item); ok {
			if target, ok := rangedTarget(s, user, item); ok {
				s.Log.Pushf("%s uses the %s on %s, inflicting %d hp.", s.C.NameOf(user), s.C.NameOf(item), s.C.NameOf(target), dmg.Damage)
				s.C.AddDamage(target, dmg.Damage)
				used = true
			} else {
				s.Log.Pushf("%s has no target for the %s.", s.C.NameOf(user), s.C.NameOf(item))
			}
		}

		if used && s.C.Consumable.Has(item) {
			s.World.DestroyEntity(item)
		}
	}
}

// rangedTarget picks the nearest hostile combatant the user can see within
// the item's range, lowest id first on ties.
func rangedTarget(s *State, user, item ecs.EntityID) (ecs.EntityID, bool) {
	r, ok := s.C.Ranged.Get(item)
	if !ok {
		return ecs.NilEntity, false
	}
	faction, ok := s.C.Faction.Get(user)
	if !ok {
		return ecs.NilEntity, false
	}
	from, ok := s.C.Position.Get(user)
	if !ok {
		return ecs.NilEntity, false
	}
	vs, ok := s.C.Viewshed.Get(user)
	if !ok {
		return ecs.NilEntity, false
	}

	var (
		best     ecs.EntityID
		bestDist uint32
		found    bool
	)
	s.C.Faction.Each(func(id ecs.EntityID, f *component.Faction) {
		if id == user || f.ID == faction.ID || !s.C.CombatStats.Has(id) {
			return
		}
		pos, ok := s.C.Position.Get(id)
		if !ok || !vs.Visible.Has(pos.Point) {
			return
		}
		d := geom.Distance2D(from.Point, pos.Point)
		if d > r.Range {
			return
		}
		if !found || d < bestDist || (d == bestDist && id < best) {
			best, bestDist, found = id, d, true
		}
	})
	return best, found
}

// ResolveDrops drains WantsToDropItem, putting each item back on the map
// under the dropper.
func ResolveDrops(s *State) {
	for _, e := range s.C.WantsToDropItem.Drain() {
		item := e.Value.Item
		if bp, ok := s.C.InBackpack.Get(item); !ok || bp.Owner != e.ID {
			continue
		}
		pos, ok := s.C.Position.Get(e.ID)
		if !ok {
			continue
		}
		s.C.InBackpack.Remove(item)
		s.C.Position.Insert(item, component.Position{Point: pos.Point})
		s.C.Hidden.Remove(item)
		s.Log.Pushf("%s drops the %s.", s.C.NameOf(e.ID), s.C.NameOf(item))
	}
}

// Backpack lists the items owner is carrying, in pickup order.
func Backpack(s *State, owner ecs.EntityID) []ecs.EntityID {
	var items []ecs.EntityID
	s.C.InBackpack.Each(func(id ecs.EntityID, bp *component.InBackpack) {
		if bp.Owner == owner {
			items = append(items, id)
		}
	})
	return items
}
