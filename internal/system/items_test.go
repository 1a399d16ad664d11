package system

import (
	"testing"

	"mistery/internal/component"
	"mistery/internal/geom"
)

func TestPickUpMovesItemToBackpack(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	potion := addPotion(s, geom.Pt(3, 3), 8)

	s.C.WantsToPickUp.Insert(p, component.WantsToPickUp{Item: potion})
	ResolvePickUps(s)

	if s.C.Position.Has(potion) {
		t.Error("picked up item should lose its Position")
	}
	if !s.C.Hidden.Has(potion) {
		t.Error("picked up item should be hidden")
	}
	if bp, ok := s.C.InBackpack.Get(potion); !ok || bp.Owner != p {
		t.Errorf("expected item in player's backpack, got %+v ok=%v", bp, ok)
	}
	if got := s.Log.Lines(); len(got) != 1 || got[0] != "Hero picks up a Health Potion." {
		t.Errorf("unexpected log %v", got)
	}
	if items := Backpack(s, p); len(items) != 1 || items[0] != potion {
		t.Errorf("Backpack = %v", items)
	}
}

func TestPickUpSameItemTwice(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	orc := addMonster(s, "Orc", geom.Pt(3, 4))
	potion := addPotion(s, geom.Pt(3, 3), 8)

	s.C.WantsToPickUp.Insert(p, component.WantsToPickUp{Item: potion})
	s.C.WantsToPickUp.Insert(orc, component.WantsToPickUp{Item: potion})
	ResolvePickUps(s)

	if bp, _ := s.C.InBackpack.Get(potion); bp.Owner != p {
		t.Fatalf("first picker should keep the item, owner %d", bp.Owner)
	}
	if s.Log.Len() != 1 {
		t.Errorf("expected one pickup line, got %v", s.Log.Lines())
	}
}

func TestUseHealingIsCapped(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	*s.C.CombatStats.Ptr(p) = component.CombatStats{HP: 10, MaxHP: 16, Defense: 2, Power: 5}
	potion := addPotion(s, geom.Pt(3, 3), 8)
	give(s, p, potion)

	s.C.WantsToUseItem.Insert(p, component.WantsToUseItem{Item: potion})
	ResolveItemUse(s)

	if st, _ := s.C.CombatStats.Get(p); st.HP != 16 {
		t.Fatalf("expected hp 16, got %d", st.HP)
	}
	if s.World.Alive(potion) {
		t.Error("consumable should be destroyed after use")
	}
	if got := s.Log.Lines(); len(got) != 1 || got[0] != "Hero uses the Health Potion, healing 6 hp." {
		t.Errorf("unexpected log %v", got)
	}
}

func TestUseNonConsumableIsKept(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	s.C.CombatStats.Ptr(p).HP = 20
	potion := addPotion(s, geom.Pt(3, 3), 4)
	s.C.Consumable.Remove(potion)
	give(s, p, potion)

	s.C.WantsToUseItem.Insert(p, component.WantsToUseItem{Item: potion})
	ResolveItemUse(s)

	if st, _ := s.C.CombatStats.Get(p); st.HP != 24 {
		t.Fatalf("expected hp 24, got %d", st.HP)
	}
	if !s.World.Alive(potion) {
		t.Error("non-consumable item should survive use")
	}
}

func TestUseItemNotOwned(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	potion := addPotion(s, geom.Pt(3, 3), 8)

	s.C.WantsToUseItem.Insert(p, component.WantsToUseItem{Item: potion})
	ResolveItemUse(s)
	if !s.World.Alive(potion) || s.Log.Len() != 0 {
		t.Fatal("items on the floor cannot be used")
	}
}

func TestUseRangedDamageItem(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	near := addMonster(s, "Goblin", geom.Pt(6, 3))
	far := addMonster(s, "Orc", geom.Pt(3, 12))
	UpdateVisibility(s)

	scroll := s.World.CreateEntity()
	s.C.Name.Insert(scroll, component.Name{Name: "Magic Missile Scroll"})
	s.C.Consumable.Insert(scroll, component.Consumable{})
	s.C.Ranged.Insert(scroll, component.Ranged{Range: 6})
	s.C.InflictsDamage.Insert(scroll, component.InflictsDamage{Damage: 8})
	give(s, p, scroll)

	s.C.WantsToUseItem.Insert(p, component.WantsToUseItem{Item: scroll})
	ResolveItemUse(s)

	if sd, _ := s.C.SuffersDamage.Get(near); sd.Damage != 8 {
		t.Fatalf("nearest hostile should take 8 damage, got %d", sd.Damage)
	}
	if s.C.SuffersDamage.Has(far) {
		t.Error("only one target should be hit")
	}
	if s.World.Alive(scroll) {
		t.Error("scroll should be consumed")
	}
}

func TestUseRangedWithoutTarget(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	addMonster(s, "Orc", geom.Pt(3, 18))
	UpdateVisibility(s)

	scroll := s.World.CreateEntity()
	s.C.Name.Insert(scroll, component.Name{Name: "Magic Missile Scroll"})
	s.C.Consumable.Insert(scroll, component.Consumable{})
	s.C.Ranged.Insert(scroll, component.Ranged{Range: 6})
	s.C.InflictsDamage.Insert(scroll, component.InflictsDamage{Damage: 8})
	give(s, p, scroll)

	s.C.WantsToUseItem.Insert(p, component.WantsToUseItem{Item: scroll})
	ResolveItemUse(s)

	if !s.World.Alive(scroll) {
		t.Error("an unused scroll should be kept")
	}
	if s.C.SuffersDamage.Len() != 0 {
		t.Error("no damage should be queued")
	}
}

func TestDropPutsItemUnderDropper(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	potion := addPotion(s, geom.Pt(3, 3), 8)
	give(s, p, potion)
	s.C.Position.Ptr(p).Point = geom.Pt(5, 6)

	s.C.WantsToDropItem.Insert(p, component.WantsToDropItem{Item: potion})
	ResolveDrops(s)

	if pos, ok := s.C.Position.Get(potion); !ok || pos.Point != geom.Pt(5, 6) {
		t.Fatalf("expected item at (5,6), got %v ok=%v", pos.Point, ok)
	}
	if s.C.InBackpack.Has(potion) || s.C.Hidden.Has(potion) {
		t.Error("dropped item should leave the backpack and be shown")
	}
	if got := s.Log.Lines(); len(got) != 1 || got[0] != "Hero drops the Health Potion." {
		t.Errorf("unexpected log %v", got)
	}
}
