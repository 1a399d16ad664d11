// Package factory spawns fully-formed entities. Every constructor attaches
// the complete component set for its role in one call.
package factory

import (
	"math/rand"

	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/geom"

	"github.com/gdamore/tcell/v2"
)

const (
	PlayerFaction  uint32 = 0
	MonsterFaction uint32 = 1
)

// Render orders: items under monsters under the player.
const (
	orderItem    = 2
	orderMonster = 5
	orderPlayer  = 10
)

// NewPlayer creates the hero at p. The player starts with the action
// point so it moves first.
func NewPlayer(w *ecs.World, c *component.Stores, p geom.Point, sight uint32) ecs.EntityID {
	id := w.CreateEntity()
	c.Player.Insert(id, component.Player{})
	c.Name.Insert(id, component.Name{Name: "Hero"})
	c.Position.Insert(id, component.Position{Point: p})
	c.Renderable.Insert(id, component.Renderable{Glyph: "🧙", Color: tcell.ColorYellow, Order: orderPlayer})
	c.BlocksTile.Insert(id, component.BlocksTile{})
	c.Viewshed.Insert(id, component.NewViewshed(sight))
	c.ActsOnTurns.Insert(id, component.ActsOnTurns{AP: 1})
	c.Faction.Insert(id, component.Faction{ID: PlayerFaction})
	c.CombatStats.Insert(id, component.CombatStats{HP: 30, MaxHP: 30, Defense: 2, Power: 5})
	return id
}

func NewOrc(w *ecs.World, c *component.Stores, p geom.Point, sight uint32) ecs.EntityID {
	return newMonster(w, c, p, sight, "Orc", "👹")
}

func NewGoblin(w *ecs.World, c *component.Stores, p geom.Point, sight uint32) ecs.EntityID {
	return newMonster(w, c, p, sight, "Goblin", "👺")
}

// NewRandomMonster spawns an orc or a goblin with even odds.
func NewRandomMonster(w *ecs.World, c *component.Stores, p geom.Point, sight uint32, rng *rand.Rand) ecs.EntityID {
	if rng.Intn(2) == 0 {
		return NewOrc(w, c, p, sight)
	}
	return NewGoblin(w, c, p, sight)
}

// newMonster builds a hostile that starts hidden and without action
// points; the turn scheduler hands them out.
func newMonster(w *ecs.World, c *component.Stores, p geom.Point, sight uint32, name, glyph string) ecs.EntityID {
	id := w.CreateEntity()
	c.Name.Insert(id, component.Name{Name: name})
	c.Position.Insert(id, component.Position{Point: p})
	c.Renderable.Insert(id, component.Renderable{Glyph: glyph, Color: tcell.ColorRed, Order: orderMonster})
	c.Hidden.Insert(id, component.Hidden{})
	c.BlocksTile.Insert(id, component.BlocksTile{})
	c.Viewshed.Insert(id, component.NewViewshed(sight))
	c.ActsOnTurns.Insert(id, component.ActsOnTurns{})
	c.Faction.Insert(id, component.Faction{ID: MonsterFaction})
	c.CombatStats.Insert(id, component.CombatStats{HP: 16, MaxHP: 16, Defense: 1, Power: 4})
	return id
}

// NewHealthPotion is a one-shot heal for 8 hp.
func NewHealthPotion(w *ecs.World, c *component.Stores, p geom.Point) ecs.EntityID {
	id := newItem(w, c, p, "Health Potion", "🧪", tcell.ColorFuchsia)
	c.Consumable.Insert(id, component.Consumable{})
	c.HealsUser.Insert(id, component.HealsUser{Amount: 8})
	return id
}

// NewMagicMissileScroll deals 8 damage to the nearest visible hostile
// within 6 tiles, once.
func NewMagicMissileScroll(w *ecs.World, c *component.Stores, p geom.Point) ecs.EntityID {
	id := newItem(w, c, p, "Magic Missile Scroll", "📜", tcell.ColorAqua)
	c.Consumable.Insert(id, component.Consumable{})
	c.Ranged.Insert(id, component.Ranged{Range: 6})
	c.InflictsDamage.Insert(id, component.InflictsDamage{Damage: 8})
	return id
}

// NewRandomItem spawns a potion three times out of four, else a scroll.
func NewRandomItem(w *ecs.World, c *component.Stores, p geom.Point, rng *rand.Rand) ecs.EntityID {
	if rng.Intn(4) == 0 {
		return NewMagicMissileScroll(w, c, p)
	}
	return NewHealthPotion(w, c, p)
}

func newItem(w *ecs.World, c *component.Stores, p geom.Point, name, glyph string, color tcell.Color) ecs.EntityID {
	id := w.CreateEntity()
	c.Name.Insert(id, component.Name{Name: name})
	c.Position.Insert(id, component.Position{Point: p})
	c.Renderable.Insert(id, component.Renderable{Glyph: glyph, Color: color, Order: orderItem})
	c.Hidden.Insert(id, component.Hidden{})
	c.Pickable.Insert(id, component.Pickable{})
	return id
}
