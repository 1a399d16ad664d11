package component

import "mistery/internal/ecs"

// Stores bundles one store per component type for a single World.
type Stores struct {
	Player      *ecs.Store[Player]
	Name        *ecs.Store[Name]
	Position    *ecs.Store[Position]
	Renderable  *ecs.Store[Renderable]
	Hidden      *ecs.Store[Hidden]
	BlocksTile  *ecs.Store[BlocksTile]
	Viewshed    *ecs.Store[Viewshed]
	ActsOnTurns *ecs.Store[ActsOnTurns]
	Faction     *ecs.Store[Faction]
	CombatStats *ecs.Store[CombatStats]

	Pickable       *ecs.Store[Pickable]
	Consumable     *ecs.Store[Consumable]
	HealsUser      *ecs.Store[HealsUser]
	Ranged         *ecs.Store[Ranged]
	InflictsDamage *ecs.Store[InflictsDamage]
	InBackpack     *ecs.Store[InBackpack]

	// Per-tick intents. Each is drained by exactly one system.
	WantsToMove      *ecs.Store[WantsToMove]
	WantsToPickUp    *ecs.Store[WantsToPickUp]
	WantsToUseItem   *ecs.Store[WantsToUseItem]
	WantsToDropItem  *ecs.Store[WantsToDropItem]
	TargetedForMelee *ecs.Store[TargetedForMelee]
	SuffersDamage    *ecs.Store[SuffersDamage]
}

// NewStores registers every component store with w.
func NewStores(w *ecs.World) *Stores {
	return &Stores{
		Player:      ecs.NewStore[Player](w),
		Name:        ecs.NewStore[Name](w),
		Position:    ecs.NewStore[Position](w),
		Renderable:  ecs.NewStore[Renderable](w),
		Hidden:      ecs.NewStore[Hidden](w),
		BlocksTile:  ecs.NewStore[BlocksTile](w),
		Viewshed:    ecs.NewStore[Viewshed](w),
		ActsOnTurns: ecs.NewStore[ActsOnTurns](w),
		Faction:     ecs.NewStore[Faction](w),
		CombatStats: ecs.NewStore[CombatStats](w),

		Pickable:       ecs.NewStore[Pickable](w),
		Consumable:     ecs.NewStore[Consumable](w),
		HealsUser:      ecs.NewStore[HealsUser](w),
		Ranged:         ecs.NewStore[Ranged](w),
		InflictsDamage: ecs.NewStore[InflictsDamage](w),
		InBackpack:     ecs.NewStore[InBackpack](w),

		WantsToMove:      ecs.NewStore[WantsToMove](w),
		WantsToPickUp:    ecs.NewStore[WantsToPickUp](w),
		WantsToUseItem:   ecs.NewStore[WantsToUseItem](w),
		WantsToDropItem:  ecs.NewStore[WantsToDropItem](w),
		TargetedForMelee: ecs.NewStore[TargetedForMelee](w),
		SuffersDamage:    ecs.NewStore[SuffersDamage](w),
	}
}

// NameOf returns the entity's display name, or "something".
func (c *Stores) NameOf(id ecs.EntityID) string {
	if n, ok := c.Name.Get(id); ok {
		return n.Name
	}
	return "something"
}

// Target registers attacker as swinging at defender this tick.
func (c *Stores) Target(defender, attacker ecs.EntityID) {
	c.TargetedForMelee.Upsert(defender, func(t *TargetedForMelee) {
		t.By = append(t.By, attacker)
	})
}

// AddDamage queues n damage against victim, on top of any already queued.
func (c *Stores) AddDamage(victim ecs.EntityID, n uint32) {
	c.SuffersDamage.Upsert(victim, func(d *SuffersDamage) {
		d.Damage += n
	})
}
