package component

import "mistery/internal/ecs"

type CombatStats struct {
	HP      int
	MaxHP   int
	Defense int
	Power   int
}

// Faction groups entities that never fight each other.
type Faction struct {
	ID uint32
}

// TargetedForMelee collects everyone swinging at the entity this tick.
type TargetedForMelee struct {
	By []ecs.EntityID
}

// SuffersDamage is damage waiting to be applied this tick.
type SuffersDamage struct {
	Damage uint32
}
