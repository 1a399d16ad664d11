package component

// Pickable marks an item that can be picked up.
type Pickable struct{}

// Consumable items are destroyed after one use.
type Consumable struct{}

// HealsUser restores up to Amount hp when used.
type HealsUser struct {
	Amount int
}

// Ranged items act on a target up to Range tiles away.
type Ranged struct {
	Range uint32
}

// InflictsDamage items deal Damage to their target.
type InflictsDamage struct {
	Damage uint32
}
