package component

import "mistery/internal/ecs"

// InBackpack marks an item as carried by Owner. An item in a backpack has
// no Position.
type InBackpack struct {
	Owner ecs.EntityID
}

type WantsToPickUp struct {
	Item ecs.EntityID
}

type WantsToUseItem struct {
	Item ecs.EntityID
}

type WantsToDropItem struct {
	Item ecs.EntityID
}
