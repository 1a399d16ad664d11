package ecs

// EntityID uniquely identifies an entity in the world. It carries no data;
// everything an entity is lives in the component stores keyed by its ID.
type EntityID uint32

// NilEntity is the zero value. No valid entity has this ID.
const NilEntity EntityID = 0

// storage is the type-erased view of a Store the World needs to reclaim
// components of destroyed entities.
type storage interface {
	remove(id EntityID)
}
