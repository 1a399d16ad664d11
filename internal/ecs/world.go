package ecs

// World is the entity registry. Components live in typed Stores created
// with NewStore; the World tracks liveness and reclaims the components of
// destroyed entities on Maintain.
//
// Destruction is deferred: DestroyEntity hides the entity from every store
// immediately, so systems iterating a store can destroy entities safely,
// and storage is released on the next Maintain.
type World struct {
	nextID  EntityID
	alive   map[EntityID]bool
	doomed  []EntityID
	pending []pendingEntity
	stores  []storage
}

type pendingEntity struct {
	id    EntityID
	build func(id EntityID)
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]bool),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// CreateDeferred reserves an entity ID whose components are attached by
// build during the next Maintain. Until then the entity is not alive and is
// invisible to every store.
func (w *World) CreateDeferred(build func(id EntityID)) EntityID {
	id := w.nextID
	w.nextID++
	w.pending = append(w.pending, pendingEntity{id: id, build: build})
	return id
}

// DestroyEntity marks the entity dead. Its components stay allocated until
// Maintain but no store reports them any more.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	w.doomed = append(w.doomed, id)
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Maintain applies deferred work: components of destroyed entities are
// dropped from every store, then deferred entities are built.
func (w *World) Maintain() {
	for _, id := range w.doomed {
		for _, s := range w.stores {
			s.remove(id)
		}
		delete(w.alive, id)
	}
	w.doomed = w.doomed[:0]

	pending := w.pending
	w.pending = nil
	for _, p := range pending {
		w.alive[p.id] = true
		if p.build != nil {
			p.build(p.id)
		}
	}
}

func (w *World) register(s storage) {
	w.stores = append(w.stores, s)
}
