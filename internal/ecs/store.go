package ecs

// Store holds every component of type T, densely packed in insertion order
// with an ID-to-slot index. Only live entities are visible through it.
type Store[T any] struct {
	w        *World
	slots    map[EntityID]int
	entities []EntityID
	data     []T
}

// Entry pairs an entity with one of its components. Drain returns these.
type Entry[T any] struct {
	ID    EntityID
	Value T
}

// NewStore creates a store for T and registers it with w so destroyed
// entities are reclaimed.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{
		w:     w,
		slots: make(map[EntityID]int),
	}
	w.register(s)
	return s
}

// Insert attaches v to id, replacing any previous value.
func (s *Store[T]) Insert(id EntityID, v T) {
	if i, ok := s.slots[id]; ok {
		s.data[i] = v
		return
	}
	s.slots[id] = len(s.data)
	s.entities = append(s.entities, id)
	s.data = append(s.data, v)
}

// Get returns a copy of the component for id.
func (s *Store[T]) Get(id EntityID) (T, bool) {
	if p := s.Ptr(id); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the stored component, or nil. The pointer is
// valid until the next Insert or Remove on this store.
func (s *Store[T]) Ptr(id EntityID) *T {
	i, ok := s.slots[id]
	if !ok || !s.w.Alive(id) {
		return nil
	}
	return &s.data[i]
}

// Has reports whether id is alive and has a T.
func (s *Store[T]) Has(id EntityID) bool {
	return s.Ptr(id) != nil
}

// Remove detaches the component from id and returns it. Later entries keep
// their relative order.
func (s *Store[T]) Remove(id EntityID) (T, bool) {
	var zero T
	i, ok := s.slots[id]
	if !ok {
		return zero, false
	}
	v := s.data[i]
	copy(s.entities[i:], s.entities[i+1:])
	copy(s.data[i:], s.data[i+1:])
	s.entities = s.entities[:len(s.entities)-1]
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]
	delete(s.slots, id)
	for j := i; j < len(s.entities); j++ {
		s.slots[s.entities[j]] = j
	}
	return v, true
}

func (s *Store[T]) remove(id EntityID) { s.Remove(id) }

// Upsert gets the component for id, inserting the zero value first when
// absent, and passes it to fn for mutation.
func (s *Store[T]) Upsert(id EntityID, fn func(v *T)) {
	if _, ok := s.slots[id]; !ok {
		var zero T
		s.Insert(id, zero)
	}
	fn(&s.data[s.slots[id]])
}

// Len returns the number of live entities holding a T.
func (s *Store[T]) Len() int {
	n := 0
	for _, id := range s.entities {
		if s.w.Alive(id) {
			n++
		}
	}
	return n
}

// Entities returns a snapshot of the live entities holding a T, in
// insertion order.
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, 0, len(s.entities))
	for _, id := range s.entities {
		if s.w.Alive(id) {
			out = append(out, id)
		}
	}
	return out
}

// Each calls fn for every live entity holding a T. It iterates a snapshot,
// so fn may insert, remove or destroy entities; entities removed before
// their turn are skipped.
func (s *Store[T]) Each(fn func(id EntityID, v *T)) {
	for _, id := range s.Entities() {
		if p := s.Ptr(id); p != nil {
			fn(id, p)
		}
	}
}

// Drain removes every component from the store and returns the live ones
// in insertion order. Components of dead entities are discarded.
func (s *Store[T]) Drain() []Entry[T] {
	out := make([]Entry[T], 0, len(s.entities))
	for i, id := range s.entities {
		if s.w.Alive(id) {
			out = append(out, Entry[T]{ID: id, Value: s.data[i]})
		}
	}
	s.Clear()
	return out
}

// Clear drops every component in the store.
func (s *Store[T]) Clear() {
	s.slots = make(map[EntityID]int)
	s.entities = s.entities[:0]
	clear(s.data)
	s.data = s.data[:0]
}
