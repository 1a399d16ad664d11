package ecs

import "testing"

// stub components used only in tests
type testComp struct{ val int }

type otherComp struct{}

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if other := w.CreateEntity(); other == id {
		t.Fatal("expected distinct IDs")
	}
}

func TestInsertAndGet(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	id := w.CreateEntity()
	s.Insert(id, testComp{val: 42})

	c, ok := s.Get(id)
	if !ok {
		t.Fatal("expected component, got none")
	}
	if c.val != 42 {
		t.Fatalf("expected val=42, got %d", c.val)
	}

	s.Insert(id, testComp{val: 7})
	if c, _ := s.Get(id); c.val != 7 {
		t.Fatalf("Insert should replace; got %d", c.val)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 component after replace, got %d", s.Len())
	}
}

func TestPtrMutatesInPlace(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	id := w.CreateEntity()
	s.Insert(id, testComp{val: 1})
	s.Ptr(id).val = 9
	if c, _ := s.Get(id); c.val != 9 {
		t.Fatalf("expected mutation through Ptr, got %d", c.val)
	}
}

func TestDestroyEntityHidesThenReclaims(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	id := w.CreateEntity()
	s.Insert(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if s.Has(id) {
		t.Fatal("store should hide a destroyed entity immediately")
	}
	if len(s.entities) != 1 {
		t.Fatal("storage should be reclaimed only on Maintain")
	}
	w.Maintain()
	if len(s.entities) != 0 || len(s.slots) != 0 {
		t.Fatal("Maintain should drop the destroyed entity's components")
	}
}

func TestCreateDeferred(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	id := w.CreateDeferred(func(id EntityID) {
		s.Insert(id, testComp{val: 3})
	})
	if w.Alive(id) || s.Len() != 0 {
		t.Fatal("deferred entity must not exist before Maintain")
	}
	w.Maintain()
	if !w.Alive(id) {
		t.Fatal("deferred entity should be alive after Maintain")
	}
	if c, ok := s.Get(id); !ok || c.val != 3 {
		t.Fatalf("deferred build not applied; got %+v ok=%v", c, ok)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	var ids []EntityID
	for i := 0; i < 4; i++ {
		id := w.CreateEntity()
		s.Insert(id, testComp{val: i})
		ids = append(ids, id)
	}
	if _, ok := s.Remove(ids[1]); !ok {
		t.Fatal("Remove should report the removed component")
	}
	got := s.Entities()
	want := []EntityID{ids[0], ids[2], ids[3]}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if c, _ := s.Get(ids[3]); c.val != 3 {
		t.Fatalf("slot index broken after Remove; got %d", c.val)
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	s := NewStore[otherComp](w)
	id := w.CreateEntity()
	// Removing a component that was never added must not panic.
	if _, ok := s.Remove(id); ok {
		t.Fatal("Remove of a missing component should report false")
	}
}

func TestDrainEmptiesStoreInOrder(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	a := w.CreateEntity()
	b := w.CreateEntity()
	dead := w.CreateEntity()
	s.Insert(b, testComp{val: 2})
	s.Insert(dead, testComp{val: 99})
	s.Insert(a, testComp{val: 1})
	w.DestroyEntity(dead)

	got := s.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 live entries, got %d", len(got))
	}
	if got[0].ID != b || got[1].ID != a {
		t.Fatalf("expected insertion order [b a], got %+v", got)
	}
	if s.Len() != 0 || s.Has(a) {
		t.Fatal("store should be empty after Drain")
	}
}

func TestUpsert(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	id := w.CreateEntity()
	s.Upsert(id, func(c *testComp) { c.val += 3 })
	s.Upsert(id, func(c *testComp) { c.val += 4 })
	if c, _ := s.Get(id); c.val != 7 {
		t.Fatalf("expected accumulated 7, got %d", c.val)
	}
}

func TestEachAllowsMutation(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	var ids []EntityID
	for i := 0; i < 5; i++ {
		id := w.CreateEntity()
		s.Insert(id, testComp{val: i})
		ids = append(ids, id)
	}

	seen := 0
	s.Each(func(id EntityID, c *testComp) {
		seen++
		if c.val == 0 {
			// Remove a later entry and destroy another mid-iteration.
			s.Remove(ids[2])
			w.DestroyEntity(ids[3])
		}
	})
	if seen != 3 {
		t.Fatalf("expected 3 visits after mid-iteration removals, got %d", seen)
	}
}

func TestEntitiesExcludesDead(t *testing.T) {
	w := NewWorld()
	s := NewStore[testComp](w)
	alive := w.CreateEntity()
	s.Insert(alive, testComp{})

	dead := w.CreateEntity()
	s.Insert(dead, testComp{})
	w.DestroyEntity(dead)

	results := s.Entities()
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}
