package system

import (
	"testing"

	"mistery/internal/geom"
)

func TestInputIsEdgeTriggered(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	d := NewInputDispatcher()

	d.Sample([]Action{ActionNorth})
	if !d.Dispatch(s) {
		t.Fatal("fresh press should dispatch")
	}
	mv, ok := s.C.WantsToMove.Get(p)
	if !ok || mv.To != geom.Pt(3, 4) {
		t.Fatalf("expected move to (3,4), got %+v ok=%v", mv, ok)
	}
	if a, _ := s.C.ActsOnTurns.Get(p); a.CanAct() {
		t.Fatal("dispatching a move should spend the point")
	}

	s.C.WantsToMove.Clear()
	s.C.ActsOnTurns.Ptr(p).Refresh()
	d.Sample([]Action{ActionNorth})
	if d.Dispatch(s) || s.C.WantsToMove.Has(p) {
		t.Fatal("holding a key must not repeat the action")
	}

	d.Sample(nil)
	d.Sample([]Action{ActionNorth})
	if !d.Dispatch(s) {
		t.Fatal("release then press should fire again")
	}
}

func TestInputSumsDirections(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	d := NewInputDispatcher()

	d.Sample([]Action{ActionNorth, ActionEast})
	d.Dispatch(s)
	if mv, _ := s.C.WantsToMove.Get(p); mv.To != geom.Pt(4, 4) {
		t.Fatalf("north+east should step to (4,4), got %v", mv.To)
	}
}

func TestInputOpposingDirectionsCancel(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	d := NewInputDispatcher()

	d.Sample([]Action{ActionNorth, ActionSouth})
	if d.Dispatch(s) {
		t.Fatal("opposite directions should cancel out")
	}
	if a, _ := s.C.ActsOnTurns.Get(p); !a.CanAct() {
		t.Fatal("no intent means no point spent")
	}
}

func TestInputOffGridMoveIgnored(t *testing.T) {
	s := newState()
	addPlayer(s, geom.Pt(0, 0))
	d := NewInputDispatcher()
	d.Sample([]Action{ActionSouthWest})
	if d.Dispatch(s) {
		t.Fatal("a step below the origin should be ignored")
	}
}

func TestInputPickUp(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	d := NewInputDispatcher()

	d.Sample([]Action{ActionPickUp})
	if d.Dispatch(s) {
		t.Fatal("nothing to pick up should not spend a turn")
	}
	if got := s.Log.Lines(); len(got) != 1 {
		t.Fatalf("expected a log line, got %v", got)
	}

	potion := addPotion(s, geom.Pt(3, 3), 8)
	d.Sample(nil)
	d.Sample([]Action{ActionPickUp})
	if !d.Dispatch(s) {
		t.Fatal("expected pickup to dispatch")
	}
	if w, ok := s.C.WantsToPickUp.Get(p); !ok || w.Item != potion {
		t.Fatalf("expected pickup of %d, got %+v", potion, w)
	}
}

func TestInputWaitSpendsTurn(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	d := NewInputDispatcher()
	d.Sample([]Action{ActionWait})
	if !d.Dispatch(s) {
		t.Fatal("wait should dispatch")
	}
	if a, _ := s.C.ActsOnTurns.Get(p); a.CanAct() {
		t.Fatal("wait should spend the point")
	}
}

func TestInputWithoutPointsIgnored(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	s.C.ActsOnTurns.Ptr(p).AP = 0
	d := NewInputDispatcher()
	d.Sample([]Action{ActionNorth})
	if d.Dispatch(s) || s.C.WantsToMove.Has(p) {
		t.Fatal("player without points cannot act")
	}
}

func TestRequestUseAndDrop(t *testing.T) {
	s := newState()
	p := addPlayer(s, geom.Pt(3, 3))
	potion := addPotion(s, geom.Pt(3, 3), 8)
	give(s, p, potion)
	d := NewInputDispatcher()

	if !d.RequestUse(s, potion) {
		t.Fatal("RequestUse should succeed with a point")
	}
	if w, ok := s.C.WantsToUseItem.Get(p); !ok || w.Item != potion {
		t.Fatalf("expected use intent, got %+v", w)
	}
	if d.RequestDrop(s, potion) {
		t.Fatal("second request in the same turn should be refused")
	}
	s.C.ActsOnTurns.Ptr(p).Refresh()
	if !d.RequestDrop(s, potion) {
		t.Fatal("RequestDrop should succeed with a point")
	}
	if w, ok := s.C.WantsToDropItem.Get(p); !ok || w.Item != potion {
		t.Fatalf("expected drop intent, got %+v", w)
	}
}
