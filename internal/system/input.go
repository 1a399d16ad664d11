package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"

	"github.com/zyedidia/generic/mapset"
)

// Action is a named input the simulation understands.
type Action uint8

const (
	ActionNorth Action = iota
	ActionSouth
	ActionEast
	ActionWest
	ActionNorthEast
	ActionNorthWest
	ActionSouthEast
	ActionSouthWest
	ActionWait
	ActionPickUp

	actionCount
)

// delta is the step of a direction action; north is +y.
func (a Action) delta() (dx, dy int, ok bool) {
	switch a {
	case ActionNorth:
		return 0, 1, true
	case ActionSouth:
		return 0, -1, true
	case ActionEast:
		return 1, 0, true
	case ActionWest:
		return -1, 0, true
	case ActionNorthEast:
		return 1, 1, true
	case ActionNorthWest:
		return -1, 1, true
	case ActionSouthEast:
		return 1, -1, true
	case ActionSouthWest:
		return -1, -1, true
	}
	return 0, 0, false
}

// InputDispatcher turns the set of held actions into player intents. An
// action fires only on the tick it goes from released to held.
type InputDispatcher struct {
	prev, cur mapset.Set[Action]
}

func NewInputDispatcher() *InputDispatcher {
	return &InputDispatcher{prev: mapset.New[Action](), cur: mapset.New[Action]()}
}

// Sample records the actions held this tick.
func (d *InputDispatcher) Sample(held []Action) {
	d.prev, d.cur = d.cur, d.prev
	d.cur.Clear()
	for _, a := range held {
		d.cur.Put(a)
	}
}

// Pressed returns the actions held now but not on the previous sample.
func (d *InputDispatcher) Pressed() []Action {
	var out []Action
	for a := Action(0); a < actionCount; a++ {
		if d.cur.Has(a) && !d.prev.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Dispatch converts this tick's presses into an intent for the player.
// Direction presses are summed into one step. The player's action point
// is spent only when an intent results; it reports whether one did.
func (d *InputDispatcher) Dispatch(s *State) bool {
	player, turns, ok := actingPlayer(s)
	if !ok {
		return false
	}
	pressed := d.Pressed()

	dx, dy, moving := 0, 0, false
	for _, a := range pressed {
		if x, y, ok := a.delta(); ok {
			dx += x
			dy += y
			moving = true
		}
	}
	if moving {
		if dx == 0 && dy == 0 {
			return false
		}
		dest, ok := s.PlayerPos.TryTranslate(dx, dy)
		if !ok {
			return false
		}
		turns.Perform()
		s.C.WantsToMove.Insert(player, component.WantsToMove{To: dest})
		return true
	}

	for _, a := range pressed {
		switch a {
		case ActionPickUp:
			item, ok := itemAt(s)
			if !ok {
				s.Log.Push("There is nothing here to pick up.")
				return false
			}
			turns.Perform()
			s.C.WantsToPickUp.Insert(player, component.WantsToPickUp{Item: item})
			return true
		case ActionWait:
			turns.Perform()
			return true
		}
	}
	return false
}

// RequestUse queues the player using item, spending the player's turn.
func (d *InputDispatcher) RequestUse(s *State, item ecs.EntityID) bool {
	player, turns, ok := actingPlayer(s)
	if !ok {
		return false
	}
	turns.Perform()
	s.C.WantsToUseItem.Insert(player, component.WantsToUseItem{Item: item})
	return true
}

// RequestDrop queues the player dropping item, spending the player's turn.
func (d *InputDispatcher) RequestDrop(s *State, item ecs.EntityID) bool {
	player, turns, ok := actingPlayer(s)
	if !ok {
		return false
	}
	turns.Perform()
	s.C.WantsToDropItem.Insert(player, component.WantsToDropItem{Item: item})
	return true
}

func actingPlayer(s *State) (ecs.EntityID, *component.ActsOnTurns, bool) {
	player, ok := s.PlayerID()
	if !ok {
		return ecs.NilEntity, nil, false
	}
	turns := s.C.ActsOnTurns.Ptr(player)
	if turns == nil || !turns.CanAct() {
		return ecs.NilEntity, nil, false
	}
	return player, turns, true
}

// itemAt finds a pickable item on the player's tile.
func itemAt(s *State) (ecs.EntityID, bool) {
	for _, id := range s.C.Pickable.Entities() {
		if pos, ok := s.C.Position.Get(id); ok && pos.Point == s.PlayerPos {
			return id, true
		}
	}
	return ecs.NilEntity, false
}
