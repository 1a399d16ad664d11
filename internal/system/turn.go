package system

import (
	"mistery/internal/component"
	"mistery/internal/ecs"
)

// Turn names the half of the turn cycle that may currently act.
type Turn uint8

const (
	TurnPlayer Turn = iota
	TurnOthers
)

func (t Turn) String() string {
	if t == TurnPlayer {
		return "player"
	}
	return "others"
}

// TurnScheduler alternates action points between the player group and
// everyone else. Gating is done by AP alone: a group can only act while
// its members hold points.
type TurnScheduler struct {
	current Turn
}

func NewTurnScheduler() *TurnScheduler {
	return &TurnScheduler{current: TurnPlayer}
}

func (t *TurnScheduler) Current() Turn { return t.current }

// Run flips to the other group once every member of the live group has
// spent its points, refreshing the other group's points as it does. An
// empty group never holds up the flip.
func (t *TurnScheduler) Run(s *State) {
	players := t.current == TurnPlayer
	if t.groupCanAct(s, players) {
		return
	}
	s.C.ActsOnTurns.Each(func(id ecs.EntityID, a *component.ActsOnTurns) {
		if s.C.Player.Has(id) != players {
			a.Refresh()
		}
	})
	if players {
		t.current = TurnOthers
	} else {
		t.current = TurnPlayer
	}
	s.logger("turn").WithField("turn", t.current).Debug("turn flipped")
}

func (t *TurnScheduler) groupCanAct(s *State, players bool) bool {
	for _, id := range s.C.ActsOnTurns.Entities() {
		if s.C.Player.Has(id) != players {
			continue
		}
		if a, ok := s.C.ActsOnTurns.Get(id); ok && a.CanAct() {
			return true
		}
	}
	return false
}
