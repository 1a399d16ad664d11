package component

import (
	"mistery/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// ActsOnTurns holds the action points an entity may spend in its half of
// the turn cycle.
type ActsOnTurns struct {
	AP uint32
}

func (a *ActsOnTurns) CanAct() bool { return a.AP > 0 }

// Perform spends one action point. It reports false when none are left.
func (a *ActsOnTurns) Perform() bool {
	if a.AP == 0 {
		return false
	}
	a.AP--
	return true
}

func (a *ActsOnTurns) Refresh() { a.AP = 1 }

// Viewshed is the set of tiles an entity can currently see. Visible is
// stale while Dirty is set.
type Viewshed struct {
	Range   uint32
	Dirty   bool
	Visible mapset.Set[geom.Point]
}

// NewViewshed returns an empty, dirty viewshed of the given range.
func NewViewshed(r uint32) Viewshed {
	return Viewshed{Range: r, Dirty: true, Visible: mapset.New[geom.Point]()}
}
