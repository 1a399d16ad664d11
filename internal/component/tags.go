package component

// Player marks the player-controlled entity.
type Player struct{}

// BlocksTile marks an entity that occupies its tile (blocks movement).
type BlocksTile struct{}

// Hidden suppresses drawing of an entity: it is out of the player's view
// or tucked away in a backpack.
type Hidden struct{}

// Name is the display name used in the combat log.
type Name struct {
	Name string
}
