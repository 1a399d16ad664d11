package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Walkable reports whether entities can stand on the tile.
func (k TileKind) Walkable() bool {
	return k == TileFloor
}

// Opaque reports whether the tile blocks line of sight.
func (k TileKind) Opaque() bool {
	return k == TileWall
}

func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// tileState is the per-cell state. blocked is a cache rebuilt every tick
// from the tile kind plus the entities standing on it.
type tileState struct {
	kind     TileKind
	revealed bool
	visible  bool
	blocked  bool
}
