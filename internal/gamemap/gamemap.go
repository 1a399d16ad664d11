// Package gamemap holds the dungeon tile grid and its per-tile flags.
package gamemap

import "mistery/internal/geom"

// adjacentDeltas lists neighbour offsets cardinals first. A* expands exits
// in this order, which keeps monster paths from zig-zagging diagonally;
// changing it changes which of several equal paths gets chosen.
var adjacentDeltas = [8][2]int{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
	{1, 1},
	{1, -1},
	{-1, -1},
	{-1, 1},
}

// WorldMap is one dungeon level: a width×height grid of tiles stored
// row-major plus the rooms the generator placed.
type WorldMap struct {
	width, height uint32
	rooms         []geom.Rect
	tiles         []tileState
}

// New creates a WorldMap filled with walls.
func New(width, height uint32) *WorldMap {
	m := &WorldMap{
		width:  width,
		height: height,
		tiles:  make([]tileState, int(width)*int(height)),
	}
	m.ReloadBlocked()
	return m
}

// Width returns the number of columns.
func (m *WorldMap) Width() uint32 { return m.width }

// Height returns the number of rows.
func (m *WorldMap) Height() uint32 { return m.height }

// Rooms returns the rooms in generation order.
func (m *WorldMap) Rooms() []geom.Rect { return m.rooms }

// AddRoom appends r to the room list.
func (m *WorldMap) AddRoom(r geom.Rect) { m.rooms = append(m.rooms, r) }

// InBounds reports whether p is on the map.
func (m *WorldMap) InBounds(p geom.Point) bool {
	return p.X < m.width && p.Y < m.height
}

func (m *WorldMap) at(p geom.Point) *tileState {
	if !m.InBounds(p) {
		return nil
	}
	return &m.tiles[int(p.Y)*int(m.width)+int(p.X)]
}

// Tile returns the kind of the tile at p.
func (m *WorldMap) Tile(p geom.Point) (TileKind, bool) {
	if t := m.at(p); t != nil {
		return t.kind, true
	}
	return TileWall, false
}

// SetTile changes the kind of the tile at p. It does not touch the
// blocked cache; call ReloadBlocked once carving is done.
func (m *WorldMap) SetTile(p geom.Point, k TileKind) bool {
	t := m.at(p)
	if t == nil {
		return false
	}
	t.kind = k
	return true
}

// Revealed reports whether the tile at p has ever been seen by the player.
func (m *WorldMap) Revealed(p geom.Point) (bool, bool) {
	if t := m.at(p); t != nil {
		return t.revealed, true
	}
	return false, false
}

// SetRevealed sets the revealed flag at p; false when p is off the map.
func (m *WorldMap) SetRevealed(p geom.Point, v bool) bool {
	t := m.at(p)
	if t == nil {
		return false
	}
	t.revealed = v
	return true
}

// Visible reports whether the tile at p is in the player's current view.
func (m *WorldMap) Visible(p geom.Point) (bool, bool) {
	if t := m.at(p); t != nil {
		return t.visible, true
	}
	return false, false
}

// SetVisible sets the visible flag at p; false when p is off the map.
func (m *WorldMap) SetVisible(p geom.Point, v bool) bool {
	t := m.at(p)
	if t == nil {
		return false
	}
	t.visible = v
	return true
}

// Blocked reports whether the tile at p is currently impassable.
func (m *WorldMap) Blocked(p geom.Point) (bool, bool) {
	if t := m.at(p); t != nil {
		return t.blocked, true
	}
	return false, false
}

// SetBlocked sets the blocked flag at p; false when p is off the map.
func (m *WorldMap) SetBlocked(p geom.Point, v bool) bool {
	t := m.at(p)
	if t == nil {
		return false
	}
	t.blocked = v
	return true
}

// IsBlocked is Blocked with off-map tiles treated as blocked.
func (m *WorldMap) IsBlocked(p geom.Point) bool {
	b, ok := m.Blocked(p)
	return !ok || b
}

// IsOpaque reports whether p blocks sight. Off-map tiles are opaque.
func (m *WorldMap) IsOpaque(p geom.Point) bool {
	k, ok := m.Tile(p)
	return !ok || k.Opaque()
}

// ReloadBlocked resets every tile's blocked flag from its kind alone.
func (m *WorldMap) ReloadBlocked() {
	for i := range m.tiles {
		m.tiles[i].blocked = !m.tiles[i].kind.Walkable()
	}
}

// ClearVisibility marks every tile as not visible.
func (m *WorldMap) ClearVisibility() {
	for i := range m.tiles {
		m.tiles[i].visible = false
	}
}

// AdjacentExits returns the unblocked neighbours of p among the eight
// surrounding tiles, cardinals first.
func (m *WorldMap) AdjacentExits(p geom.Point) []geom.Point {
	exits := make([]geom.Point, 0, len(adjacentDeltas))
	for _, d := range adjacentDeltas {
		q, ok := p.TryTranslate(d[0], d[1])
		if !ok {
			continue
		}
		if blocked, ok := m.Blocked(q); ok && !blocked {
			exits = append(exits, q)
		}
	}
	return exits
}
