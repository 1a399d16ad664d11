package render

// TileGlyphs holds the emoji used to draw terrain. Emoji carry their own
// colors, so lit and remembered tiles use different glyphs instead of a
// tint.
type TileGlyphs struct {
	Wall     string // visible wall
	Floor    string // visible floor
	DimWall  string // revealed but out of view
	DimFloor string // revealed but out of view
}

// DefaultTiles is the stone dungeon set.
var DefaultTiles = TileGlyphs{
	Wall:     "🧱",
	Floor:    "🟫",
	DimWall:  "🌑",
	DimFloor: "🔲",
}
