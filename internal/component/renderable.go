package component

import "github.com/gdamore/tcell/v2"

// Renderable is how an entity is drawn. Higher Order is drawn on top.
type Renderable struct {
	Glyph string
	Color tcell.Color
	Order int
}
