// Package render draws a level and its HUD onto a tcell screen.
package render

import (
	"sort"

	"mistery/internal/component"
	"mistery/internal/ecs"
	"mistery/internal/gamemap"
	"mistery/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved under the map.
const HUDHeight = 7

type Renderer struct {
	screen tcell.Screen
	camera *Camera
	tiles  TileGlyphs
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(0, h-HUDHeight)),
		tiles:  DefaultTiles,
	}
}

// Resize refits the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-HUDHeight)
}

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p geom.Point) {
	r.camera.Center(int(p.X), int(p.Y))
}

// DrawFrame clears the screen and draws revealed tiles plus every shown
// entity standing on a visible tile.
func (r *Renderer) DrawFrame(m *gamemap.WorldMap, c *component.Stores) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawEntities(m, c)
}

func (r *Renderer) drawMap(m *gamemap.WorldMap) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := uint32(0); y < m.Height(); y++ {
		for x := uint32(0); x < m.Width(); x++ {
			p := geom.Pt(x, y)
			revealed, _ := m.Revealed(p)
			if !revealed {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(int(x), int(y))
			if !onScreen {
				continue
			}
			kind, _ := m.Tile(p)
			visible, _ := m.Visible(p)
			r.putGlyph(sx, sy, r.tileGlyph(kind, visible), style)
		}
	}
}

func (r *Renderer) tileGlyph(kind gamemap.TileKind, visible bool) string {
	switch {
	case kind == gamemap.TileWall && visible:
		return r.tiles.Wall
	case kind == gamemap.TileWall:
		return r.tiles.DimWall
	case visible:
		return r.tiles.Floor
	default:
		return r.tiles.DimFloor
	}
}

type drawable struct {
	id   ecs.EntityID
	pos  geom.Point
	rend component.Renderable
}

func (r *Renderer) drawEntities(m *gamemap.WorldMap, c *component.Stores) {
	var list []drawable
	c.Renderable.Each(func(id ecs.EntityID, rend *component.Renderable) {
		if c.Hidden.Has(id) {
			return
		}
		pos, ok := c.Position.Get(id)
		if !ok {
			return
		}
		if visible, _ := m.Visible(pos.Point); !visible {
			return
		}
		list = append(list, drawable{id: id, pos: pos.Point, rend: *rend})
	})

	// Lower orders first so the player ends up on top.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].rend.Order < list[j].rend.Order
	})

	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(int(d.pos.X), int(d.pos.Y))
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(d.rend.Color).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, d.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		// Map cells are two columns wide.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
