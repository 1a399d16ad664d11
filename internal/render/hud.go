package render

import (
	"fmt"

	"mistery/internal/component"
	"mistery/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and the tail of the combat log below the map.
func (r *Renderer) DrawHUD(c *component.Stores, player ecs.EntityID, turn string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: -"
	hpColor := tcell.ColorWhite
	if st, ok := c.CombatStats.Get(player); ok {
		hpText = fmt.Sprintf("HP: %d/%d", st.HP, st.MaxHP)
		if st.HP*4 <= st.MaxHP {
			hpColor = tcell.ColorRed
		}
	}
	r.drawText(0, hudY+1, hpText, tcell.StyleDefault.Foreground(hpColor))
	r.drawText(runewidth.StringWidth(hpText)+2, hudY+1, "Turn: "+turn,
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	for i, msg := range messages {
		if hudY+2+i >= screenH {
			break
		}
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

// DrawInventory overlays a lettered item list in the top-left corner.
func (r *Renderer) DrawInventory(c *component.Stores, title string, items []ecs.EntityID) {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, title)
	if len(items) == 0 {
		lines = append(lines, "  (empty)")
	}
	for i, id := range items {
		if i >= 26 {
			break
		}
		lines = append(lines, fmt.Sprintf("(%c) %s", 'a'+i, c.NameOf(id)))
	}
	lines = append(lines, "ESC to cancel")

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	box := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	for row, l := range lines {
		for x := 0; x < width+2; x++ {
			r.screen.SetContent(x, row, ' ', nil, box)
		}
		r.drawText(1, row, l, box)
	}
}

// DrawDeath replaces the map with the final screen.
func (r *Renderer) DrawDeath(messages []string) {
	r.screen.Clear()
	r.drawText(2, 1, "You are dead.", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	for i, msg := range messages {
		r.drawText(2, 3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
	r.drawText(2, 4+len(messages), "Press any key to leave.", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }
