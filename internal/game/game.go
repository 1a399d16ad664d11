// Package game drives an Engine from a tcell screen: it samples keys,
// ticks the simulation on a fixed interval and draws each frame.
package game

import (
	"context"
	"time"

	"mistery/internal/config"
	"mistery/internal/render"
	"mistery/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Mode tracks the frontend state machine.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeUseMenu
	ModeDropMenu
	ModeDead
)

// maxPending bounds buffered key presses so a held key cannot queue up
// a long run of moves.
const maxPending = 4

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	engine   *Engine
	cfg      *config.Config
	logger   logrus.FieldLogger
	mode     Mode
	pending  []system.Action
}

// New wraps an initialized screen around engine.
func New(screen tcell.Screen, engine *Engine, cfg *config.Config, logger logrus.FieldLogger) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		engine:   engine,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run owns the screen until the player quits, dies and dismisses the
// final screen, or ctx is cancelled. The screen is finalized on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.Game.TickInterval)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.handleEvent(ev) {
				g.logger.Info("player quit")
				return nil
			}
		case <-ticker.C:
			g.step(ctx)
		}
		g.draw()
	}
}

// step advances the engine by one tick. At most one buffered press is
// released per tick, and only when the hero can act on it.
func (g *Game) step(ctx context.Context) {
	if g.mode == ModeDead {
		return
	}
	var held []system.Action
	if len(g.pending) > 0 && g.engine.AwaitingInput() {
		held = []system.Action{g.pending[0]}
		g.pending = g.pending[1:]
	}
	g.engine.Tick(ctx, held)

	if !g.engine.PlayerAlive() {
		g.mode = ModeDead
		g.pending = nil
		g.logger.WithField("turn", g.engine.Turn()).Info("player died")
	}
}

// handleEvent reacts to one terminal event. It returns false when the
// game should end.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch g.mode {
	case ModeDead:
		return false
	case ModeUseMenu, ModeDropMenu:
		g.handleMenuKey(ev)
		return true
	}

	cmd, action := keyToCommand(ev)
	switch cmd {
	case CmdAct:
		if len(g.pending) < maxPending {
			g.pending = append(g.pending, action)
		}
	case CmdUseMenu:
		g.mode = ModeUseMenu
	case CmdDropMenu:
		g.mode = ModeDropMenu
	case CmdQuit, CmdCancel:
		return false
	}
	return true
}

func (g *Game) handleMenuKey(ev *tcell.EventKey) {
	if cmd, _ := keyToCommand(ev); cmd == CmdCancel {
		g.mode = ModePlaying
		return
	}
	idx, ok := menuIndex(ev)
	if !ok {
		return
	}
	items := g.engine.Inventory()
	if idx >= len(items) {
		return
	}

	var queued bool
	if g.mode == ModeUseMenu {
		queued = g.engine.UseItem(items[idx])
	} else {
		queued = g.engine.DropItem(items[idx])
	}
	if !queued {
		g.engine.State.Log.Push("You must wait for your turn.")
	}
	g.mode = ModePlaying
}

func (g *Game) draw() {
	s := g.engine.State
	messages := s.Log.Recent(g.cfg.Game.LogLines)

	if g.mode == ModeDead {
		g.renderer.DrawDeath(messages)
		g.renderer.Show()
		return
	}

	g.renderer.CenterOn(s.PlayerPos)
	g.renderer.DrawFrame(s.Map, s.C)
	g.renderer.DrawHUD(s.C, g.engine.Player, g.engine.Turn().String(), messages)
	switch g.mode {
	case ModeUseMenu:
		g.renderer.DrawInventory(s.C, "Use which item?", g.engine.Inventory())
	case ModeDropMenu:
		g.renderer.DrawInventory(s.C, "Drop which item?", g.engine.Inventory())
	}
	g.renderer.Show()
}
