package game

import (
	"mistery/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Command is what a key press asks of the frontend.
type Command uint8

const (
	CmdNone Command = iota
	CmdAct          // forward an Action to the engine
	CmdUseMenu
	CmdDropMenu
	CmdCancel
	CmdQuit
)

// keyToCommand maps a tcell key event to a frontend command. For CmdAct
// the returned Action says which.
func keyToCommand(ev *tcell.EventKey) (Command, system.Action) {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdAct, system.ActionNorth
	case tcell.KeyDown:
		return CmdAct, system.ActionSouth
	case tcell.KeyRight:
		return CmdAct, system.ActionEast
	case tcell.KeyLeft:
		return CmdAct, system.ActionWest
	case tcell.KeyEscape:
		return CmdCancel, 0
	case tcell.KeyCtrlC:
		return CmdQuit, 0
	}

	switch ev.Rune() {
	case 'k', 'K':
		return CmdAct, system.ActionNorth
	case 'j', 'J':
		return CmdAct, system.ActionSouth
	case 'l', 'L':
		return CmdAct, system.ActionEast
	case 'h', 'H':
		return CmdAct, system.ActionWest
	case 'y', 'Y':
		return CmdAct, system.ActionNorthWest
	case 'u', 'U':
		return CmdAct, system.ActionNorthEast
	case 'b', 'B':
		return CmdAct, system.ActionSouthWest
	case 'n', 'N':
		return CmdAct, system.ActionSouthEast
	case '.', ' ':
		return CmdAct, system.ActionWait
	case ',', 'g', 'G':
		return CmdAct, system.ActionPickUp
	case 'i', 'I':
		return CmdUseMenu, 0
	case 'd', 'D':
		return CmdDropMenu, 0
	case 'q', 'Q':
		return CmdQuit, 0
	}
	return CmdNone, 0
}

// menuIndex turns 'a'..'z' into a zero-based inventory slot.
func menuIndex(ev *tcell.EventKey) (int, bool) {
	r := ev.Rune()
	if ev.Key() != tcell.KeyRune || r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}
