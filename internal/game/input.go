package game

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:   "none",
	ActionMoveN:  "north",
	ActionMoveS:  "south",
	ActionMoveE:  "east",
	ActionMoveW:  "west",
	ActionMoveNE: "northeast",
	ActionMoveNW: "northwest",
	ActionMoveSE: "southeast",
	ActionMoveSW: "southwest",
	ActionQuit:   "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// KeyToAction maps a tcell key event to a game action. Numpad keys reach
// the terminal as digit runes.
func KeyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		return runeToAction(ev.Rune())
	}
	return ActionNone
}

func runeToAction(r rune) Action {
	switch r {
	case 'k', 'K', '8':
		return ActionMoveN
	case 'j', 'J', '2':
		return ActionMoveS
	case 'l', 'L', '6':
		return ActionMoveE
	case 'h', 'H', '4':
		return ActionMoveW
	case 'y', 'Y', '9':
		return ActionMoveNE
	case 'u', 'U', '7':
		return ActionMoveNW
	case 'n', 'N', '3':
		return ActionMoveSE
	case 'b', 'B', '1':
		return ActionMoveSW
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// namedKeys maps remote key names (browser KeyboardEvent.key and code
// values) to actions.
var namedKeys = map[string]Action{
	"arrowup":    ActionMoveN,
	"up":         ActionMoveN,
	"arrowdown":  ActionMoveS,
	"down":       ActionMoveS,
	"arrowright": ActionMoveE,
	"right":      ActionMoveE,
	"arrowleft":  ActionMoveW,
	"left":       ActionMoveW,
	"numpad8":    ActionMoveN,
	"numpad2":    ActionMoveS,
	"numpad6":    ActionMoveE,
	"numpad4":    ActionMoveW,
	"numpad9":    ActionMoveNE,
	"numpad7":    ActionMoveNW,
	"numpad3":    ActionMoveSE,
	"numpad1":    ActionMoveSW,
	"escape":     ActionQuit,
}

// NamedKeyToAction maps a remote key name to a game action. Single
// characters follow the same table as the terminal.
func NamedKeyToAction(name string) Action {
	if r := []rune(name); len(r) == 1 {
		return runeToAction(r[0])
	}
	return namedKeys[strings.ToLower(name)]
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}

// IsMove reports whether a is one of the eight directional steps.
func (a Action) IsMove() bool {
	dx, dy := actionToDelta(a)
	return dx != 0 || dy != 0
}
