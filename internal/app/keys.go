package app

import (
	"nettui/internal/models"

	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionFaster
	actionSlower
	actionToggleVirtual
)

func (a action) String() string {
	switch a {
	case actionQuit:
		return "quit"
	case actionFaster:
		return "faster"
	case actionSlower:
		return "slower"
	case actionToggleVirtual:
		return "toggle-virtual"
	default:
		return "none"
	}
}

// actionFor maps a key press to what the monitor should do. Raw mode turns
// Ctrl-C into a plain key event, so it quits as well.
func actionFor(ev *tcell.EventKey) action {
	if ev.Key() == tcell.KeyCtrlC {
		return actionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return actionNone
	}

	switch ev.Rune() {
	case 'q':
		return actionQuit
	case '+', '=':
		return actionFaster
	case '-':
		return actionSlower
	case 'i':
		return actionToggleVirtual
	default:
		return actionNone
	}
}

// apply returns the configuration an adjustment key asks for
func (a action) apply(cfg models.Config) models.Config {
	switch a {
	case actionFaster:
		return cfg.Faster()
	case actionSlower:
		return cfg.Slower()
	case actionToggleVirtual:
		return cfg.ToggleVirtual()
	default:
		return cfg
	}
}
