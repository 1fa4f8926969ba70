// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesso57/livescroll/internal/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ScrollUp
	ScrollDown
	Top
	Bottom
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent. Unbound keys map to None.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Up):
		return Intent{Type: ScrollUp}
	case key.Matches(msg, keys.Down):
		return Intent{Type: ScrollDown}
	case key.Matches(msg, keys.Top):
		return Intent{Type: Top}
	case key.Matches(msg, keys.Bottom):
		return Intent{Type: Bottom}
	default:
		return Intent{Type: None}
	}
}
