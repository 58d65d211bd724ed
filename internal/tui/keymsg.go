package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rtnt-cli/internal/key"
)

// translateKey maps a terminal key event onto the app's key identifier.
// Returns false for events the core has no representation for (function keys,
// modified keys, multi-rune paste); the caller decides what to do with those.
func translateKey(msg tea.KeyMsg) (key.Key, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return key.Enter, true
	case tea.KeyEsc:
		return key.Esc, true
	case tea.KeyUp:
		return key.Up, true
	case tea.KeyDown:
		return key.Down, true
	case tea.KeyLeft:
		return key.Left, true
	case tea.KeyRight:
		return key.Right, true
	case tea.KeyBackspace:
		return key.Backspace, true
	case tea.KeySpace:
		return key.Char(' '), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return key.Null, false
		}
		return key.Char(msg.Runes[0]), true
	default:
		return key.Null, false
	}
}
